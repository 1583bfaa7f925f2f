package http

import "github.com/gin-gonic/gin"

// MapRoutes registers the broadcast routes on the given group.
func (h *Handler) MapRoutes(rg *gin.RouterGroup) {
	rg.POST("/broadcasts", h.Send)
	rg.GET("/broadcasts", h.List)
	rg.GET("/broadcasts/:id", h.Detail)
	rg.DELETE("/broadcasts/:id", h.Delete)
}
