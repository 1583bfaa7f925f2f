package httpserver

import (
	broadcastHTTP "civic-notify/internal/broadcast/delivery/http"
	"civic-notify/internal/middleware"
)

const (
	Api = "/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	// Apply global middleware
	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// API routes
	api := srv.gin.Group(Api)

	broadcastH := broadcastHTTP.New(srv.logger, srv.broadcastUC)
	broadcastH.MapRoutes(api)

	return nil
}
