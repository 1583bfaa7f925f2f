package httpserver

import (
	"civic-notify/pkg/errors"
	"civic-notify/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall service health, including the Redis sync
// backend when one is configured.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	syncBackend := "memory"
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(503, "Redis connection failed"))
			return
		}
		syncBackend = "redis"
	}

	response.OK(c, gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "civic-notify",
		"sync":    syncBackend,
	})
}

// readyCheck reports whether the service is ready to serve traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(503, "Redis connection not available"))
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": "1.0.0",
		"service": "civic-notify",
	})
}

// liveCheck reports process liveness.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": "1.0.0",
		"service": "civic-notify",
	})
}
