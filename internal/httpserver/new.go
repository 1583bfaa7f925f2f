package httpserver

import (
	"errors"

	"civic-notify/internal/broadcast"
	"civic-notify/pkg/log"
	pkgRedis "civic-notify/pkg/redis"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for HTTP serving.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      log.Logger
	port        int
	environment string

	// Broadcast core
	broadcastUC broadcast.UseCase

	// External services. Redis is nil when the sync channel runs in-memory.
	redis pkgRedis.IRedis
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	// Server configuration
	Port        int
	Environment string

	// Broadcast core
	BroadcastUC broadcast.UseCase

	// External services
	Redis pkgRedis.IRedis
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Environment) // cfg.Environment should map to gin mode by convention

	srv := &HTTPServer{
		// Server configuration
		gin:         gin.New(),
		logger:      logger,
		port:        cfg.Port,
		environment: cfg.Environment,

		// Broadcast core
		broadcastUC: cfg.BroadcastUC,

		// External services
		redis: cfg.Redis,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.broadcastUC == nil {
		return errors.New("broadcast usecase is required")
	}

	return nil
}
