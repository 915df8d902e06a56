package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aptit/backend/config"
	"github.com/aptit/backend/internal/api"
	"github.com/aptit/backend/internal/middleware"
	"github.com/aptit/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New creates a new server instance with the full route table registered.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, gemini service.GeminiAPI, logger *zap.Logger) *Server {
	if config.GetEnvironment() == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.CORS(cfg.CORSOrigins),
	)

	api.SetupAPI(router, db, redisClient, gemini, logger)

	return &Server{
		cfg:    cfg,
		router: router,
		logger: logger,
	}
}

// Start begins serving and blocks until the listener fails or is shut down.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              net.JoinHostPort(s.cfg.ServerHost, s.cfg.ServerPort),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server, letting in-flight requests
// drain.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
