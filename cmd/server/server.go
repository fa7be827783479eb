package main

import (
	"context"
	"fmt"

	"codeberg.org/commentgen/server/internal/config"
	"codeberg.org/commentgen/server/internal/logger"
	"codeberg.org/commentgen/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	services, err := InitializeServices(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	limiter, err := ratelimit.New(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
	}

	logger.Info("llm initialized", "model", services.LLM.Model())

	logger.Info("rate limiting initialized",
		"rate", cfg.RateLimit,
		"redis", cfg.RedisURL != "",
	)

	return newServer(cfg, services, limiter), nil
}

// wires already-built dependencies into a router
func newServer(cfg *config.Config, services *Services, limiter *ratelimit.Limiter) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	server := &Server{
		config:   cfg,
		services: services,
		limiter:  limiter,
		router:   router,
	}

	RegisterRoutes(router, server)

	return server
}

// returns the listen address for the configured port
func (s *Server) Addr() string {
	return ":" + s.config.Port
}

// releases connections held by the server
func (s *Server) Close() error {
	return s.limiter.Close()
}
