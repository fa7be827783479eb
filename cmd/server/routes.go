package main

import (
	"codeberg.org/commentgen/server/api/rest/comments"
	"codeberg.org/commentgen/server/api/rest/health"
	"codeberg.org/commentgen/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.NoRoute(func(c *gin.Context) {
		errors.NotFound(c, "route")
	})

	router.GET("/health", health.Handler(version))

	v1 := router.Group("/v1")

	{
		v1.GET("/ping", health.PingHandler)

		comments.RegisterRoutes(v1, server.services.Comments, server.limiter.Middleware())
	}
}
