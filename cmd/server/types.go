package main

import (
	"codeberg.org/commentgen/server/internal/comments"
	"codeberg.org/commentgen/server/internal/config"
	"codeberg.org/commentgen/server/internal/llm"
	"codeberg.org/commentgen/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	services *Services
	limiter  *ratelimit.Limiter
	router   *gin.Engine
}

// holds all external service clients (LLM, comment generation)
type Services struct {
	LLM      llm.TextGenerator
	Comments *comments.Service
}
