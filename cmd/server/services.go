package main

import (
	"context"
	"fmt"

	"codeberg.org/commentgen/server/internal/comments"
	"codeberg.org/commentgen/server/internal/llm"
)

// creates and configures all service clients
func InitializeServices(ctx context.Context) (*Services, error) {
	generator, err := llm.NewTextGenerator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &Services{
		LLM:      generator,
		Comments: comments.New(generator),
	}, nil
}
