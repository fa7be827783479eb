package comments

import (
	"context"

	"codeberg.org/commentgen/server/internal/comments"
)

// annotates code; *comments.Service satisfies it
type Commenter interface {
	Comment(ctx context.Context, language, code string) (*comments.Result, error)
}

// Request represents the request body for comment generation.
// Both keys must be present; empty strings are accepted.
type Request struct {
	Language *string `json:"language" binding:"required"`
	Code     *string `json:"code" binding:"required"`
}

// Response represents the response for comment generation
type Response struct {
	CommentedCode string `json:"commented_code"`
}
