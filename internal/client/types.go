package client

import (
	"fmt"
	"net/http"
)

// request body for POST /v1/comments/ai-comment
type GenerateRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// success body for POST /v1/comments/ai-comment
type Response struct {
	CommentedCode string `json:"commented_code"`
}

// error body returned by the comments API
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// RequestError reports a generation call that failed in transport, returned a
// non-2xx status, or returned a body that could not be decoded.
type RequestError struct {
	StatusCode int    // 0 when no response was received
	Body       string // raw response body for non-2xx responses
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("comment request failed with status %d: %v", e.StatusCode, e.Err)
	}

	return fmt.Sprintf("comment request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// manages HTTP requests to the comments REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
}
