package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DefaultBaseURL points at the comments API deployment. Set at build time:
//
//	go build -ldflags "-X codeberg.org/commentgen/server/internal/client.DefaultBaseURL=https://..."
var DefaultBaseURL = "http://localhost:5000"

// path of the comment generation endpoint
const commentPath = "/v1/comments/ai-comment"

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// creates a client for baseURL; an empty baseURL uses ResolveBaseURL
func New(baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = ResolveBaseURL()
	}

	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		// generation has no client-side deadline; the call runs until the server answers
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// returns COMMENTGEN_API_ENDPOINT when set, otherwise the build-time default
func ResolveBaseURL() string {
	if endpoint := os.Getenv("COMMENTGEN_API_ENDPOINT"); endpoint != "" {
		return endpoint
	}

	return DefaultBaseURL
}

// returns the base URL requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate sends code and language to the comments API in a single POST and
// returns the decoded response. Every failure is a *RequestError.
func (c *Client) Generate(ctx context.Context, code, language string) (*Response, error) {
	payloadBytes, err := json.Marshal(GenerateRequest{
		Code:     code,
		Language: language,
	})
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+commentPath, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	// handle error responses
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{StatusCode: resp.StatusCode, Body: string(body)}

		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			reqErr.Err = fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		} else {
			reqErr.Err = fmt.Errorf("unexpected status %s", http.StatusText(resp.StatusCode))
		}

		return nil, reqErr
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: string(body), Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	return &result, nil
}
