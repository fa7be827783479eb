package comments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/commentgen/server/internal/comments"
	apierrors "codeberg.org/commentgen/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCommenter struct {
	result   *comments.Result
	err      error
	calls    int
	language string
	code     string
}

func (m *mockCommenter) Comment(_ context.Context, language, code string) (*comments.Result, error) {
	m.calls++
	m.language = language
	m.code = code

	return m.result, m.err
}

func newRouter(commenter Commenter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/v1"), commenter)

	return router
}

func post(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/comments/ai-comment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestHandler_Success(t *testing.T) {
	mock := &mockCommenter{result: &comments.Result{CommentedCode: "# adds\ndef add(a, b): return a + b"}}
	router := newRouter(mock)

	w := post(router, `{"code":"def add(a, b): return a + b","language":"python"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "# adds\ndef add(a, b): return a + b", resp.CommentedCode)

	assert.Equal(t, 1, mock.calls)
	assert.Equal(t, "python", mock.language)
	assert.Equal(t, "def add(a, b): return a + b", mock.code)
}

func TestHandler_EmptyStringsAccepted(t *testing.T) {
	mock := &mockCommenter{result: &comments.Result{}}
	router := newRouter(mock)

	w := post(router, `{"code":"","language":""}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mock.calls)
}

func TestHandler_MissingFields(t *testing.T) {
	cases := map[string]string{
		"missing code":     `{"language":"go"}`,
		"missing language": `{"code":"package main"}`,
		"empty object":     `{}`,
		"malformed json":   `{"code":`,
		"null code":        `{"code":null,"language":"go"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			mock := &mockCommenter{}
			router := newRouter(mock)

			w := post(router, body)

			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp apierrors.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, apierrors.CodeBadRequest, resp.Error)
			assert.Equal(t, "request body must contain 'language' and 'code'", resp.Message)
			assert.Zero(t, mock.calls)
		})
	}
}

func TestHandler_GenerationFailure(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	mock := &mockCommenter{err: errors.New("failed to generate comments: API request failed with status 401: bad key")}
	router := newRouter(mock)

	w := post(router, `{"code":"int x;","language":"c"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.CodeServerError, resp.Error)
	assert.Equal(t, "an internal error occurred while processing the code.", resp.Message)
	assert.NotContains(t, w.Body.String(), "bad key")
}

func TestRegisterRoutes_AppliesMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mock := &mockCommenter{result: &comments.Result{}}
	router := gin.New()
	RegisterRoutes(router.Group("/v1"), mock, func(c *gin.Context) {
		c.AbortWithStatus(http.StatusTooManyRequests)
	})

	w := post(router, `{"code":"x","language":"go"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Zero(t, mock.calls)
}
