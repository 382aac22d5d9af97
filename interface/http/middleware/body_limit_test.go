package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBodyLimitRouter(maxBytes int64) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(BodyLimit(maxBytes))
	router.POST("/test", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				c.String(http.StatusRequestEntityTooLarge, "limit %d", maxErr.Limit)
				return
			}
			c.String(http.StatusBadRequest, "failed to read body")
			return
		}
		c.String(http.StatusOK, string(body))
	})
	return router
}

func TestBodyLimit(t *testing.T) {
	tests := []struct {
		name           string
		maxBytes       int64
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "within limit",
			maxBytes:       1024,
			body:           strings.Repeat("a", 100),
			expectedStatus: http.StatusOK,
			expectedBody:   strings.Repeat("a", 100),
		},
		{
			name:           "exactly at limit",
			maxBytes:       100,
			body:           strings.Repeat("a", 100),
			expectedStatus: http.StatusOK,
			expectedBody:   strings.Repeat("a", 100),
		},
		{
			name:           "empty body",
			maxBytes:       100,
			body:           "",
			expectedStatus: http.StatusOK,
			expectedBody:   "",
		},
		{
			name:           "one byte over",
			maxBytes:       100,
			body:           strings.Repeat("a", 101),
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedBody:   "limit 100",
		},
		{
			name:           "far over",
			maxBytes:       16,
			body:           `{"recipient_id":"123","text":"` + strings.Repeat("x", 500) + `"}`,
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedBody:   "limit 16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBodyLimitRouter(tt.maxBytes)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tt.body))
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestBodyLimitIgnoresContentLength(t *testing.T) {
	router := newBodyLimitRouter(10)

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(strings.Repeat("a", 50)))
	req.ContentLength = 5

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
