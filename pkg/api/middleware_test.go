package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDMiddleware(t *testing.T) {
	handler := traceIDMiddleware()(func(c *echo.Context) error {
		return c.String(http.StatusOK, traceID(c))
	})

	t.Run("generates a trace id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c, rec := newTestContext(t, req)

		require.NoError(t, handler(c))

		id := rec.Header().Get("X-Trace-Id")
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("adopts the caller's trace id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace-Id", "upstream-trace")
		c, rec := newTestContext(t, req)

		require.NoError(t, handler(c))

		assert.Equal(t, "upstream-trace", rec.Header().Get("X-Trace-Id"))
		assert.Equal(t, "upstream-trace", rec.Body.String())
	})
}

func TestSecurityHeaders(t *testing.T) {
	handler := securityHeaders()(func(c *echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(t, req)
	require.NoError(t, handler(c))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func TestExtractUser(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"no headers", nil, "api-client"},
		{"forwarded user wins", map[string]string{
			"X-Forwarded-User":  "alice",
			"X-Forwarded-Email": "alice@example.com",
		}, "alice"},
		{"email fallback", map[string]string{
			"X-Forwarded-Email": "bob@example.com",
		}, "bob@example.com"},
		{"remote user fallback", map[string]string{
			"X-Remote-User": "carol",
		}, "carol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c, _ := newTestContext(t, req)
			assert.Equal(t, tt.want, extractUser(c))
		})
	}
}
