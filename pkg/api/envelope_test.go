package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, req *http.Request) (*echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLocale(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		want           string
	}{
		{"empty defaults to zh", "", localeZH},
		{"explicit en", "en", localeEN},
		{"en region variant", "en-US,en;q=0.9", localeEN},
		{"zh", "zh-CN,zh;q=0.9", localeZH},
		{"unknown language falls back to zh", "fr-FR", localeZH},
		{"en after zh keeps zh", "zh-CN,en;q=0.8", localeZH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			c, _ := newTestContext(t, req)
			assert.Equal(t, tt.want, locale(c))
		})
	}
}

func TestOKEnvelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(t, req)
	c.Set(traceIDKey, "trace-123")

	require.NoError(t, ok(c, map[string]string{"hello": "world"}))
	assert.Equal(t, http.StatusOK, rec.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, CodeOK, env.Code)
	assert.Equal(t, "成功", env.Message)
	assert.Equal(t, "trace-123", env.TraceID)
	assert.NotNil(t, env.Data)
}

func TestFailEnvelope(t *testing.T) {
	t.Run("business errors keep HTTP 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c, rec := newTestContext(t, req)

		require.NoError(t, fail(c, CodeNotFound, ""))
		assert.Equal(t, http.StatusOK, rec.Code)

		var env Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, CodeNotFound, env.Code)
		assert.Equal(t, "资源不存在", env.Message)
		assert.Nil(t, env.Data)
	})

	t.Run("detail suffix in english", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "en")
		c, rec := newTestContext(t, req)

		require.NoError(t, fail(c, CodeInvalidParam, "source_type is required"))

		var env Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, CodeInvalidParam, env.Code)
		assert.Equal(t, "invalid parameter: source_type is required", env.Message)
	})

	t.Run("unknown code renders as system error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c, rec := newTestContext(t, req)

		require.NoError(t, fail(c, 99999, ""))

		var env Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, 99999, env.Code)
		assert.Equal(t, "系统错误", env.Message)
	})
}
