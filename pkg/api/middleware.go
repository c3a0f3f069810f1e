package api

import (
	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
)

const traceIDKey = "trace_id"

// traceIDMiddleware assigns each request a trace id (or adopts the caller's)
// and echoes it in the X-Trace-Id response header.
func traceIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get("X-Trace-Id")
			if id == "" {
				id = uuid.New().String()
			}
			c.Set(traceIDKey, id)
			c.Response().Header().Set("X-Trace-Id", id)
			return next(c)
		}
	}
}

// traceID returns the request's trace id.
func traceID(c *echo.Context) string {
	if id, ok := c.Get(traceIDKey).(string); ok {
		return id
	}
	return ""
}

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// extractUser extracts the calling user from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy) > "api-client"
func extractUser(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.Request().Header.Get("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}
