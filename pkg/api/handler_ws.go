package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler handles GET /ws: upgrades to WebSocket and hands the connection
// to the connection manager, which blocks until the client disconnects.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "event streaming not available",
		})
	}

	opts := &websocket.AcceptOptions{}
	if len(s.cfg.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.cfg.AllowedWSOrigins
	} else {
		// No configured origins: same-origin only, which Accept enforces
		// by default.
		opts = nil
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		// Accept already wrote the HTTP error response.
		return nil
	}

	s.connManager.HandleConnection(c.Request().Context(), conn)
	return nil
}
