package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/scribeflow/scribeflow/pkg/models"
)

// presignUploadHandler handles POST /api/v1/uploads/presign. A dedup hit
// returns the existing completed task instead of a fresh upload slot.
func (s *Server) presignUploadHandler(c *echo.Context) error {
	var req models.PresignRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, CodeInvalidParam, "malformed request body")
	}

	resp, err := s.uploadService.Presign(c.Request().Context(), extractUser(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return ok(c, resp)
}
