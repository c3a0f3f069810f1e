package api

import (
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// getTranscriptHandler handles GET /api/v1/tasks/:id/transcript.
func (s *Server) getTranscriptHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	taskID := c.Param("id")

	// Owner scoping happens via the task lookup.
	if _, err := s.taskService.GetTask(ctx, extractUser(c), taskID); err != nil {
		return mapServiceError(c, err)
	}

	page, pageSize := 1, 200
	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 1000 {
			pageSize = ps
		}
	}

	result, err := s.transcriptService.GetTranscript(ctx, taskID, page, pageSize)
	if err != nil {
		return mapServiceError(c, err)
	}
	return ok(c, result)
}

type editSegmentRequest struct {
	Content string `json:"content"`
}

// editSegmentHandler handles PUT /api/v1/tasks/:id/transcript/segments/:segment_id.
func (s *Server) editSegmentHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	taskID := c.Param("id")

	if _, err := s.taskService.GetTask(ctx, extractUser(c), taskID); err != nil {
		return mapServiceError(c, err)
	}

	var req editSegmentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, CodeInvalidParam, "malformed request body")
	}
	if req.Content == "" {
		return fail(c, CodeInvalidParam, "content is required")
	}

	seg, err := s.transcriptService.EditSegment(ctx, taskID, c.Param("segment_id"), req.Content)
	if err != nil {
		return mapServiceError(c, err)
	}
	return ok(c, seg)
}
