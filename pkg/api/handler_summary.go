package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/services"
)

// getSummariesHandler handles GET /api/v1/tasks/:id/summaries.
func (s *Server) getSummariesHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	taskID := c.Param("id")

	if _, err := s.taskService.GetTask(ctx, extractUser(c), taskID); err != nil {
		return mapServiceError(c, err)
	}

	summaries, err := s.summaryService.GetActiveSummaries(ctx, taskID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return ok(c, summaries)
}

// regenerateSummariesHandler handles POST /api/v1/tasks/:id/summaries/regenerate.
// Runs synchronously: the previous summaries stay active until the new set is
// saved, so a failure leaves the old set untouched.
func (s *Server) regenerateSummariesHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	t, err := s.taskService.GetTask(ctx, extractUser(c), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	if t.Status != task.StatusCompleted {
		return fail(c, CodeConflict, "task is not completed")
	}

	if err := s.executor.RegenerateSummaries(ctx, t); err != nil {
		return mapServiceError(c, err)
	}

	summaries, err := s.summaryService.GetActiveSummaries(ctx, t.ID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return ok(c, summaries)
}

// visualizeHandler handles POST /api/v1/tasks/:id/visualize. Creates a new
// visualize task whose output attaches to the source task's summary set.
func (s *Server) visualizeHandler(c *echo.Context) error {
	var req models.VisualizeRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, CodeInvalidParam, "malformed request body")
	}

	created, err := s.taskService.CreateVisualizeTask(c.Request().Context(), extractUser(c), c.Param("id"), req)
	if err != nil {
		return mapServiceError(c, err)
	}

	resp := services.ToTaskResponse(created)
	return ok(c, &resp)
}
