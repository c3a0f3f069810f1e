package api

import (
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/services"
)

// createTaskHandler handles POST /api/v1/tasks.
func (s *Server) createTaskHandler(c *echo.Context) error {
	var req models.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, CodeInvalidParam, "malformed request body")
	}

	created, err := s.taskService.CreateTask(c.Request().Context(), extractUser(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}

	resp := services.ToTaskResponse(created)
	return ok(c, &resp)
}

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *echo.Context) error {
	params := models.TaskListParams{
		UserID: extractUser(c),
		Status: c.QueryParam("status"),
	}
	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			params.Page = p
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			params.PageSize = ps
		}
	}

	result, err := s.taskService.ListTasks(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(c, err)
	}
	return ok(c, result)
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	t, err := s.taskService.GetTask(c.Request().Context(), extractUser(c), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}

	resp := services.ToTaskResponse(t)
	return ok(c, &resp)
}

// deleteTaskHandler handles DELETE /api/v1/tasks/:id.
func (s *Server) deleteTaskHandler(c *echo.Context) error {
	if err := s.taskService.DeleteTask(c.Request().Context(), extractUser(c), c.Param("id")); err != nil {
		return mapServiceError(c, err)
	}
	return ok(c, nil)
}

// cancelTaskHandler handles POST /api/v1/tasks/:id/cancel.
// The DB transition covers pending tasks; for active tasks the worker pool
// cancellation drives the running pipeline to the failed state.
func (s *Server) cancelTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")

	svcErr := s.taskService.CancelTask(c.Request().Context(), extractUser(c), taskID)

	// Always try to cancel on this pod, regardless of the DB result.
	if s.workerPool != nil {
		s.workerPool.CancelTask(taskID)
	}

	if svcErr != nil {
		return mapServiceError(c, svcErr)
	}
	return ok(c, &CancelResponse{
		TaskID:  taskID,
		Message: "Task cancellation requested",
	})
}
