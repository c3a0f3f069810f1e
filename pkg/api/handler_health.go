package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/scribeflow/scribeflow/pkg/database"
	"github.com/scribeflow/scribeflow/pkg/version"
)

// healthHandler handles GET /health. Raw JSON, no envelope: load balancers
// and probes read the HTTP status code.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := &HealthResponse{
		Status:  "healthy",
		Version: version.GitCommit,
		Checks:  make(map[string]HealthCheck),
	}

	dbStatus, err := database.Health(ctx, s.dbClient.DB())
	if err != nil {
		resp.Status = "unhealthy"
		resp.Checks["database"] = HealthCheck{Status: "unhealthy", Message: err.Error()}
	} else {
		resp.Checks["database"] = HealthCheck{
			Status:  dbStatus.Status,
			Message: fmt.Sprintf("%d/%d connections in use", dbStatus.InUse, dbStatus.OpenConnections),
		}
	}

	if s.workerPool != nil {
		pool := s.workerPool.Health()
		check := HealthCheck{
			Status: "healthy",
			Message: fmt.Sprintf("%d/%d workers, %d active tasks, queue depth %d",
				pool.ActiveWorkers, pool.TotalWorkers, pool.ActiveTasks, pool.QueueDepth),
		}
		if !pool.IsHealthy {
			resp.Status = "unhealthy"
			check.Status = "unhealthy"
			if pool.DBError != "" {
				check.Message = pool.DBError
			}
		}
		resp.Checks["worker_pool"] = check
	}

	code := http.StatusOK
	if resp.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, resp)
}
