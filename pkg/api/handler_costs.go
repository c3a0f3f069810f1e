package api

import (
	"log/slog"
	"time"

	echo "github.com/labstack/echo/v5"
)

// dailyCostsHandler handles GET /api/v1/admin/costs/daily: per-provider spend
// for one day from the Redis fast index, falling back to the durable log when
// Redis is unavailable.
func (s *Server) dailyCostsHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	day := time.Now().UTC()
	if v := c.QueryParam("day"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fail(c, CodeInvalidParam, "day must be yyyy-mm-dd")
		}
		day = parsed
	}

	totals, err := s.costTracker.DailyTotals(ctx, day)
	if err != nil {
		slog.Warn("Fast index unavailable, reading daily costs from durable log",
			"trace_id", traceID(c), "error", err)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		rows, storeErr := s.usageStore.TotalsByProvider(ctx, start, start.AddDate(0, 0, 1))
		if storeErr != nil {
			return mapServiceError(c, storeErr)
		}
		totals = make(map[string]float64, len(rows))
		for _, row := range rows {
			totals[row.ServiceType+":"+row.Provider] = row.TotalUSD
		}
	}
	return ok(c, &DailyCostsResponse{
		Day:    day.Format("2006-01-02"),
		Totals: totals,
	})
}

// providerCostsHandler handles GET /api/v1/admin/costs/providers: per-provider
// totals over a range from the durable usage log.
func (s *Server) providerCostsHandler(c *echo.Context) error {
	until := time.Now().UTC()
	since := until.AddDate(0, -1, 0)

	if v := c.QueryParam("since"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fail(c, CodeInvalidParam, "since must be RFC3339")
		}
		since = parsed
	}
	if v := c.QueryParam("until"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fail(c, CodeInvalidParam, "until must be RFC3339")
		}
		until = parsed
	}
	if !since.Before(until) {
		return fail(c, CodeInvalidParam, "since must precede until")
	}

	totals, err := s.usageStore.TotalsByProvider(c.Request().Context(), since, until)
	if err != nil {
		return mapServiceError(c, err)
	}
	return ok(c, &ProviderCostsResponse{
		Since:  since.Format(time.RFC3339),
		Until:  until.Format(time.RFC3339),
		Totals: totals,
	})
}
