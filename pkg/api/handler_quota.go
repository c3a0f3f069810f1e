package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/quota"
)

// listQuotaHandler handles GET /api/v1/admin/quota.
func (s *Server) listQuotaHandler(c *echo.Context) error {
	owner := c.QueryParam("owner")
	if owner == "" {
		owner = quota.OwnerGlobal
	}

	entries, err := s.quotaManager.List(c.Request().Context(), owner)
	if err != nil {
		return mapServiceError(c, err)
	}

	resp := make([]models.QuotaEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toQuotaResponse(e))
	}
	return ok(c, resp)
}

// refreshQuotaHandler handles POST /api/v1/admin/quota/refresh: adjusts a
// quota window's allocation and optionally resets its consumption.
func (s *Server) refreshQuotaHandler(c *echo.Context) error {
	var req models.QuotaRefreshRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, CodeInvalidParam, "malformed request body")
	}
	if req.Provider == "" || req.Variant == "" || req.WindowType == "" {
		return fail(c, CodeInvalidParam, "provider, variant and window_type are required")
	}
	if req.Owner == "" {
		req.Owner = quota.OwnerGlobal
	}

	quotaSeconds := req.QuotaSeconds
	if quotaSeconds == nil && req.QuotaHours != nil {
		secs := *req.QuotaHours * 3600
		quotaSeconds = &secs
	}

	entry, err := s.quotaManager.Refresh(c.Request().Context(),
		req.Owner, req.Provider, req.Variant, req.WindowType, quotaSeconds, req.Reset)
	if err != nil {
		return mapServiceError(c, err)
	}
	return ok(c, toQuotaResponse(entry))
}

func toQuotaResponse(e *ent.QuotaEntry) models.QuotaEntryResponse {
	resp := models.QuotaEntryResponse{
		Owner:        e.Owner,
		Provider:     e.Provider,
		Variant:      string(e.Variant),
		WindowType:   string(e.WindowType),
		WindowStart:  e.WindowStart,
		WindowEnd:    e.WindowEnd,
		QuotaSeconds: e.QuotaSeconds,
		UsedSeconds:  e.UsedSeconds,
		Status:       string(e.Status),
	}
	return resp
}
