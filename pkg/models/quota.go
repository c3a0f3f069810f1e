package models

import "time"

// QuotaEntryResponse is the external representation of a quota window.
type QuotaEntryResponse struct {
	Owner        string     `json:"owner"`
	Provider     string     `json:"provider"`
	Variant      string     `json:"variant"`
	WindowType   string     `json:"window_type"`
	WindowStart  time.Time  `json:"window_start"`
	WindowEnd    *time.Time `json:"window_end,omitempty"`
	QuotaSeconds float64    `json:"quota_seconds"`
	UsedSeconds  float64    `json:"used_seconds"`
	Status       string     `json:"status"`
}

// QuotaRefreshRequest is the payload for POST /api/v1/admin/quotas/refresh.
// Exactly one of QuotaSeconds or QuotaHours must be set.
type QuotaRefreshRequest struct {
	Owner        string     `json:"owner"` // user id or "global"
	Provider     string     `json:"provider"`
	Variant      string     `json:"variant"`
	WindowType   string     `json:"window_type"`
	QuotaSeconds *float64   `json:"quota_seconds,omitempty"`
	QuotaHours   *float64   `json:"quota_hours,omitempty"`
	WindowStart  *time.Time `json:"window_start,omitempty"`
	WindowEnd    *time.Time `json:"window_end,omitempty"`
	Reset        bool       `json:"reset"`
}
