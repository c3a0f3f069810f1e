// Package quota manages provider usage allowances across day, month, and
// lifetime windows.
package quota

import "time"

// Window types.
const (
	WindowDay   = "day"
	WindowMonth = "month"
	WindowTotal = "total"
)

// Owner sentinel for provider-wide (non-user) quota lanes.
const OwnerGlobal = "global"

// WindowBounds returns the [start, end) bounds of the window containing now.
// All bounds are UTC. Total windows are unbounded; end is nil.
func WindowBounds(windowType string, now time.Time) (time.Time, *time.Time) {
	now = now.UTC()
	switch windowType {
	case WindowDay:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 1)
		return start, &end
	case WindowMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		return start, &end
	default:
		return time.Time{}, nil
	}
}

// Expired reports whether a window with the given end has rolled past now.
// Unbounded windows never expire.
func Expired(end *time.Time, now time.Time) bool {
	return end != nil && !now.UTC().Before(*end)
}
