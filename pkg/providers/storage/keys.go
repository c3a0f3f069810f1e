package storage

import (
	"fmt"
	"strings"
	"time"
)

// UploadKey builds the canonical object key for uploaded media. Keys are
// content addressed so repeated uploads of the same bytes land on the same
// object.
func UploadKey(now time.Time, contentHash, ext string) string {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "bin"
	}
	now = now.UTC()
	return fmt.Sprintf("uploads/%04d/%02d/%s.%s", now.Year(), int(now.Month()), contentHash, ext)
}

// VisualKey builds the object key for a rendered summary visual.
func VisualKey(userID, taskID, summaryType, summaryID, format string) string {
	return fmt.Sprintf("visuals/%s/%s/%s_%s.%s", userID, taskID, summaryType, summaryID, format)
}
