package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// TaskRetentionDays is how many days to keep completed tasks before
	// soft-deleting them (setting deleted_at).
	TaskRetentionDays int `yaml:"task_retention_days"`

	// EventTTL is the maximum age of orphaned event rows before deletion.
	// Per-task cleanup handles the normal case; this is a safety net.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskRetentionDays: 365,
		EventTTL:          1 * time.Hour,
		CleanupInterval:   12 * time.Hour,
	}
}
