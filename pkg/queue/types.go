// Package queue provides the durable task queue: claiming, worker pool,
// heartbeats, orphan recovery, and the pipeline executor.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/task"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no pending tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor runs a claimed task through its pipeline.
//
// The executor owns the ENTIRE pipeline lifecycle internally: it drives the
// stage machine through the canonical stage order, persists stage rows,
// transcript segments and summaries progressively, and publishes progress
// events as it goes. The worker only handles: claiming, heartbeat, terminal
// status update, and event cleanup.
type TaskExecutor interface {
	Execute(ctx context.Context, t *ent.Task) *ExecutionResult
}

// ExecutionResult is lightweight, just the terminal state. All intermediate
// state was already written to the DB by the executor during processing.
type ExecutionResult struct {
	Status task.Status // completed or failed
	Error  error       // terminal error detail (if failed)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}

// activeStatuses are the task statuses that count toward the global
// concurrency cap and are subject to orphan detection.
var activeStatuses = []task.Status{
	task.StatusExtracting,
	task.StatusTranscribing,
	task.StatusSummarizing,
}
