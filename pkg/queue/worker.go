package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/event"
	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/pkg/config"
	"github.com/scribeflow/scribeflow/pkg/events"
	"github.com/scribeflow/scribeflow/pkg/stages"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor TaskExecutor
	events   *events.Publisher
	pool     TaskRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for task registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new queue worker.
// publisher may be nil (progress streaming disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor TaskExecutor, pool TaskRegistry, publisher *events.Publisher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		events:       publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Task.Query().
		Where(task.StatusIn(activeStatuses...)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	// 2. Claim next task
	claimed, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", claimed.ID, "worker_id", w.id)
	log.Info("Task claimed", "kind", claimed.Kind, "source_type", claimed.SourceType)

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create task context with timeout
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterTask(claimed.ID, cancelTask)
	defer w.pool.UnregisterTask(claimed.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	// 6. Execute the pipeline
	result := w.executor.Execute(taskCtx, claimed)

	// 6a. Nil-guard: synthesize a safe result if the executor returned nil
	if result == nil {
		switch {
		case errors.Is(taskCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: task.StatusFailed,
				Error:  fmt.Errorf("task timed out after %v", w.config.TaskTimeout),
			}
		case errors.Is(taskCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: task.StatusFailed,
				Error:  errors.New("cancelled"),
			}
		default:
			result = &ExecutionResult{
				Status: task.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Update terminal status (use background context, task ctx may be cancelled)
	final, err := w.updateTerminalStatus(context.Background(), claimed, result)
	if err != nil {
		log.Error("Failed to update task terminal status", "error", err)
		return err
	}

	// 8a. Publish the terminal progress event
	w.publishTerminal(context.Background(), final, result)

	// 9. Cleanup transient events after grace period (60s) to allow clients
	// to receive final events before they are deleted.
	w.scheduleEventCleanup(claimed.ID)

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "status", result.Status)
	return nil
}

// claimNextTask atomically claims the next pending task using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	claimed, err := tx.Task.Query().
		Where(
			task.StatusEQ(task.StatusPending),
			task.DeletedAtIsNil(),
		).
		Order(ent.Asc(task.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	// Claim: move out of pending into the first stage's observable status,
	// and record pod ownership for orphan detection.
	order := stages.OrderFor(claimed.Kind, claimed.SourceType)
	now := time.Now()
	claimed, err = claimed.Update().
		SetStatus(stages.StatusFor(order[0])).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Task.UpdateOneID(taskID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// updateTerminalStatus writes the final task status and returns the updated row.
func (w *Worker) updateTerminalStatus(ctx context.Context, t *ent.Task, result *ExecutionResult) (*ent.Task, error) {
	update := w.client.Task.UpdateOneID(t.ID).
		SetStatus(result.Status).
		SetCompletedAt(time.Now())

	if result.Status == task.StatusCompleted {
		update = update.SetProgress(100)
	}
	if result.Error != nil {
		update = update.SetErrorMessage(result.Error.Error())
	}

	return update.Save(ctx)
}

// publishTerminal publishes the terminal progress event to both the task and
// global channels. Non-blocking: errors are logged.
func (w *Worker) publishTerminal(ctx context.Context, t *ent.Task, result *ExecutionResult) {
	if w.events == nil {
		return
	}

	payload := events.ProgressPayload{
		Type:     events.EventTypeCompleted,
		TaskID:   t.ID,
		Status:   string(result.Status),
		Progress: t.Progress,
	}
	if result.Status == task.StatusFailed {
		payload.Type = events.EventTypeError
		if result.Error != nil {
			payload.Message = result.Error.Error()
		}
	}

	if err := w.events.PublishProgress(ctx, payload); err != nil {
		slog.Warn("Failed to publish terminal event",
			"task_id", t.ID, "status", result.Status, "error", err)
	}
}

// scheduleEventCleanup schedules deletion of transient events after a 60-second
// grace period, allowing WebSocket clients to receive final events.
func (w *Worker) scheduleEventCleanup(taskID string) {
	time.AfterFunc(60*time.Second, func() {
		if err := w.cleanupTaskEvents(context.Background(), taskID); err != nil {
			slog.Warn("Failed to cleanup task events after grace period",
				"task_id", taskID, "error", err)
		}
	})
}

// cleanupTaskEvents removes transient Event records used for WebSocket delivery.
func (w *Worker) cleanupTaskEvents(ctx context.Context, taskID string) error {
	_, err := w.client.Event.Delete().
		Where(event.TaskIDEQ(taskID)).
		Exec(ctx)
	return err
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
