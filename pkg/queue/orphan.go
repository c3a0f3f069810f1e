package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/task"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently, operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds active tasks with stale heartbeats and resets
// them to pending for re-claim. Completed stage rows survive, so the next
// worker resumes from where the dead pod stopped.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Task.Query().
		Where(
			task.StatusIn(activeStatuses...),
			task.LastHeartbeatAtNotNil(),
			task.LastHeartbeatAtLT(threshold),
			task.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, t := range orphans {
		if err := recoverOrphanedTask(ctx, t); err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", t.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedTask puts a single orphaned task back in the queue.
func recoverOrphanedTask(ctx context.Context, t *ent.Task) error {
	lastHeartbeat := "unknown"
	if t.LastHeartbeatAt != nil {
		lastHeartbeat = t.LastHeartbeatAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if t.PodID != nil {
		podID = *t.PodID
	}

	err := t.Update().
		SetStatus(task.StatusPending).
		ClearPodID().
		ClearStartedAt().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue task: %w", err)
	}

	slog.Warn("Orphaned task requeued",
		"task_id", t.ID, "old_pod_id", podID, "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans requeues tasks owned by this pod that were active
// when the pod previously crashed. Called once during startup, before the
// worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusIn(activeStatuses...),
			task.PodIDEQ(podID),
			task.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, t := range orphans {
		if err := recoverOrphanedTask(ctx, t); err != nil {
			slog.Error("Failed to requeue startup orphan",
				"task_id", t.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "task_id", t.ID)
	}

	return nil
}
