package stages

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/taskstage"
)

// Machine persists stage attempts. At most one row per (task, stage_type) is
// active; retries archive the stale row and insert a fresh one, so history
// survives while the active set stays a prefix of the canonical order.
type Machine struct {
	db *ent.Client
}

// NewMachine creates a stage machine on db.
func NewMachine(db *ent.Client) *Machine {
	return &Machine{db: db}
}

// Begin opens a stage attempt. If the active row for (taskID, stage) is
// already completed the attempt short-circuits: the existing row comes back
// with done=true and the caller skips straight to the next stage. Any other
// active row is archived and a fresh running row inserted.
func (m *Machine) Begin(ctx context.Context, taskID string, stage StageType) (rec *ent.TaskStage, done bool, err error) {
	existing, err := m.active(ctx, taskID, stage)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("querying active stage: %w", err)
	}

	if existing != nil {
		if existing.Status == taskstage.StatusCompleted {
			return existing, true, nil
		}
		if _, err := existing.Update().SetIsActive(false).Save(ctx); err != nil {
			return nil, false, fmt.Errorf("archiving stale stage attempt: %w", err)
		}
	}

	created, err := m.db.TaskStage.Create().
		SetTaskID(taskID).
		SetStageType(taskstage.StageType(stage)).
		SetStatus(taskstage.StatusRunning).
		SetAttemptID(uuid.New().String()).
		SetIsActive(true).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("creating stage attempt: %w", err)
	}
	return created, false, nil
}

// Complete marks a stage attempt completed, recording its output artifacts.
// Completing an already-completed attempt is a no-op.
func (m *Machine) Complete(ctx context.Context, rec *ent.TaskStage, output map[string]interface{}) (*ent.TaskStage, error) {
	if rec.Status == taskstage.StatusCompleted {
		return rec, nil
	}

	update := rec.Update().
		SetStatus(taskstage.StatusCompleted).
		SetCompletedAt(time.Now())
	if output != nil {
		update.SetOutput(output)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("completing stage attempt: %w", err)
	}
	return updated, nil
}

// Fail marks a stage attempt failed. The row stays active until a retry
// archives it.
func (m *Machine) Fail(ctx context.Context, rec *ent.TaskStage, message string) (*ent.TaskStage, error) {
	updated, err := rec.Update().
		SetStatus(taskstage.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failing stage attempt: %w", err)
	}
	return updated, nil
}

// Skip records a stage as skipped (e.g. resolve for direct media URLs).
func (m *Machine) Skip(ctx context.Context, taskID string, stage StageType) (*ent.TaskStage, error) {
	rec, err := m.db.TaskStage.Create().
		SetTaskID(taskID).
		SetStageType(taskstage.StageType(stage)).
		SetStatus(taskstage.StatusSkipped).
		SetAttemptID(uuid.New().String()).
		SetIsActive(true).
		SetStartedAt(time.Now()).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("recording skipped stage: %w", err)
	}
	return rec, nil
}

// Reset archives the active row for (taskID, stage) so the next Begin starts
// a fresh attempt. Used when a completed stage's local artifacts did not
// survive a pod restart. No-op when there is no active row.
func (m *Machine) Reset(ctx context.Context, taskID string, stage StageType) error {
	existing, err := m.active(ctx, taskID, stage)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("querying active stage: %w", err)
	}
	if _, err := existing.Update().SetIsActive(false).Save(ctx); err != nil {
		return fmt.Errorf("archiving stage attempt: %w", err)
	}
	return nil
}

// active returns the active row for (taskID, stage).
func (m *Machine) active(ctx context.Context, taskID string, stage StageType) (*ent.TaskStage, error) {
	return m.db.TaskStage.Query().
		Where(
			taskstage.TaskID(taskID),
			taskstage.StageTypeEQ(taskstage.StageType(stage)),
			taskstage.IsActive(true),
		).
		Only(ctx)
}

// CompletedOutput returns the output artifacts of a completed active stage,
// or nil when the stage has not completed.
func (m *Machine) CompletedOutput(ctx context.Context, taskID string, stage StageType) (map[string]interface{}, error) {
	rec, err := m.active(ctx, taskID, stage)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying stage output: %w", err)
	}
	if rec.Status != taskstage.StatusCompleted {
		return nil, nil
	}
	return rec.Output, nil
}

// ActiveStages lists the active stage rows of a task in creation order.
func (m *Machine) ActiveStages(ctx context.Context, taskID string) ([]*ent.TaskStage, error) {
	return m.db.TaskStage.Query().
		Where(
			taskstage.TaskID(taskID),
			taskstage.IsActive(true),
		).
		Order(ent.Asc(taskstage.FieldCreatedAt)).
		All(ctx)
}
