package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/pkg/models"
)

// TaskService manages the task lifecycle: creation, listing, cancellation,
// soft deletion, and retention.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask validates and persists a new processing task in status pending.
// Workers pick it up from the queue; nothing runs synchronously here.
func (s *TaskService) CreateTask(ctx context.Context, userID string, req models.CreateTaskRequest) (*ent.Task, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "user id is required")
	}

	switch req.SourceType {
	case "upload":
		if req.FileKey == "" {
			return nil, NewValidationError("file_key", "file_key is required for upload sources")
		}
	case "url":
		if req.SourceURL == "" {
			return nil, NewValidationError("source_url", "source_url is required for url sources")
		}
	default:
		return nil, NewValidationError("source_type", "source_type must be upload or url")
	}

	create := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetTitle(req.Title).
		SetKind(task.KindProcess).
		SetSourceType(task.SourceType(req.SourceType)).
		SetStatus(task.StatusPending).
		SetOptions(optionsToMap(req.Options))

	if req.FileKey != "" {
		create = create.SetFileKey(req.FileKey)
	}
	if req.SourceURL != "" {
		create = create.SetSourceURL(req.SourceURL)
	}
	if req.ContentHash != "" {
		create = create.SetContentHash(req.ContentHash)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// CreateVisualizeTask creates a visualization-only task against an existing
// completed transcript. It runs the single-stage visualize pipeline.
func (s *TaskService) CreateVisualizeTask(ctx context.Context, userID, sourceTaskID string, req models.VisualizeRequest) (*ent.Task, error) {
	source, err := s.GetTask(ctx, userID, sourceTaskID)
	if err != nil {
		return nil, err
	}
	if source.Status != task.StatusCompleted {
		return nil, NewValidationError("task_id", "visualization requires a completed task")
	}

	switch req.VisualType {
	case "mindmap", "timeline", "flowchart":
	default:
		return nil, NewValidationError("visual_type", "visual_type must be mindmap, timeline, or flowchart")
	}

	options := map[string]interface{}{
		"visual_type":    req.VisualType,
		"source_task_id": sourceTaskID,
	}
	if req.ContentStyle != "" {
		options["content_style"] = req.ContentStyle
	}
	if req.Provider != "" {
		options["llm_provider"] = req.Provider
	}
	if req.ModelID != "" {
		options["model_id"] = req.ModelID
	}
	if req.GenerateImage {
		options["generate_image"] = true
		options["image_format"] = req.ImageFormat
	}

	created, err := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetTitle(source.Title).
		SetKind(task.KindVisualize).
		SetSourceType(source.SourceType).
		SetStatus(task.StatusPending).
		SetOptions(options).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create visualize task: %w", err)
	}
	return created, nil
}

// GetTask fetches a task by id, scoped to its owner.
func (s *TaskService) GetTask(ctx context.Context, userID, taskID string) (*ent.Task, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "task id is required")
	}

	t, err := s.client.Task.Query().
		Where(
			task.IDEQ(taskID),
			task.UserIDEQ(userID),
			task.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasks returns one page of the owner's tasks, newest first.
func (s *TaskService) ListTasks(ctx context.Context, params models.TaskListParams) (*models.TaskListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}

	query := s.client.Task.Query().
		Where(
			task.UserIDEQ(params.UserID),
			task.DeletedAtIsNil(),
		)
	if params.Status != "" {
		if err := task.StatusValidator(task.Status(params.Status)); err != nil {
			return nil, NewValidationError("status", "invalid status filter")
		}
		query = query.Where(task.StatusEQ(task.Status(params.Status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	tasks, err := query.
		Order(ent.Desc(task.FieldCreatedAt)).
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	items := make([]models.TaskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = ToTaskResponse(t)
	}

	totalPages := (total + params.PageSize - 1) / params.PageSize
	return &models.TaskListResult{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}, nil
}

// DeleteTask soft-deletes a task. Associated data stays until retention
// cleanup removes the row (cascades handle children).
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	t, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	err = t.Update().
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// CancelTask cancels a task. Pending tasks are failed directly; for active
// tasks the caller must also signal the worker pool, whose context
// cancellation drives the running pipeline to the failed state.
func (s *TaskService) CancelTask(ctx context.Context, userID, taskID string) error {
	t, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	switch t.Status {
	case task.StatusCompleted, task.StatusFailed:
		return ErrNotCancellable
	case task.StatusPending:
		err := t.Update().
			SetStatus(task.StatusFailed).
			SetErrorMessage("cancelled").
			SetCompletedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to cancel pending task: %w", err)
		}
		return nil
	default:
		// Active: worker-side context cancellation finishes the job.
		return nil
	}
}

// FindCompletedByHash looks up a prior completed task with the same content
// hash for instant-upload dedup. Returns nil when there is no match.
func (s *TaskService) FindCompletedByHash(ctx context.Context, userID, contentHash string) (*ent.Task, error) {
	if contentHash == "" {
		return nil, nil
	}
	t, err := s.client.Task.Query().
		Where(
			task.UserIDEQ(userID),
			task.ContentHashEQ(contentHash),
			task.StatusEQ(task.StatusCompleted),
			task.DeletedAtIsNil(),
		).
		Order(ent.Desc(task.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query by content hash: %w", err)
	}
	return t, nil
}

// SoftDeleteOldTasks soft-deletes terminal tasks older than retentionDays.
// Used by the retention cleanup loop; idempotent across pods.
func (s *TaskService) SoftDeleteOldTasks(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	count, err := s.client.Task.Update().
		Where(
			task.StatusIn(task.StatusCompleted, task.StatusFailed),
			task.CreatedAtLT(cutoff),
			task.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft-delete old tasks: %w", err)
	}
	return count, nil
}

// ToTaskResponse converts an Ent task to its API representation.
func ToTaskResponse(t *ent.Task) models.TaskResponse {
	return models.TaskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Kind:            string(t.Kind),
		SourceType:      string(t.SourceType),
		Status:          string(t.Status),
		Progress:        t.Progress,
		DurationSeconds: t.DurationSeconds,
		ErrorMessage:    t.ErrorMessage,
		Options:         optionsFromMap(t.Options),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		CompletedAt:     t.CompletedAt,
	}
}

// optionsToMap converts typed task options into the JSON column shape.
func optionsToMap(opts models.TaskOptions) map[string]interface{} {
	data, err := json.Marshal(opts)
	if err != nil {
		return map[string]interface{}{}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]interface{}{}
	}
	return m
}

// optionsFromMap converts the JSON column shape back into typed options.
func optionsFromMap(m map[string]interface{}) models.TaskOptions {
	var opts models.TaskOptions
	data, err := json.Marshal(m)
	if err != nil {
		return opts
	}
	_ = json.Unmarshal(data, &opts)
	return opts
}
