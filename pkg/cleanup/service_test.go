package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/pkg/config"
	"github.com/scribeflow/scribeflow/pkg/database"
	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/services"
	testdb "github.com/scribeflow/scribeflow/test/database"
)

func setupServices(t *testing.T) (*database.Client, *services.TaskService, *services.EventService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewTaskService(client.Client), services.NewEventService(client.Client)
}

func createTestTask(t *testing.T, svc *services.TaskService) *ent.Task {
	t.Helper()
	created, err := svc.CreateTask(context.Background(), "cleanup-test-user", models.CreateTaskRequest{
		SourceType: "upload",
		FileKey:    "uploads/2026/01/abc123.mp4",
	})
	require.NoError(t, err)
	return created
}

func TestService_SoftDeletesOldCompletedTasks(t *testing.T) {
	client, taskService, eventService := setupServices(t)
	ctx := context.Background()

	created := createTestTask(t, taskService)

	err := client.Task.UpdateOneID(created.ID).
		SetStatus(task.StatusCompleted).
		SetCreatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		TaskRetentionDays: 365,
		EventTTL:          1 * time.Hour,
		CleanupInterval:   1 * time.Hour,
	}
	svc := NewService(cfg, taskService, eventService)
	svc.runAll(ctx)

	updated, err := client.Task.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, updated.DeletedAt)
}

func TestService_SoftDeletesOldFailedTasks(t *testing.T) {
	client, taskService, eventService := setupServices(t)
	ctx := context.Background()

	created := createTestTask(t, taskService)

	err := client.Task.UpdateOneID(created.ID).
		SetStatus(task.StatusFailed).
		SetErrorMessage("internal error").
		SetCreatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		TaskRetentionDays: 365,
		EventTTL:          1 * time.Hour,
		CleanupInterval:   1 * time.Hour,
	}
	svc := NewService(cfg, taskService, eventService)
	svc.runAll(ctx)

	updated, err := client.Task.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, updated.DeletedAt)
}

func TestService_PreservesRecentAndActiveTasks(t *testing.T) {
	client, taskService, eventService := setupServices(t)
	ctx := context.Background()

	// Recent completed task: inside the retention window.
	recent := createTestTask(t, taskService)
	err := client.Task.UpdateOneID(recent.ID).
		SetStatus(task.StatusCompleted).
		Exec(ctx)
	require.NoError(t, err)

	// Old but still pending: retention only touches terminal tasks.
	pending := createTestTask(t, taskService)
	err = client.Task.UpdateOneID(pending.ID).
		SetCreatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		TaskRetentionDays: 365,
		EventTTL:          1 * time.Hour,
		CleanupInterval:   1 * time.Hour,
	}
	svc := NewService(cfg, taskService, eventService)
	svc.runAll(ctx)

	for _, id := range []string{recent.ID, pending.ID} {
		updated, err := client.Task.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, updated.DeletedAt)
	}
}

func TestService_CleansUpOldEvents(t *testing.T) {
	client, taskService, eventService := setupServices(t)
	ctx := context.Background()

	created := createTestTask(t, taskService)

	// Old event past the TTL.
	_, err := client.Event.Create().
		SetTaskID(created.ID).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Recent event.
	_, err = client.Event.Create().
		SetTaskID(created.ID).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		TaskRetentionDays: 365,
		EventTTL:          1 * time.Hour,
		CleanupInterval:   1 * time.Hour,
	}
	svc := NewService(cfg, taskService, eventService)
	svc.runAll(ctx)

	events, err := eventService.GetEventsSince(ctx, "test", 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event should be deleted, recent event preserved")
}
