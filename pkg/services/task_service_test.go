package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/pkg/models"
	testdb "github.com/scribeflow/scribeflow/test/database"
)

func setupTaskService(t *testing.T) (*ent.Client, *TaskService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client.Client, NewTaskService(client.Client)
}

func TestTaskService_CreateTask(t *testing.T) {
	_, svc := setupTaskService(t)
	ctx := context.Background()

	t.Run("creates pending upload task", func(t *testing.T) {
		created, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{
			Title:      "Weekly standup",
			SourceType: "upload",
			FileKey:    "uploads/2026/08/abc.mp4",
			Options: models.TaskOptions{
				Language:     "zh",
				SummaryStyle: "meeting",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, created.Status)
		assert.Equal(t, task.KindProcess, created.Kind)
		assert.Equal(t, "alice", created.UserID)
		assert.Equal(t, 0, created.Progress)
	})

	t.Run("creates url task", func(t *testing.T) {
		created, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{
			SourceType: "url",
			SourceURL:  "https://example.com/talk.mp3",
		})
		require.NoError(t, err)
		assert.Equal(t, task.SourceTypeURL, created.SourceType)
	})

	t.Run("rejects upload without file key", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{SourceType: "upload"})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "file_key", validErr.Field)
	})

	t.Run("rejects unknown source type", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{SourceType: "ftp"})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
	})
}

func TestTaskService_GetTask_OwnerScoped(t *testing.T) {
	_, svc := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{
		SourceType: "upload",
		FileKey:    "uploads/x.mp4",
	})
	require.NoError(t, err)

	got, err := svc.GetTask(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Another user cannot see it.
	_, err = svc.GetTask(ctx, "mallory", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_ListTasks(t *testing.T) {
	client, svc := setupTaskService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{
			SourceType: "upload",
			FileKey:    "uploads/x.mp4",
		})
		require.NoError(t, err)
	}
	other, err := svc.CreateTask(ctx, "bob", models.CreateTaskRequest{
		SourceType: "upload",
		FileKey:    "uploads/y.mp4",
	})
	require.NoError(t, err)
	err = client.Task.UpdateOneID(other.ID).SetStatus(task.StatusCompleted).Exec(ctx)
	require.NoError(t, err)

	t.Run("pagination", func(t *testing.T) {
		result, err := svc.ListTasks(ctx, models.TaskListParams{
			UserID:   "alice",
			Page:     1,
			PageSize: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, result.Total)
		assert.Equal(t, 3, result.TotalPages)
		assert.Len(t, result.Items, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		result, err := svc.ListTasks(ctx, models.TaskListParams{
			UserID: "bob",
			Status: "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		_, err := svc.ListTasks(ctx, models.TaskListParams{
			UserID: "alice",
			Status: "bogus",
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})
}

func TestTaskService_CancelTask(t *testing.T) {
	client, svc := setupTaskService(t)
	ctx := context.Background()

	t.Run("pending task fails with cancelled message", func(t *testing.T) {
		created, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{
			SourceType: "upload",
			FileKey:    "uploads/x.mp4",
		})
		require.NoError(t, err)

		require.NoError(t, svc.CancelTask(ctx, "alice", created.ID))

		updated, err := client.Task.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, updated.Status)
		assert.Equal(t, "cancelled", updated.ErrorMessage)
		assert.NotNil(t, updated.CompletedAt)
	})

	t.Run("terminal task is not cancellable", func(t *testing.T) {
		created, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{
			SourceType: "upload",
			FileKey:    "uploads/x.mp4",
		})
		require.NoError(t, err)
		require.NoError(t, client.Task.UpdateOneID(created.ID).SetStatus(task.StatusCompleted).Exec(ctx))

		assert.ErrorIs(t, svc.CancelTask(ctx, "alice", created.ID), ErrNotCancellable)
	})

	t.Run("active task cancel is a no-op at the DB level", func(t *testing.T) {
		created, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{
			SourceType: "upload",
			FileKey:    "uploads/x.mp4",
		})
		require.NoError(t, err)
		require.NoError(t, client.Task.UpdateOneID(created.ID).SetStatus(task.StatusTranscribing).Exec(ctx))

		require.NoError(t, svc.CancelTask(ctx, "alice", created.ID))

		updated, err := client.Task.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusTranscribing, updated.Status)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	_, svc := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{
		SourceType: "upload",
		FileKey:    "uploads/x.mp4",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, "alice", created.ID))

	// Soft-deleted tasks disappear from owner-scoped reads.
	_, err = svc.GetTask(ctx, "alice", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_CreateVisualizeTask(t *testing.T) {
	client, svc := setupTaskService(t)
	ctx := context.Background()

	source, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{
		Title:      "Planning session",
		SourceType: "upload",
		FileKey:    "uploads/x.mp4",
	})
	require.NoError(t, err)

	t.Run("requires a completed source task", func(t *testing.T) {
		_, err := svc.CreateVisualizeTask(ctx, "alice", source.ID, models.VisualizeRequest{VisualType: "mindmap"})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	require.NoError(t, client.Task.UpdateOneID(source.ID).SetStatus(task.StatusCompleted).Exec(ctx))

	t.Run("rejects unknown visual type", func(t *testing.T) {
		_, err := svc.CreateVisualizeTask(ctx, "alice", source.ID, models.VisualizeRequest{VisualType: "wordcloud"})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("creates pending visualize task with source linkage", func(t *testing.T) {
		created, err := svc.CreateVisualizeTask(ctx, "alice", source.ID, models.VisualizeRequest{
			VisualType:   "mindmap",
			ContentStyle: "lecture",
		})
		require.NoError(t, err)
		assert.Equal(t, task.KindVisualize, created.Kind)
		assert.Equal(t, task.StatusPending, created.Status)
		assert.Equal(t, source.Title, created.Title)
		assert.Equal(t, source.ID, created.Options["source_task_id"])
		assert.Equal(t, "mindmap", created.Options["visual_type"])
	})
}

func TestTaskService_FindCompletedByHash(t *testing.T) {
	client, svc := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "alice", models.CreateTaskRequest{
		SourceType:  "upload",
		FileKey:     "uploads/x.mp4",
		ContentHash: "deadbeef",
	})
	require.NoError(t, err)

	// Not completed yet: no dedup hit.
	hit, err := svc.FindCompletedByHash(ctx, "alice", "deadbeef")
	require.NoError(t, err)
	assert.Nil(t, hit)

	require.NoError(t, client.Task.UpdateOneID(created.ID).SetStatus(task.StatusCompleted).Exec(ctx))

	hit, err = svc.FindCompletedByHash(ctx, "alice", "deadbeef")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, created.ID, hit.ID)

	// Dedup is per user.
	hit, err = svc.FindCompletedByHash(ctx, "bob", "deadbeef")
	require.NoError(t, err)
	assert.Nil(t, hit)
}
