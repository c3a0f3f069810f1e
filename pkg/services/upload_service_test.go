package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/pkg/config"
	"github.com/scribeflow/scribeflow/pkg/models"
	testdb "github.com/scribeflow/scribeflow/test/database"
)

type fakePresigner struct {
	lastKey         string
	lastContentType string
}

func (f *fakePresigner) PresignPut(_ context.Context, key string, _ time.Duration, contentType string) (string, error) {
	f.lastKey = key
	f.lastContentType = contentType
	return "https://storage.example.com/" + key + "?signature=abc", nil
}

func setupUploadService(t *testing.T) (*TaskService, *UploadService, *fakePresigner) {
	t.Helper()
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client)
	presigner := &fakePresigner{}
	return tasks, NewUploadService(tasks, presigner, config.DefaultMediaConfig()), presigner
}

func TestUploadService_Presign(t *testing.T) {
	_, svc, presigner := setupUploadService(t)
	ctx := context.Background()

	resp, err := svc.Presign(ctx, "alice", models.PresignRequest{
		Filename:    "standup.mp4",
		ContentType: "video/mp4",
		SizeBytes:   50 << 20,
		ContentHash: "cafebabe",
	})
	require.NoError(t, err)

	assert.False(t, resp.Exists)
	assert.NotEmpty(t, resp.UploadURL)
	assert.Equal(t, presigner.lastKey, resp.FileKey)
	assert.Equal(t, "video/mp4", presigner.lastContentType)
	assert.Greater(t, resp.ExpiresIn, 0)
	assert.LessOrEqual(t, resp.ExpiresIn, 300)
}

func TestUploadService_PresignValidation(t *testing.T) {
	_, svc, _ := setupUploadService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		req   models.PresignRequest
		field string
	}{
		{"missing filename", models.PresignRequest{ContentHash: "x", SizeBytes: 1}, "filename"},
		{"missing hash", models.PresignRequest{Filename: "a.mp4", SizeBytes: 1}, "content_hash"},
		{"unsupported format", models.PresignRequest{Filename: "a.exe", ContentHash: "x", SizeBytes: 1}, "filename"},
		{"zero size", models.PresignRequest{Filename: "a.mp4", ContentHash: "x"}, "size_bytes"},
		{"oversized", models.PresignRequest{Filename: "a.mp4", ContentHash: "x", SizeBytes: 3 << 40}, "size_bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Presign(ctx, "alice", tt.req)
			var validErr *ValidationError
			require.ErrorAs(t, err, &validErr)
			assert.Equal(t, tt.field, validErr.Field)
		})
	}
}

func TestUploadService_InstantUploadDedup(t *testing.T) {
	tasks, svc, _ := setupUploadService(t)
	ctx := context.Background()

	created, err := tasks.CreateTask(ctx, "alice", models.CreateTaskRequest{
		SourceType:  "upload",
		FileKey:     "uploads/prior.mp4",
		ContentHash: "cafebabe",
	})
	require.NoError(t, err)
	require.NoError(t, tasks.client.Task.UpdateOneID(created.ID).SetStatus(task.StatusCompleted).Exec(ctx))

	resp, err := svc.Presign(ctx, "alice", models.PresignRequest{
		Filename:    "same-content.mp4",
		ContentType: "video/mp4",
		SizeBytes:   50 << 20,
		ContentHash: "cafebabe",
	})
	require.NoError(t, err)

	assert.True(t, resp.Exists)
	assert.Equal(t, created.ID, resp.TaskID)
	assert.Empty(t, resp.UploadURL)

	// Other users still get a fresh slot for the same hash.
	resp, err = svc.Presign(ctx, "bob", models.PresignRequest{
		Filename:    "same-content.mp4",
		ContentType: "video/mp4",
		SizeBytes:   50 << 20,
		ContentHash: "cafebabe",
	})
	require.NoError(t, err)
	assert.False(t, resp.Exists)
	assert.NotEmpty(t, resp.UploadURL)
}
