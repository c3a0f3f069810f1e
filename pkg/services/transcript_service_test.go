package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/transcript"
	testdb "github.com/scribeflow/scribeflow/test/database"
)

func setupTranscriptService(t *testing.T) (*ent.Client, *TranscriptService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	created, err := NewTaskService(client.Client).CreateTask(ctx, "alice", models.CreateTaskRequest{
		SourceType: "upload",
		FileKey:    "uploads/x.mp4",
	})
	require.NoError(t, err)

	return client.Client, NewTranscriptService(client.Client), created.ID
}

func seedSegment(t *testing.T, client *ent.Client, taskID, speaker, content string, start, end, confidence float64) *ent.TranscriptSegment {
	t.Helper()
	create := client.TranscriptSegment.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetStartSeconds(start).
		SetEndSeconds(end).
		SetContent(content).
		SetConfidence(confidence)
	if speaker != "" {
		create = create.SetSpeakerID(speaker)
	}
	seg, err := create.Save(context.Background())
	require.NoError(t, err)
	return seg
}

func TestTranscriptService_GetTranscript(t *testing.T) {
	client, svc, taskID := setupTranscriptService(t)
	ctx := context.Background()

	seedSegment(t, client, taskID, "spk_1", "second line", 5.0, 9.5, 0.95)
	seedSegment(t, client, taskID, "spk_0", "first line", 0.0, 4.8, 0.91)
	seedSegment(t, client, taskID, "spk_0", "third line", 10.0, 14.0, 0.40)

	result, err := svc.GetTranscript(ctx, taskID, 1, 50)
	require.NoError(t, err)

	// Timeline order regardless of insertion order.
	require.Len(t, result.Segments, 3)
	assert.Equal(t, "first line", result.Segments[0].Content)
	assert.Equal(t, "second line", result.Segments[1].Content)
	assert.Equal(t, "third line", result.Segments[2].Content)

	assert.Equal(t, []string{"spk_0", "spk_1"}, result.Speakers)
	assert.Equal(t, 3, result.Total)

	t.Run("pagination keeps full speaker set", func(t *testing.T) {
		page, err := svc.GetTranscript(ctx, taskID, 2, 2)
		require.NoError(t, err)
		assert.Len(t, page.Segments, 1)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, []string{"spk_0", "spk_1"}, page.Speakers)
	})
}

func TestTranscriptService_EditSegment(t *testing.T) {
	client, svc, taskID := setupTranscriptService(t)
	ctx := context.Background()

	seg := seedSegment(t, client, taskID, "spk_0", "teh original", 0, 3, 0.9)

	t.Run("first edit preserves the original text", func(t *testing.T) {
		updated, err := svc.EditSegment(ctx, taskID, seg.ID, "the original")
		require.NoError(t, err)
		assert.Equal(t, "the original", updated.Content)
		assert.True(t, updated.IsEdited)
		assert.Equal(t, "teh original", updated.OriginalContent)
	})

	t.Run("second edit keeps the first original", func(t *testing.T) {
		updated, err := svc.EditSegment(ctx, taskID, seg.ID, "the corrected original")
		require.NoError(t, err)
		assert.Equal(t, "the corrected original", updated.Content)
		assert.Equal(t, "teh original", updated.OriginalContent)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		_, err := svc.EditSegment(ctx, taskID, seg.ID, "   ")
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("segment must belong to the task", func(t *testing.T) {
		_, err := svc.EditSegment(ctx, "other-task", seg.ID, "hijack")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTranscriptService_FullText(t *testing.T) {
	client, svc, taskID := setupTranscriptService(t)
	ctx := context.Background()

	t.Run("empty transcript", func(t *testing.T) {
		_, err := svc.FullText(ctx, taskID)
		assert.ErrorIs(t, err, ErrNoTranscript)
	})

	seedSegment(t, client, taskID, "spk_0", "hello", 0, 2, 0.9)
	seedSegment(t, client, taskID, "spk_1", "hi there", 2, 4, 0.9)
	seedSegment(t, client, taskID, "", "unattributed", 4, 6, 0.9)

	text, err := svc.FullText(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, "[spk_0] hello\n\n[spk_1] hi there\n\nunattributed", text)
}

func TestTranscriptService_Quality(t *testing.T) {
	client, svc, taskID := setupTranscriptService(t)
	ctx := context.Background()

	q, err := svc.Quality(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, transcript.ConfidenceLow, q.Score)

	seedSegment(t, client, taskID, "spk_0", "clear", 0, 2, 0.9)
	seedSegment(t, client, taskID, "spk_0", "mumbled", 2, 4, 0.5)
	seedSegment(t, client, taskID, "spk_0", "noisy", 4, 6, 0.3)
	seedSegment(t, client, taskID, "spk_0", "fine", 6, 8, 0.9)

	q, err = svc.Quality(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, transcript.ConfidenceMedium, q.Score)
	assert.InDelta(t, 0.65, q.AvgConfidence, 1e-9)
	assert.Equal(t, 2, q.LowConfidenceCount)
	assert.InDelta(t, 0.5, q.LowConfidenceRatio, 1e-9)
}
