package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/summarize"
	testdb "github.com/scribeflow/scribeflow/test/database"
)

func setupSummaryService(t *testing.T) (*ent.Client, *SummaryService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	created, err := NewTaskService(client.Client).CreateTask(ctx, "alice", models.CreateTaskRequest{
		SourceType: "upload",
		FileKey:    "uploads/x.mp4",
	})
	require.NoError(t, err)

	return client.Client, NewSummaryService(client.Client), created.ID
}

func textItem(summaryType, content string) summarize.Item {
	return summarize.Item{
		Type:          summaryType,
		Content:       content,
		ModelUsed:     "gpt-4o-mini",
		PromptVersion: "v1",
		TokenCount:    420,
	}
}

func TestSummaryService_SaveItemVersioning(t *testing.T) {
	_, svc, taskID := setupSummaryService(t)
	ctx := context.Background()

	first, err := svc.SaveItem(ctx, taskID, textItem("overview", "v1 text"))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)
	assert.True(t, first.IsActive)

	second, err := svc.SaveItem(ctx, taskID, textItem("overview", "v2 text"))
	require.NoError(t, err)
	assert.Equal(t, 2, second.Version)

	// Exactly one active version survives.
	active, err := svc.GetActiveSummaries(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "v2 text", active[0].Content)
	assert.Equal(t, 2, active[0].Version)
}

func TestSummaryService_SaveBundle(t *testing.T) {
	_, svc, taskID := setupSummaryService(t)
	ctx := context.Background()

	err := svc.SaveBundle(ctx, taskID, []summarize.Item{
		textItem("overview", "the overview"),
		textItem("key_points", "- point one"),
		textItem("action_items", "- do the thing"),
	})
	require.NoError(t, err)

	active, err := svc.GetActiveSummaries(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, active, 3)

	// Stable type ordering.
	assert.Equal(t, "action_items", active[0].SummaryType)
	assert.Equal(t, "key_points", active[1].SummaryType)
	assert.Equal(t, "overview", active[2].SummaryType)
}

func TestSummaryService_VisualItem(t *testing.T) {
	_, svc, taskID := setupSummaryService(t)
	ctx := context.Background()

	item := summarize.Item{
		Type:          "visual_mindmap",
		Content:       "Mindmap of the discussion",
		VisualFormat:  "mermaid",
		VisualContent: "mindmap\n  root((Discussion))",
		ModelUsed:     "gpt-4o-mini",
		PromptVersion: "v1",
		TokenCount:    180,
	}

	saved, err := svc.SaveItem(ctx, taskID, item)
	require.NoError(t, err)

	require.NoError(t, svc.SetImageKey(ctx, saved.ID, "visuals/2026/08/abc.png"))

	active, err := svc.GetActiveSummaries(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "mermaid", active[0].VisualFormat)
	assert.Equal(t, "mindmap\n  root((Discussion))", active[0].VisualContent)
	assert.Equal(t, "visuals/2026/08/abc.png", active[0].ImageKey)
}

func TestSummaryService_SetImageKeyNotFound(t *testing.T) {
	_, svc, _ := setupSummaryService(t)
	err := svc.SetImageKey(context.Background(), "missing-id", "visuals/x.png")
	assert.ErrorIs(t, err, ErrNotFound)
}
