package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskChannel(t *testing.T) {
	assert.Equal(t, "task:abc-123", TaskChannel("abc-123"))
}

func TestInjectDBEventID(t *testing.T) {
	payload, err := json.Marshal(ProgressPayload{
		Type:     EventTypeProgress,
		TaskID:   "t1",
		Status:   "transcribing",
		Stage:    "transcribe",
		Progress: 45,
	})
	require.NoError(t, err)

	notifyPayload, err := injectDBEventIDAndTruncate(payload, 77)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(notifyPayload), &m))
	assert.Equal(t, float64(77), m["db_event_id"])
	assert.Equal(t, "progress", m["type"])
	assert.Equal(t, "t1", m["task_id"])
	assert.Equal(t, float64(45), m["progress"])
}

func TestTruncateIfNeededPassthrough(t *testing.T) {
	small := `{"type":"progress","task_id":"t1"}`
	got, err := truncateIfNeeded(small)
	require.NoError(t, err)
	assert.Equal(t, small, got)
}

func TestTruncateIfNeededOversized(t *testing.T) {
	payload, err := json.Marshal(map[string]any{
		"type":    EventTypeError,
		"task_id": "t1",
		"message": strings.Repeat("x", 9000),
	})
	require.NoError(t, err)

	got, err := truncateIfNeeded(string(payload))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 7900)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, "error", m["type"])
	assert.Equal(t, "t1", m["task_id"])
	assert.NotContains(t, m, "message")
}

func TestProgressPayloadWireFormat(t *testing.T) {
	data, err := json.Marshal(ProgressPayload{
		Type:     EventTypeCompleted,
		TaskID:   "t9",
		Status:   "completed",
		Progress: 100,
	})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	// Omitted optional fields must not appear on the wire.
	assert.NotContains(t, m, "stage")
	assert.NotContains(t, m, "message")
	assert.Equal(t, "completed", m["type"])
	assert.Equal(t, float64(100), m["progress"])
}
