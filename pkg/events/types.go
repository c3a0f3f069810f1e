// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Each processing task has its own channel ("task:{task_id}"). Progress
// events are persisted to the events table so that a client subscribing
// mid-pipeline catches up from the stored history before receiving live
// notifications. A transient copy of every status change also goes to the
// global tasks channel for list pages.
package events

// Event types delivered over task channels.
const (
	// EventTypeProgress marks a progress percentage or stage change.
	EventTypeProgress = "progress"

	// EventTypeCompleted marks terminal success. Final event on the channel.
	EventTypeCompleted = "completed"

	// EventTypeError marks terminal failure. Final event on the channel.
	EventTypeError = "error"
)

// GlobalTasksChannel is the channel for task-level status events.
// Task list pages subscribe to this for real-time updates.
const GlobalTasksChannel = "tasks"

// TaskChannel returns the channel name for a specific task's events.
// Format: "task:{task_id}"
func TaskChannel(taskID string) string {
	return "task:" + taskID
}

// ProgressPayload is the wire format of progress events.
type ProgressPayload struct {
	Type     string `json:"type"` // progress, completed, error
	TaskID   string `json:"task_id"`
	Status   string `json:"status"`
	Stage    string `json:"stage,omitempty"`
	Progress int    `json:"progress"`
	Message  string `json:"message,omitempty"` // error detail on type=error
}

// ClientMessage is the JSON structure for client -> server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "task:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
