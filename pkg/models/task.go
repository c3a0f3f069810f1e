// Package models defines request, response, and filter structures shared
// between the API layer and the service layer.
package models

import "time"

// TaskOptions are the per-task processing options supplied at creation.
type TaskOptions struct {
	Language                 string `json:"language,omitempty"`       // auto, zh, en
	EnableSpeakerDiarization bool   `json:"enable_speaker_diarization,omitempty"`
	SummaryStyle             string `json:"summary_style,omitempty"` // meeting, learning, interview, lecture, podcast, video, general
	ASRVariant               string `json:"asr_variant,omitempty"`   // file, file_fast, stream_async, stream_realtime
	Provider                 string `json:"provider,omitempty"`      // preferred ASR provider
	LLMProvider              string `json:"llm_provider,omitempty"`  // preferred LLM provider
	ModelID                  string `json:"model_id,omitempty"`      // LLM model override
}

// CreateTaskRequest is the payload for POST /api/v1/tasks.
type CreateTaskRequest struct {
	Title       string      `json:"title,omitempty"`
	SourceType  string      `json:"source_type"` // upload, url
	FileKey     string      `json:"file_key,omitempty"`
	SourceURL   string      `json:"source_url,omitempty"`
	ContentHash string      `json:"content_hash,omitempty"`
	Options     TaskOptions `json:"options"`
}

// TaskResponse is the external representation of a task.
type TaskResponse struct {
	ID              string      `json:"id"`
	Title           string      `json:"title,omitempty"`
	Kind            string      `json:"kind"`
	SourceType      string      `json:"source_type"`
	Status          string      `json:"status"`
	Progress        int         `json:"progress"`
	DurationSeconds *float64    `json:"duration_seconds,omitempty"`
	ErrorMessage    *string     `json:"error_message,omitempty"`
	Options         TaskOptions `json:"options"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
}

// TaskListParams are the supported filters for task listing.
type TaskListParams struct {
	UserID   string
	Page     int
	PageSize int
	Status   string // optional filter
}

// TaskListResult is one page of tasks.
type TaskListResult struct {
	Items      []TaskResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// VisualizeRequest is the payload for POST /api/v1/tasks/:id/visualize.
type VisualizeRequest struct {
	VisualType    string `json:"visual_type"` // mindmap, timeline, flowchart
	ContentStyle  string `json:"content_style,omitempty"`
	Provider      string `json:"provider,omitempty"`
	ModelID       string `json:"model_id,omitempty"`
	GenerateImage bool   `json:"generate_image,omitempty"`
	ImageFormat   string `json:"image_format,omitempty"` // png, svg
}
