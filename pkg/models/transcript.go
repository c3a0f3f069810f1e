package models

// WordTimestamp is a word-level timing entry. Vendor-conditional; nil Words on
// a segment means the vendor did not report them.
type WordTimestamp struct {
	Word       string  `json:"word"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence,omitempty"`
}

// SegmentResponse is the external representation of a transcript segment.
type SegmentResponse struct {
	ID           string          `json:"id"`
	SpeakerID    *string         `json:"speaker_id,omitempty"`
	StartSeconds float64         `json:"start_seconds"`
	EndSeconds   float64         `json:"end_seconds"`
	Content      string          `json:"content"`
	Confidence   *float64        `json:"confidence,omitempty"`
	Words        []WordTimestamp `json:"words,omitempty"`
	IsEdited     bool            `json:"is_edited,omitempty"`
}

// TranscriptResult is one page of transcript segments plus the speaker set.
type TranscriptResult struct {
	Segments   []SegmentResponse `json:"segments"`
	Speakers   []string          `json:"speakers"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// SummaryResponse is the external representation of a summary.
type SummaryResponse struct {
	ID            string  `json:"id"`
	SummaryType   string  `json:"summary_type"`
	Version       int     `json:"version"`
	Content       string  `json:"content"`
	VisualFormat  *string `json:"visual_format,omitempty"`
	VisualContent *string `json:"visual_content,omitempty"`
	ImageKey      *string `json:"image_key,omitempty"`
	ModelUsed     string  `json:"model_used,omitempty"`
	PromptVersion string  `json:"prompt_version,omitempty"`
	TokenCount    int     `json:"token_count,omitempty"`
}
