package models

// PresignRequest is the payload for POST /api/v1/uploads/presign.
type PresignRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentHash string `json:"content_hash"`
}

// PresignResponse carries either a dedup hit (Exists + TaskID) or a fresh
// presigned upload slot.
type PresignResponse struct {
	Exists    bool   `json:"exists"`
	TaskID    string `json:"task_id,omitempty"`
	UploadURL string `json:"upload_url,omitempty"`
	FileKey   string `json:"file_key,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"` // seconds
}
