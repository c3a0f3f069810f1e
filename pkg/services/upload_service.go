package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/scribeflow/scribeflow/pkg/config"
	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/providers/storage"
)

// presignTTL is how long a presigned upload URL stays valid.
const presignTTL = 5 * time.Minute

// Presigner issues presigned PUT URLs. Implemented by storage.S3.
type Presigner interface {
	PresignPut(ctx context.Context, key string, ttl time.Duration, contentType string) (string, error)
}

// UploadService handles direct-to-storage uploads with instant dedup:
// when the same content hash was already processed by this user, no upload
// happens and the existing task is returned instead.
type UploadService struct {
	tasks     *TaskService
	presigner Presigner
	media     *config.MediaConfig
}

// NewUploadService creates a new UploadService
func NewUploadService(tasks *TaskService, presigner Presigner, media *config.MediaConfig) *UploadService {
	return &UploadService{
		tasks:     tasks,
		presigner: presigner,
		media:     media,
	}
}

// Presign validates the upload and returns either a dedup hit or a fresh
// presigned upload slot.
func (s *UploadService) Presign(ctx context.Context, userID string, req models.PresignRequest) (*models.PresignResponse, error) {
	if req.Filename == "" {
		return nil, NewValidationError("filename", "filename is required")
	}
	if req.ContentHash == "" {
		return nil, NewValidationError("content_hash", "content_hash is required")
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(req.Filename)), ".")
	if !config.IsSupportedFormat(ext) {
		return nil, NewValidationError("filename", fmt.Sprintf("unsupported media format %q", ext))
	}

	maxBytes := int64(s.media.MaxUploadMB) << 20
	if req.SizeBytes <= 0 || req.SizeBytes > maxBytes {
		return nil, NewValidationError("size_bytes",
			fmt.Sprintf("size must be between 1 byte and %d MB", s.media.MaxUploadMB))
	}

	// Instant upload: identical content already processed by this user.
	if existing, err := s.tasks.FindCompletedByHash(ctx, userID, req.ContentHash); err != nil {
		return nil, err
	} else if existing != nil {
		return &models.PresignResponse{
			Exists: true,
			TaskID: existing.ID,
		}, nil
	}

	key := storage.UploadKey(time.Now(), req.ContentHash, ext)
	url, err := s.presigner.PresignPut(ctx, key, presignTTL, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &models.PresignResponse{
		UploadURL: url,
		FileKey:   key,
		ExpiresIn: int(presignTTL.Seconds()),
	}, nil
}

var _ Presigner = (*storage.S3)(nil)
