package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/transcriptsegment"
	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/transcript"
)

// TranscriptService manages transcript segment retrieval and editing.
type TranscriptService struct {
	client *ent.Client
}

// NewTranscriptService creates a new TranscriptService
func NewTranscriptService(client *ent.Client) *TranscriptService {
	return &TranscriptService{client: client}
}

// GetTranscript returns one page of a task's segments in timeline order,
// plus the distinct speaker set across the whole transcript.
func (s *TranscriptService) GetTranscript(ctx context.Context, taskID string, page, pageSize int) (*models.TranscriptResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 500 {
		pageSize = 100
	}

	query := s.client.TranscriptSegment.Query().
		Where(transcriptsegment.TaskIDEQ(taskID))

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count segments: %w", err)
	}

	segments, err := query.
		Order(ent.Asc(transcriptsegment.FieldStartSeconds)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}

	speakers, err := s.speakers(ctx, taskID)
	if err != nil {
		return nil, err
	}

	items := make([]models.SegmentResponse, len(segments))
	for i, seg := range segments {
		items[i] = toSegmentResponse(seg)
	}

	totalPages := (total + pageSize - 1) / pageSize
	return &models.TranscriptResult{
		Segments:   items,
		Speakers:   speakers,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// EditSegment replaces a segment's text, preserving the original content on
// first edit. Timing and speaker are immutable.
func (s *TranscriptService) EditSegment(ctx context.Context, taskID, segmentID, content string) (*ent.TranscriptSegment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, NewValidationError("content", "content must not be empty")
	}

	seg, err := s.client.TranscriptSegment.Query().
		Where(
			transcriptsegment.IDEQ(segmentID),
			transcriptsegment.TaskIDEQ(taskID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get segment: %w", err)
	}

	update := seg.Update().
		SetContent(content).
		SetIsEdited(true)
	if !seg.IsEdited {
		update = update.SetOriginalContent(seg.Content)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to edit segment: %w", err)
	}
	return updated, nil
}

// FullText renders the task's transcript as speaker blocks, the form
// consumed by summary generation.
func (s *TranscriptService) FullText(ctx context.Context, taskID string) (string, error) {
	segments, err := s.client.TranscriptSegment.Query().
		Where(transcriptsegment.TaskIDEQ(taskID)).
		Order(ent.Asc(transcriptsegment.FieldStartSeconds)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load transcript: %w", err)
	}
	if len(segments) == 0 {
		return "", ErrNoTranscript
	}
	return transcript.FormatBlocks(toTranscriptionSegments(segments)), nil
}

// Quality assesses the stored transcript's recognition quality from segment
// confidences. Summary generation uses it for prompt caveats and model
// substitution.
func (s *TranscriptService) Quality(ctx context.Context, taskID string) (transcript.Quality, error) {
	segments, err := s.client.TranscriptSegment.Query().
		Where(transcriptsegment.TaskIDEQ(taskID)).
		All(ctx)
	if err != nil {
		return transcript.Quality{}, fmt.Errorf("failed to load transcript: %w", err)
	}
	return transcript.AssessQuality(toTranscriptionSegments(segments)), nil
}

func toTranscriptionSegments(segments []*ent.TranscriptSegment) []providers.TranscriptionSegment {
	out := make([]providers.TranscriptionSegment, len(segments))
	for i, seg := range segments {
		out[i] = providers.TranscriptionSegment{
			SpeakerID:    seg.SpeakerID,
			StartSeconds: seg.StartSeconds,
			EndSeconds:   seg.EndSeconds,
			Content:      seg.Content,
			Confidence:   seg.Confidence,
		}
	}
	return out
}

// speakers returns the distinct normalized speaker ids for a task, sorted.
func (s *TranscriptService) speakers(ctx context.Context, taskID string) ([]string, error) {
	var rows []struct {
		SpeakerID *string `json:"speaker_id"`
	}
	err := s.client.TranscriptSegment.Query().
		Where(
			transcriptsegment.TaskIDEQ(taskID),
			transcriptsegment.SpeakerIDNotNil(),
		).
		GroupBy(transcriptsegment.FieldSpeakerID).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to query speakers: %w", err)
	}

	speakers := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.SpeakerID != nil {
			speakers = append(speakers, *row.SpeakerID)
		}
	}
	sort.Strings(speakers)
	return speakers, nil
}

func toSegmentResponse(seg *ent.TranscriptSegment) models.SegmentResponse {
	resp := models.SegmentResponse{
		ID:           seg.ID,
		SpeakerID:    seg.SpeakerID,
		StartSeconds: seg.StartSeconds,
		EndSeconds:   seg.EndSeconds,
		Content:      seg.Content,
		Confidence:   seg.Confidence,
		IsEdited:     seg.IsEdited,
	}
	if len(seg.Words) > 0 {
		resp.Words = wordsFromJSON(seg.Words)
	}
	return resp
}

// wordsFromJSON converts the stored word JSON into typed timestamps.
func wordsFromJSON(raw []map[string]interface{}) []models.WordTimestamp {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var words []models.WordTimestamp
	if err := json.Unmarshal(data, &words); err != nil {
		return nil
	}
	return words
}
