package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/summary"
	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/summarize"
)

// SummaryService manages summary versions. Exactly one row per
// (task, summary_type) is active; saving a new version archives the old one
// in the same transaction.
type SummaryService struct {
	client *ent.Client
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(client *ent.Client) *SummaryService {
	return &SummaryService{client: client}
}

// GetActiveSummaries returns the active version of every summary type the
// task has, in a stable type order.
func (s *SummaryService) GetActiveSummaries(ctx context.Context, taskID string) ([]models.SummaryResponse, error) {
	rows, err := s.client.Summary.Query().
		Where(
			summary.TaskIDEQ(taskID),
			summary.IsActive(true),
		).
		Order(ent.Asc(summary.FieldSummaryType), ent.Asc(summary.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	items := make([]models.SummaryResponse, len(rows))
	for i, row := range rows {
		items[i] = toSummaryResponse(row)
	}
	return items, nil
}

// SaveItem persists one generated summary, archiving any prior active
// version of the same type and bumping the version counter.
func (s *SummaryService) SaveItem(ctx context.Context, taskID string, item summarize.Item) (*ent.Summary, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	prev, err := tx.Summary.Query().
		Where(
			summary.TaskIDEQ(taskID),
			summary.SummaryTypeEQ(summary.SummaryType(item.Type)),
			summary.IsActive(true),
		).
		Only(ctx)
	version := 1
	switch {
	case err == nil:
		version = prev.Version + 1
		if err := prev.Update().SetIsActive(false).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to archive previous summary: %w", err)
		}
	case ent.IsNotFound(err):
		// First version.
	default:
		return nil, fmt.Errorf("failed to query active summary: %w", err)
	}

	create := tx.Summary.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetSummaryType(summary.SummaryType(item.Type)).
		SetVersion(version).
		SetIsActive(true).
		SetContent(item.Content).
		SetModelUsed(item.ModelUsed).
		SetPromptVersion(item.PromptVersion).
		SetTokenCount(item.TokenCount)
	if item.VisualFormat != "" {
		create = create.
			SetVisualFormat(item.VisualFormat).
			SetVisualContent(item.VisualContent)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save summary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit summary: %w", err)
	}
	return created, nil
}

// SaveBundle persists a set of generated summaries.
func (s *SummaryService) SaveBundle(ctx context.Context, taskID string, items []summarize.Item) error {
	for _, item := range items {
		if _, err := s.SaveItem(ctx, taskID, item); err != nil {
			return err
		}
	}
	return nil
}

// SetImageKey records the object storage key of a rendered visual image.
func (s *SummaryService) SetImageKey(ctx context.Context, summaryID, imageKey string) error {
	err := s.client.Summary.UpdateOneID(summaryID).
		SetImageKey(imageKey).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set image key: %w", err)
	}
	return nil
}

func toSummaryResponse(row *ent.Summary) models.SummaryResponse {
	return models.SummaryResponse{
		ID:            row.ID,
		SummaryType:   string(row.SummaryType),
		Version:       row.Version,
		Content:       row.Content,
		VisualFormat:  row.VisualFormat,
		VisualContent: row.VisualContent,
		ImageKey:      row.ImageKey,
		ModelUsed:     row.ModelUsed,
		PromptVersion: row.PromptVersion,
		TokenCount:    row.TokenCount,
	}
}
