package costs

import (
	"context"
	"fmt"
	"time"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/usagerecord"
)

// EntStore is the database-backed durable usage log.
type EntStore struct {
	db *ent.Client
}

// NewEntStore creates a usage store on db.
func NewEntStore(db *ent.Client) *EntStore {
	return &EntStore{db: db}
}

// SaveUsage implements UsageStore. A (request_id, attempt) collision means
// the record is already durable, so the write degrades to a no-op.
func (s *EntStore) SaveUsage(ctx context.Context, rec Record) error {
	create := s.db.UsageRecord.Create().
		SetServiceType(usagerecord.ServiceType(rec.ServiceType)).
		SetProvider(rec.Provider).
		SetUserID(rec.UserID).
		SetCost(rec.CostUSD).
		SetRequestID(rec.RequestID).
		SetAttempt(rec.Attempt).
		SetCreatedAt(rec.At)
	if rec.TaskID != "" {
		create.SetTaskID(rec.TaskID)
	}
	if rec.Tokens > 0 {
		create.SetTokens(rec.Tokens)
	}
	if rec.DurationSeconds > 0 {
		create.SetDurationSeconds(rec.DurationSeconds)
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("inserting usage record: %w", err)
	}
	return nil
}

// ProviderTotal is an aggregated spend row.
type ProviderTotal struct {
	ServiceType string  `json:"service_type"`
	Provider    string  `json:"provider"`
	TotalUSD    float64 `json:"total_usd"`
	Calls       int     `json:"calls"`
}

// TotalsByProvider aggregates spend per (service_type, provider) over
// [since, until) from the durable log.
func (s *EntStore) TotalsByProvider(ctx context.Context, since, until time.Time) ([]ProviderTotal, error) {
	var rows []struct {
		ServiceType string  `json:"service_type"`
		Provider    string  `json:"provider"`
		Sum         float64 `json:"sum"`
		Count       int     `json:"count"`
	}

	err := s.db.UsageRecord.Query().
		Where(
			usagerecord.CreatedAtGTE(since),
			usagerecord.CreatedAtLT(until),
		).
		GroupBy(usagerecord.FieldServiceType, usagerecord.FieldProvider).
		Aggregate(ent.As(ent.Sum(usagerecord.FieldCost), "sum"), ent.As(ent.Count(), "count")).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregating usage records: %w", err)
	}

	out := make([]ProviderTotal, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProviderTotal{
			ServiceType: r.ServiceType,
			Provider:    r.Provider,
			TotalUSD:    r.Sum,
			Calls:       r.Count,
		})
	}
	return out, nil
}

// UserSpend sums one user's spend over [since, until).
func (s *EntStore) UserSpend(ctx context.Context, userID string, since, until time.Time) (float64, error) {
	var rows []struct {
		Sum float64 `json:"sum"`
	}
	err := s.db.UsageRecord.Query().
		Where(
			usagerecord.UserID(userID),
			usagerecord.CreatedAtGTE(since),
			usagerecord.CreatedAtLT(until),
		).
		Aggregate(ent.As(ent.Sum(usagerecord.FieldCost), "sum")).
		Scan(ctx, &rows)
	if err != nil {
		return 0, fmt.Errorf("aggregating user spend: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Sum, nil
}

var _ UsageStore = (*EntStore)(nil)
