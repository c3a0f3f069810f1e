package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/transcriptsegment"
	"github.com/scribeflow/scribeflow/pkg/costs"
	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/selector"
	"github.com/scribeflow/scribeflow/pkg/transcript"
)

// stageTranscribe selects an ASR provider, transcribes the canonical audio,
// and persists the cleaned segments. Quota and cost commit only on success.
func (e *Executor) stageTranscribe(ctx context.Context, t *ent.Task, state *pipelineState, attempt int) (map[string]interface{}, error) {
	opts := taskOptions(t)
	variant := opts.ASRVariant
	if variant == "" {
		variant = providers.VariantFileFast
	}

	reg, err := e.selector.Select(ctx, providers.ServiceASR, selector.Request{
		Owner:              t.UserID,
		Variant:            variant,
		NeedSeconds:        state.durationSeconds,
		RequireDiarization: opts.EnableSpeakerDiarization,
		Preferred:          opts.Provider,
	})
	if err != nil {
		return nil, classifySelection(err, opts.Provider)
	}

	if !e.breaker.Allow(providers.ServiceASR, reg.Name) {
		return nil, providers.Errorf(providers.KindTransient, reg.Name, "circuit open")
	}

	// The selector may have fallen back from the fast lane; commit against
	// the lane that actually has room.
	variant = e.effectiveVariant(ctx, t.UserID, reg.Name, variant, state.durationSeconds)

	client, err := e.registry.Instantiate(ctx, providers.ServiceASR, reg.Name, providers.Overrides{Variant: variant})
	if err != nil {
		return nil, err
	}
	asr, ok := client.(providers.ASRClient)
	if !ok {
		return nil, providers.Errorf(providers.KindConfig, reg.Name, "provider is not an ASR client")
	}

	storageClient, _, err := e.storageClient(ctx, t.UserID, state)
	if err != nil {
		return nil, err
	}
	audioURL, err := storageClient.GetObjectURL(ctx, state.audioKey, objectURLTTL)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := asr.Transcribe(ctx, providers.AudioSource{
		URL:    audioURL,
		Format: "wav",
	}, providers.TranscribeOptions{
		Language:          opts.Language,
		EnableDiarization: opts.EnableSpeakerDiarization,
		Variant:           variant,
	})
	if err != nil {
		e.recordVendorFailure(providers.ServiceASR, reg.Name, err)
		return nil, err
	}
	e.health.RecordSuccess(providers.ServiceASR, reg.Name, time.Since(start))
	e.breaker.RecordSuccess(providers.ServiceASR, reg.Name)

	segments := transcript.Process(result.Segments)
	if err := e.saveSegments(ctx, t.ID, segments); err != nil {
		return nil, err
	}

	duration := result.DurationSeconds
	if duration <= 0 {
		duration = state.durationSeconds
	}

	if err := e.quota.Consume(ctx, t.UserID, reg.Name, variant, duration); err != nil {
		return nil, fmt.Errorf("committing quota: %w", err)
	}
	if err := e.costs.Track(ctx, costs.Record{
		ServiceType:     providers.ServiceASR,
		Provider:        reg.Name,
		UserID:          t.UserID,
		TaskID:          t.ID,
		RequestID:       t.ID + ":transcribe",
		Attempt:         attempt,
		CostUSD:         duration * reg.Metadata.CostPerUnit,
		DurationSeconds: duration,
		At:              time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("recording cost: %w", err)
	}

	return map[string]interface{}{
		"provider":         reg.Name,
		"variant":          variant,
		"segment_count":    len(segments),
		"duration_seconds": duration,
		"language":         result.Language,
	}, nil
}

// saveSegments replaces the task's transcript segments in one transaction.
// Replacement keeps a retried transcribe stage from duplicating rows.
func (e *Executor) saveSegments(ctx context.Context, taskID string, segments []providers.TranscriptionSegment) error {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.TranscriptSegment.Delete().
		Where(transcriptsegment.TaskIDEQ(taskID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("clearing stale segments: %w", err)
	}

	builders := make([]*ent.TranscriptSegmentCreate, len(segments))
	for i, seg := range segments {
		create := tx.TranscriptSegment.Create().
			SetID(uuid.New().String()).
			SetTaskID(taskID).
			SetStartSeconds(seg.StartSeconds).
			SetEndSeconds(seg.EndSeconds).
			SetContent(seg.Content)
		if seg.SpeakerID != nil {
			create = create.SetSpeakerID(*seg.SpeakerID)
		}
		if seg.Confidence != nil {
			create = create.SetConfidence(*seg.Confidence)
		}
		if len(seg.Words) > 0 {
			create = create.SetWords(wordsToJSON(seg.Words))
		}
		builders[i] = create
	}
	if _, err := tx.TranscriptSegment.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("saving segments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing segments: %w", err)
	}
	return nil
}

// effectiveVariant returns the quota lane the call will actually consume:
// the requested fast lane when it still has room on this provider, otherwise
// the standard file lane.
func (e *Executor) effectiveVariant(ctx context.Context, owner, provider, variant string, need float64) string {
	if variant != providers.VariantFileFast {
		return variant
	}
	ok, err := e.quota.Available(ctx, owner, provider, variant, need)
	if err != nil {
		slog.Warn("Quota availability check failed, using standard lane",
			"provider", provider, "error", err)
		return providers.VariantFile
	}
	if !ok {
		return providers.VariantFile
	}
	return variant
}

// recordVendorFailure updates health for every failure and trips the breaker
// only for vendor-side failures. Input problems say nothing about the vendor.
func (e *Executor) recordVendorFailure(serviceType providers.ServiceType, provider string, err error) {
	e.health.RecordFailure(serviceType, provider)
	switch providers.KindOf(err) {
	case providers.KindTransient, providers.KindUnavailable:
		e.breaker.RecordFailure(serviceType, provider)
	}
}

// classifySelection maps selector errors onto the provider error taxonomy so
// the retry policy treats them correctly: exhaustion and absence are
// terminal, not retriable.
func classifySelection(err error, preferred string) error {
	switch {
	case errors.Is(err, selector.ErrAllExhausted):
		return providers.NewError(providers.KindQuotaExceeded, "", err)
	case errors.Is(err, selector.ErrPreferredUnavailable):
		return providers.NewError(providers.KindUnavailable, preferred, err)
	case errors.Is(err, selector.ErrNoProviders):
		return providers.NewError(providers.KindUnavailable, "", err)
	}
	return err
}

// taskOptions decodes the task's options JSON into the typed form.
func taskOptions(t *ent.Task) models.TaskOptions {
	var opts models.TaskOptions
	if len(t.Options) == 0 {
		return opts
	}
	data, err := json.Marshal(t.Options)
	if err != nil {
		return opts
	}
	_ = json.Unmarshal(data, &opts)
	return opts
}

// wordsToJSON converts typed word timestamps into the JSON column shape.
func wordsToJSON(words []models.WordTimestamp) []map[string]interface{} {
	data, err := json.Marshal(words)
	if err != nil {
		return nil
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
