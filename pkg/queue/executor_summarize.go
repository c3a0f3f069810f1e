package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/pkg/costs"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/resilience"
	"github.com/scribeflow/scribeflow/pkg/selector"
	"github.com/scribeflow/scribeflow/pkg/services"
	"github.com/scribeflow/scribeflow/pkg/stages"
	"github.com/scribeflow/scribeflow/pkg/summarize"
	"github.com/scribeflow/scribeflow/pkg/transcript"
)

// stageSummarize generates the core summary bundle from the persisted
// transcript and saves it with active-version semantics.
func (e *Executor) stageSummarize(ctx context.Context, t *ent.Task, _ *pipelineState, attempt int) (map[string]interface{}, error) {
	opts := taskOptions(t)

	input, err := e.summaryInput(ctx, t.ID, opts.SummaryStyle, opts.Language)
	if err != nil {
		return nil, err
	}

	llm, reg, err := e.selectSummaryLLM(ctx, opts.LLMProvider, opts.ModelID, input.Quality)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	items, err := e.generator.GenerateBundle(ctx, llm, input)
	if err != nil {
		e.recordVendorFailure(providers.ServiceLLM, reg.Name, err)
		return nil, err
	}
	e.health.RecordSuccess(providers.ServiceLLM, reg.Name, time.Since(start))
	e.breaker.RecordSuccess(providers.ServiceLLM, reg.Name)

	if err := e.summaries.SaveBundle(ctx, t.ID, items); err != nil {
		return nil, fmt.Errorf("saving summaries: %w", err)
	}

	tokens := 0
	types := make([]string, len(items))
	for i, item := range items {
		tokens += item.TokenCount
		types[i] = item.Type
	}
	e.trackLLMCost(ctx, t, reg, t.ID+":summarize", attempt, tokens)

	return map[string]interface{}{
		"provider": reg.Name,
		"types":    types,
		"tokens":   tokens,
	}, nil
}

// stageVisualize generates one diagram summary for the source task of a
// visualization run. The diagram attaches to the SOURCE task, so its summary
// listing carries the visual alongside the text summaries.
func (e *Executor) stageVisualize(ctx context.Context, t *ent.Task, attempt int) (map[string]interface{}, error) {
	sourceID := outStr(t.Options, "source_task_id")
	if sourceID == "" {
		return nil, providers.Errorf(providers.KindInvalidFormat, "", "visualization task has no source_task_id")
	}
	visualType, ok := visualSummaryType(outStr(t.Options, "visual_type"))
	if !ok {
		return nil, providers.Errorf(providers.KindInvalidFormat, "",
			"unknown visual_type %q", outStr(t.Options, "visual_type"))
	}

	input, err := e.summaryInput(ctx, sourceID, outStr(t.Options, "content_style"), "")
	if err != nil {
		return nil, err
	}

	llm, reg, err := e.selectLLM(ctx, outStr(t.Options, "llm_provider"), outStr(t.Options, "model_id"))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	item, err := e.generator.GenerateVisual(ctx, llm, visualType, input)
	if err != nil {
		e.recordVendorFailure(providers.ServiceLLM, reg.Name, err)
		return nil, err
	}
	e.health.RecordSuccess(providers.ServiceLLM, reg.Name, time.Since(start))
	e.breaker.RecordSuccess(providers.ServiceLLM, reg.Name)

	saved, err := e.summaries.SaveItem(ctx, sourceID, item)
	if err != nil {
		return nil, fmt.Errorf("saving visual summary: %w", err)
	}

	if outBool(t.Options, "generate_image") {
		// No diagram renderer is wired in; the validated Mermaid source is
		// the product and image_key stays empty.
		slog.Info("Image rendering not configured, storing diagram source only",
			"task_id", t.ID, "summary_id", saved.ID)
	}

	e.trackLLMCost(ctx, t, reg, t.ID+":visualize", attempt, item.TokenCount)

	return map[string]interface{}{
		"provider":    reg.Name,
		"summary_id":  saved.ID,
		"visual_type": visualType,
		"tokens":      item.TokenCount,
	}, nil
}

// RegenerateSummaries re-runs summary generation for a completed task
// synchronously, outside the queue. New versions archive the old ones.
func (e *Executor) RegenerateSummaries(ctx context.Context, t *ent.Task) error {
	ctx, cancel := context.WithTimeout(ctx, stageDeadlines[stages.StageSummarize])
	defer cancel()

	return resilience.Retry(ctx, e.retry, func(ctx context.Context, attempt int) error {
		_, err := e.stageSummarize(ctx, t, nil, attempt)
		return err
	})
}

// summaryInput assembles the generator input from the stored transcript.
// A missing transcript is terminal: there is nothing to summarize.
func (e *Executor) summaryInput(ctx context.Context, taskID, style, language string) (summarize.Input, error) {
	text, err := e.transcripts.FullText(ctx, taskID)
	if err != nil {
		if errors.Is(err, services.ErrNoTranscript) {
			return summarize.Input{}, providers.NewError(providers.KindInvalidFormat, "", err)
		}
		return summarize.Input{}, err
	}

	quality, err := e.transcripts.Quality(ctx, taskID)
	if err != nil {
		return summarize.Input{}, err
	}

	if style == "" {
		style = "general"
	}
	return summarize.Input{
		Transcript: text,
		Style:      style,
		Language:   language,
		Quality:    quality,
	}, nil
}

// selectSummaryLLM picks the LLM for the summary bundle. Low transcript
// quality substitutes a premium-tier model when one is usable; otherwise the
// standard selection applies.
func (e *Executor) selectSummaryLLM(ctx context.Context, preferred, modelID string, quality transcript.Quality) (providers.LLMClient, providers.Registration, error) {
	if quality.Score != transcript.ConfidenceLow {
		return e.selectLLM(ctx, preferred, modelID)
	}

	llm, reg, err := e.selectPremiumLLM(ctx)
	if err != nil {
		slog.Warn("No premium model usable for low-quality transcript, using standard selection",
			"avg_confidence", quality.AvgConfidence, "error", err)
		return e.selectLLM(ctx, preferred, modelID)
	}
	slog.Warn("Low-quality transcript, substituting premium model",
		"avg_confidence", quality.AvgConfidence, "provider", reg.Name)
	return llm, reg, nil
}

// selectPremiumLLM instantiates the first configured premium-tier provider
// whose circuit is closed.
func (e *Executor) selectPremiumLLM(ctx context.Context) (providers.LLMClient, providers.Registration, error) {
	for _, reg := range e.registry.Discover(providers.ServiceLLM) {
		if !reg.Metadata.Premium || !e.breaker.Allow(providers.ServiceLLM, reg.Name) {
			continue
		}
		client, err := e.registry.Instantiate(ctx, providers.ServiceLLM, reg.Name, providers.Overrides{})
		if err != nil {
			slog.Warn("Premium provider failed to instantiate", "provider", reg.Name, "error", err)
			continue
		}
		llm, ok := client.(providers.LLMClient)
		if !ok {
			continue
		}
		return llm, reg, nil
	}
	return nil, providers.Registration{}, providers.Errorf(providers.KindUnavailable, "", "no premium llm provider usable")
}

// selectLLM picks and instantiates the LLM provider for a generation call.
func (e *Executor) selectLLM(ctx context.Context, preferred, modelID string) (providers.LLMClient, providers.Registration, error) {
	reg, err := e.selector.Select(ctx, providers.ServiceLLM, selector.Request{Preferred: preferred})
	if err != nil {
		return nil, providers.Registration{}, classifySelection(err, preferred)
	}

	if !e.breaker.Allow(providers.ServiceLLM, reg.Name) {
		return nil, providers.Registration{}, providers.Errorf(providers.KindTransient, reg.Name, "circuit open")
	}

	client, err := e.registry.Instantiate(ctx, providers.ServiceLLM, reg.Name, providers.Overrides{ModelID: modelID})
	if err != nil {
		return nil, providers.Registration{}, err
	}
	llm, ok := client.(providers.LLMClient)
	if !ok {
		return nil, providers.Registration{}, providers.Errorf(providers.KindConfig, reg.Name, "provider is not an LLM client")
	}
	return llm, reg, nil
}

// trackLLMCost records token spend for a generation call. CostPerUnit for
// LLM providers is USD per 1K tokens.
func (e *Executor) trackLLMCost(ctx context.Context, t *ent.Task, reg providers.Registration, requestID string, attempt, tokens int) {
	if err := e.costs.Track(ctx, costs.Record{
		ServiceType: providers.ServiceLLM,
		Provider:    reg.Name,
		UserID:      t.UserID,
		TaskID:      t.ID,
		RequestID:   requestID,
		Attempt:     attempt,
		CostUSD:     float64(tokens) / 1000 * reg.Metadata.CostPerUnit,
		Tokens:      tokens,
		At:          time.Now(),
	}); err != nil {
		slog.Error("Failed to record LLM cost", "task_id", t.ID, "provider", reg.Name, "error", err)
	}
}

// visualSummaryType maps the API visual_type to the stored summary type.
func visualSummaryType(visualType string) (string, bool) {
	switch visualType {
	case "mindmap":
		return summarize.TypeVisualMindmap, true
	case "timeline":
		return summarize.TypeVisualTimeline, true
	case "flowchart":
		return summarize.TypeVisualFlowchart, true
	}
	return "", false
}
