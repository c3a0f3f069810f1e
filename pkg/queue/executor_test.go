package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/pkg/config"
	"github.com/scribeflow/scribeflow/pkg/health"
	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/resilience"
	"github.com/scribeflow/scribeflow/pkg/selector"
	"github.com/scribeflow/scribeflow/pkg/stages"
	"github.com/scribeflow/scribeflow/pkg/summarize"
	"github.com/scribeflow/scribeflow/pkg/transcript"
)

func TestTerminalMessageCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "cancelled", terminalMessage(ctx, errors.New("vendor call aborted")))
	assert.Equal(t, "cancelled", terminalMessage(context.Background(), context.Canceled))
}

func TestTerminalMessageTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()

	assert.Equal(t, "task timed out", terminalMessage(ctx, ctx.Err()))
}

func TestTerminalMessagePlainError(t *testing.T) {
	assert.Equal(t, "boom", terminalMessage(context.Background(), errors.New("boom")))
	assert.Equal(t, "internal error", terminalMessage(context.Background(), nil))
}

func TestClassifySelection(t *testing.T) {
	err := classifySelection(selector.ErrAllExhausted, "")
	assert.Equal(t, providers.KindQuotaExceeded, providers.KindOf(err))

	err = classifySelection(selector.ErrNoProviders, "")
	assert.Equal(t, providers.KindUnavailable, providers.KindOf(err))

	err = classifySelection(selector.ErrPreferredUnavailable, "deepgram")
	assert.Equal(t, providers.KindUnavailable, providers.KindOf(err))

	// Selection failures must not be retried as transient vendor errors.
	assert.False(t, providers.IsTransient(classifySelection(selector.ErrAllExhausted, "")))
}

func TestAbsorbRoundTrip(t *testing.T) {
	state := &pipelineState{}

	state.absorb(stages.StageResolve, map[string]interface{}{
		"media_url": "https://cdn.example.com/a.mp4",
		"format":    "mp4",
	})
	assert.Equal(t, "https://cdn.example.com/a.mp4", state.mediaURL)
	assert.Equal(t, "mp4", state.format)

	// Numbers come back from the JSON column as float64.
	state.absorb(stages.StageDownload, map[string]interface{}{
		"path":         "/tmp/work/abc.mp4",
		"size_bytes":   float64(1024),
		"content_hash": "abc123",
		"format":       "mp4",
	})
	assert.Equal(t, "/tmp/work/abc.mp4", state.localPath)
	assert.Equal(t, int64(1024), state.sizeBytes)

	state.absorb(stages.StageTranscode, map[string]interface{}{
		"audio_path":       "/tmp/work/abc.wav",
		"duration_seconds": 93.5,
	})
	assert.Equal(t, 93.5, state.durationSeconds)

	state.absorb(stages.StageUploadStorage, map[string]interface{}{
		"audio_key":        "uploads/2026/08/abc123.wav",
		"storage_provider": "s3",
	})
	assert.Equal(t, "uploads/2026/08/abc123.wav", state.audioKey)
	assert.Equal(t, "s3", state.storageProvider)
}

func TestStaleInputDetectsMissingFiles(t *testing.T) {
	e := &Executor{}

	producer, stale := e.staleInput(stages.StageTranscode, &pipelineState{localPath: "/nonexistent/file.mp4"})
	assert.True(t, stale)
	assert.Equal(t, stages.StageDownload, producer)

	producer, stale = e.staleInput(stages.StageUploadStorage, &pipelineState{})
	assert.True(t, stale)
	assert.Equal(t, stages.StageTranscode, producer)

	_, stale = e.staleInput(stages.StageTranscribe, &pipelineState{})
	assert.False(t, stale)
}

func TestTaskOptionsDecoding(t *testing.T) {
	opts := taskOptions(&ent.Task{Options: map[string]interface{}{
		"language":                   "zh",
		"enable_speaker_diarization": true,
		"summary_style":              "meeting",
		"asr_variant":                "file_fast",
	}})

	assert.Equal(t, "zh", opts.Language)
	assert.True(t, opts.EnableSpeakerDiarization)
	assert.Equal(t, "meeting", opts.SummaryStyle)
	assert.Equal(t, "file_fast", opts.ASRVariant)

	assert.Equal(t, models.TaskOptions{}, taskOptions(&ent.Task{}))
}

func TestWordsToJSON(t *testing.T) {
	out := wordsToJSON([]models.WordTimestamp{
		{Word: "hello", Start: 0.5, End: 0.9},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "hello", out[0]["word"])
	assert.Equal(t, 0.5, out[0]["start"])
}

func TestVisualSummaryType(t *testing.T) {
	st, ok := visualSummaryType("mindmap")
	require.True(t, ok)
	assert.Equal(t, summarize.TypeVisualMindmap, st)

	st, ok = visualSummaryType("timeline")
	require.True(t, ok)
	assert.Equal(t, summarize.TypeVisualTimeline, st)

	st, ok = visualSummaryType("flowchart")
	require.True(t, ok)
	assert.Equal(t, summarize.TypeVisualFlowchart, st)

	_, ok = visualSummaryType("wordcloud")
	assert.False(t, ok)
}

// stubLLM satisfies providers.LLMClient for selection tests.
type stubLLM struct {
	name  string
	model string
}

func (s *stubLLM) Provider() string                 { return s.name }
func (s *stubLLM) ModelName() string                { return s.model }
func (s *stubLLM) EstimateCost(in, out int) float64 { return 0 }
func (s *stubLLM) Generate(context.Context, string, string, providers.GenerateParams) (string, error) {
	return "ok", nil
}
func (s *stubLLM) Chat(context.Context, []providers.ChatMessage, providers.GenerateParams) (string, error) {
	return "ok", nil
}
func (s *stubLLM) ChatStream(context.Context, []providers.ChatMessage, providers.GenerateParams) (<-chan string, error) {
	return nil, providers.ErrStreamingUnsupported
}

type unconstrainedQuota struct{}

func (unconstrainedQuota) Available(context.Context, string, string, string, float64) (bool, error) {
	return true, nil
}
func (unconstrainedQuota) RemainingFraction(context.Context, string, string) (float64, error) {
	return 1, nil
}

func llmRegistration(name string, premium bool) providers.Registration {
	return providers.Registration{
		ServiceType: providers.ServiceLLM,
		Name:        name,
		Metadata:    providers.Metadata{Premium: premium},
		Factory: func(context.Context, providers.Overrides) (providers.Client, error) {
			return &stubLLM{name: name, model: name + "-1"}, nil
		},
	}
}

func newSelectionExecutor(t *testing.T, regs ...providers.Registration) *Executor {
	t.Helper()
	registry := providers.NewRegistry()
	for _, reg := range regs {
		require.NoError(t, registry.Register(reg))
	}
	breaker := resilience.NewBreaker()
	monitor := health.NewMonitor()
	return &Executor{
		registry: registry,
		breaker:  breaker,
		health:   monitor,
		selector: selector.New(registry, monitor, breaker, unconstrainedQuota{}, config.DefaultSelectorConfig()),
	}
}

func TestSelectSummaryLLMPremiumSubstitution(t *testing.T) {
	e := newSelectionExecutor(t,
		llmRegistration("budget-vendor", false),
		llmRegistration("claude-tier", true),
	)
	ctx := context.Background()

	lowQuality := transcript.Quality{Score: transcript.ConfidenceLow, AvgConfidence: 0.45}
	llm, reg, err := e.selectSummaryLLM(ctx, "budget-vendor", "", lowQuality)
	require.NoError(t, err)
	assert.Equal(t, "claude-tier", reg.Name)
	assert.Equal(t, "claude-tier", llm.Provider())

	// Normal quality keeps the requested provider.
	_, reg, err = e.selectSummaryLLM(ctx, "budget-vendor", "",
		transcript.Quality{Score: transcript.ConfidenceHigh, AvgConfidence: 0.92})
	require.NoError(t, err)
	assert.Equal(t, "budget-vendor", reg.Name)
}

func TestSelectSummaryLLMFallsBackWithoutPremium(t *testing.T) {
	e := newSelectionExecutor(t, llmRegistration("budget-vendor", false))

	lowQuality := transcript.Quality{Score: transcript.ConfidenceLow, AvgConfidence: 0.3}
	_, reg, err := e.selectSummaryLLM(context.Background(), "budget-vendor", "", lowQuality)
	require.NoError(t, err)
	assert.Equal(t, "budget-vendor", reg.Name)
}

func TestOutputReaders(t *testing.T) {
	m := map[string]interface{}{
		"name":  "deepgram",
		"count": float64(7),
		"flag":  true,
	}

	assert.Equal(t, "deepgram", outStr(m, "name"))
	assert.Equal(t, 7.0, outNum(m, "count"))
	assert.True(t, outBool(m, "flag"))

	assert.Equal(t, "", outStr(nil, "name"))
	assert.Equal(t, 0.0, outNum(m, "missing"))
	assert.False(t, outBool(m, "missing"))
}
