package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/pkg/config"
	"github.com/scribeflow/scribeflow/pkg/costs"
	"github.com/scribeflow/scribeflow/pkg/events"
	"github.com/scribeflow/scribeflow/pkg/health"
	"github.com/scribeflow/scribeflow/pkg/media"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/quota"
	"github.com/scribeflow/scribeflow/pkg/resilience"
	"github.com/scribeflow/scribeflow/pkg/selector"
	"github.com/scribeflow/scribeflow/pkg/services"
	"github.com/scribeflow/scribeflow/pkg/stages"
	"github.com/scribeflow/scribeflow/pkg/summarize"
)

// stageDeadlines bound each stage's vendor-facing work per attempt.
var stageDeadlines = map[stages.StageType]time.Duration{
	stages.StageResolve:       30 * time.Second,
	stages.StageDownload:      10 * time.Minute,
	stages.StageTranscode:     10 * time.Minute,
	stages.StageUploadStorage: 5 * time.Minute,
	stages.StageTranscribe:    30 * time.Minute,
	stages.StageSummarize:     5 * time.Minute,
	stages.StageVisualize:     5 * time.Minute,
}

// Executor drives a claimed task through its pipeline stages. It persists
// stage rows, transcript segments, and summaries progressively, so a crash
// mid-pipeline resumes at the first incomplete stage.
type Executor struct {
	client      *ent.Client
	machine     *stages.Machine
	registry    *providers.Registry
	selector    *selector.Selector
	health      *health.Monitor
	breaker     *resilience.Breaker
	quota       *quota.Manager
	costs       *costs.Tracker
	publisher   *events.Publisher
	transcripts *services.TranscriptService
	summaries   *services.SummaryService
	generator   *summarize.Generator
	resolver    *media.Resolver
	downloader  *media.Downloader
	transcoder  *media.Transcoder
	cfg         *config.Config
	retry       resilience.RetryConfig
}

// ExecutorDeps collects the collaborators an Executor needs.
type ExecutorDeps struct {
	Client      *ent.Client
	Registry    *providers.Registry
	Selector    *selector.Selector
	Health      *health.Monitor
	Breaker     *resilience.Breaker
	Quota       *quota.Manager
	Costs       *costs.Tracker
	Publisher   *events.Publisher
	Transcripts *services.TranscriptService
	Summaries   *services.SummaryService
	Generator   *summarize.Generator
	Config      *config.Config
}

// NewExecutor creates a pipeline executor.
func NewExecutor(deps ExecutorDeps) *Executor {
	mediaCfg := deps.Config.Media
	return &Executor{
		client:      deps.Client,
		machine:     stages.NewMachine(deps.Client),
		registry:    deps.Registry,
		selector:    deps.Selector,
		health:      deps.Health,
		breaker:     deps.Breaker,
		quota:       deps.Quota,
		costs:       deps.Costs,
		publisher:   deps.Publisher,
		transcripts: deps.Transcripts,
		summaries:   deps.Summaries,
		generator:   deps.Generator,
		resolver:    media.NewResolver(30*time.Second, mediaCfg.AllowedURLSchemes),
		downloader:  media.NewDownloader(mediaCfg.WorkDir, mediaCfg.MaxUploadMB<<20, mediaCfg.DownloadTimeout),
		transcoder:  media.NewTranscoder(mediaCfg.FFmpegPath, mediaCfg.FFprobePath),
		cfg:         deps.Config,
		retry:       resilience.DefaultRetryConfig(),
	}
}

// pipelineState carries stage artifacts through one pipeline run. Durable
// values come back from stage output maps on resume; local file paths only
// survive within a pod.
type pipelineState struct {
	mediaURL        string
	format          string
	localPath       string
	contentHash     string
	sizeBytes       int64
	audioPath       string
	durationSeconds float64
	audioKey        string
	storageProvider string

	// maxProgress keeps published progress monotone across stage re-runs.
	maxProgress int
}

// Execute runs the task's pipeline to a terminal state. Intermediate state is
// written to the DB as it is produced; the returned result only carries the
// terminal status and error.
func (e *Executor) Execute(ctx context.Context, t *ent.Task) *ExecutionResult {
	order := stages.OrderFor(t.Kind, t.SourceType)
	state := &pipelineState{maxProgress: t.Progress}
	log := slog.With("task_id", t.ID, "kind", t.Kind)

	for i := 0; i < len(order); i++ {
		stage := order[i]

		if err := ctx.Err(); err != nil {
			return e.failed(ctx, nil, err)
		}

		rec, done, err := e.machine.Begin(ctx, t.ID, stage)
		if err != nil {
			return e.failed(ctx, nil, fmt.Errorf("stage bookkeeping: %w", err))
		}
		if done {
			state.absorb(stage, rec.Output)
			log.Info("Stage already completed, skipping", "stage", stage)
			continue
		}

		// A crash between stages can leave a completed producer whose local
		// file is gone. Step back and re-run it before this stage.
		if producer, stale := e.staleInput(stage, state); stale {
			log.Warn("Stage input missing, re-running producer",
				"stage", stage, "producer", producer)
			if err := e.machine.Reset(ctx, t.ID, producer); err != nil {
				return e.failed(ctx, rec, fmt.Errorf("stage bookkeeping: %w", err))
			}
			i = stages.Index(order, producer) - 1
			continue
		}

		lo, hi := stages.Band(stage)
		e.advance(ctx, t, stage, lo, state)

		output, runErr := e.runStage(ctx, t, stage, state)
		if runErr != nil {
			log.Error("Stage failed", "stage", stage, "error", runErr)
			return e.failed(ctx, rec, runErr)
		}

		if _, err := e.machine.Complete(ctx, rec, output); err != nil {
			return e.failed(ctx, rec, fmt.Errorf("stage bookkeeping: %w", err))
		}
		e.advance(ctx, t, stage, hi, state)
		log.Info("Stage completed", "stage", stage, "progress", state.maxProgress)
	}

	return &ExecutionResult{Status: task.StatusCompleted}
}

// runStage executes one stage action under the retry policy, with a fresh
// per-attempt deadline. Only transient failures are retried.
func (e *Executor) runStage(ctx context.Context, t *ent.Task, stage stages.StageType, state *pipelineState) (map[string]interface{}, error) {
	var output map[string]interface{}
	err := resilience.Retry(ctx, e.retry, func(ctx context.Context, attempt int) error {
		stageCtx, cancel := context.WithTimeout(ctx, stageDeadlines[stage])
		defer cancel()

		var err error
		output, err = e.doStage(stageCtx, t, stage, state, attempt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (e *Executor) doStage(ctx context.Context, t *ent.Task, stage stages.StageType, state *pipelineState, attempt int) (map[string]interface{}, error) {
	switch stage {
	case stages.StageResolve:
		return e.stageResolve(ctx, t, state)
	case stages.StageDownload:
		return e.stageDownload(ctx, t, state)
	case stages.StageTranscode:
		return e.stageTranscode(ctx, t, state)
	case stages.StageUploadStorage:
		return e.stageUpload(ctx, t, state)
	case stages.StageTranscribe:
		return e.stageTranscribe(ctx, t, state, attempt)
	case stages.StageSummarize:
		return e.stageSummarize(ctx, t, state, attempt)
	case stages.StageVisualize:
		return e.stageVisualize(ctx, t, attempt)
	default:
		return nil, fmt.Errorf("unknown stage %q", stage)
	}
}

// staleInput reports whether the stage's local-file input from an earlier
// completed stage no longer exists, and which stage produces it.
func (e *Executor) staleInput(stage stages.StageType, state *pipelineState) (stages.StageType, bool) {
	switch stage {
	case stages.StageTranscode:
		if state.localPath == "" || fileMissing(state.localPath) {
			return stages.StageDownload, true
		}
	case stages.StageUploadStorage:
		if state.audioPath == "" || fileMissing(state.audioPath) {
			return stages.StageTranscode, true
		}
	}
	return "", false
}

func fileMissing(path string) bool {
	_, err := os.Stat(path)
	return err != nil
}

// advance raises task progress to p (never lowers it), updates the observable
// status for the running stage, and publishes a progress event.
func (e *Executor) advance(ctx context.Context, t *ent.Task, stage stages.StageType, p int, state *pipelineState) {
	if p < state.maxProgress {
		p = state.maxProgress
	}
	state.maxProgress = p

	status := stages.StatusFor(stage)
	err := e.client.Task.UpdateOneID(t.ID).
		SetStatus(status).
		SetProgress(p).
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to update task progress", "task_id", t.ID, "error", err)
	}

	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishProgress(ctx, events.ProgressPayload{
		Type:     events.EventTypeProgress,
		TaskID:   t.ID,
		Status:   string(status),
		Stage:    string(stage),
		Progress: p,
	}); err != nil {
		slog.Warn("Failed to publish progress", "task_id", t.ID, "error", err)
	}
}

// failed marks the current stage attempt failed and builds the terminal
// result. Uses a background context for bookkeeping since the task context
// may already be cancelled.
func (e *Executor) failed(ctx context.Context, rec *ent.TaskStage, err error) *ExecutionResult {
	msg := terminalMessage(ctx, err)
	if rec != nil {
		writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, ferr := e.machine.Fail(writeCtx, rec, msg); ferr != nil {
			slog.Error("Failed to record stage failure", "error", ferr)
		}
	}
	return &ExecutionResult{Status: task.StatusFailed, Error: errors.New(msg)}
}

// terminalMessage renders the user-visible error_message for a pipeline
// failure. Cancellation collapses to the literal "cancelled".
func terminalMessage(ctx context.Context, err error) string {
	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
		return "cancelled"
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "task timed out"
	}
	if err == nil {
		return "internal error"
	}
	return err.Error()
}

// absorb restores durable stage outputs into the in-memory pipeline state on
// crash-resume.
func (state *pipelineState) absorb(stage stages.StageType, output map[string]interface{}) {
	switch stage {
	case stages.StageResolve:
		state.mediaURL = outStr(output, "media_url")
		state.format = outStr(output, "format")
	case stages.StageDownload:
		state.localPath = outStr(output, "path")
		state.contentHash = outStr(output, "content_hash")
		state.format = outStr(output, "format")
		state.sizeBytes = int64(outNum(output, "size_bytes"))
	case stages.StageTranscode:
		state.audioPath = outStr(output, "audio_path")
		state.durationSeconds = outNum(output, "duration_seconds")
	case stages.StageUploadStorage:
		state.audioKey = outStr(output, "audio_key")
		state.storageProvider = outStr(output, "storage_provider")
	}
}

// outStr reads a string field from a stage output map.
func outStr(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// outBool reads a boolean field from a stage output map.
func outBool(m map[string]interface{}, key string) bool {
	if m == nil {
		return false
	}
	b, _ := m[key].(bool)
	return b
}

// outNum reads a numeric field from a stage output map. Values round-tripped
// through the JSON column come back as float64.
func outNum(m map[string]interface{}, key string) float64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}
