package queue

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scribeflow/scribeflow/ent"
	"github.com/scribeflow/scribeflow/ent/task"
	"github.com/scribeflow/scribeflow/pkg/media"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/providers/storage"
	"github.com/scribeflow/scribeflow/pkg/selector"
)

// objectURLTTL is how long presigned read URLs handed to vendors stay valid.
const objectURLTTL = time.Hour

// stageResolve turns a user-supplied URL into a direct media URL.
func (e *Executor) stageResolve(ctx context.Context, t *ent.Task, state *pipelineState) (map[string]interface{}, error) {
	if t.SourceURL == nil || *t.SourceURL == "" {
		return nil, providers.Errorf(providers.KindInvalidFormat, "", "task has no source_url")
	}

	mediaURL, err := e.resolver.Resolve(ctx, *t.SourceURL)
	if err != nil {
		return nil, err
	}

	state.mediaURL = mediaURL
	state.format = media.GuessFormat(mediaURL)
	return map[string]interface{}{
		"media_url": state.mediaURL,
		"format":    state.format,
	}, nil
}

// stageDownload fetches the source media to a local work file. Upload sources
// come out of object storage via a presigned read; url sources use the
// resolved media URL.
func (e *Executor) stageDownload(ctx context.Context, t *ent.Task, state *pipelineState) (map[string]interface{}, error) {
	srcURL := state.mediaURL
	if t.SourceType == task.SourceTypeUpload {
		if t.FileKey == nil || *t.FileKey == "" {
			return nil, providers.Errorf(providers.KindInvalidFormat, "", "task has no file_key")
		}
		client, _, err := e.storageClient(ctx, t.UserID, state)
		if err != nil {
			return nil, err
		}
		srcURL, err = client.GetObjectURL(ctx, *t.FileKey, objectURLTTL)
		if err != nil {
			return nil, err
		}
		state.format = keyExt(*t.FileKey)
	}
	if srcURL == "" {
		return nil, providers.Errorf(providers.KindInvalidFormat, "", "no media source to download")
	}

	dl, err := e.downloader.Fetch(ctx, srcURL)
	if err != nil {
		return nil, err
	}

	state.localPath = dl.Path
	state.contentHash = dl.ContentHash
	state.sizeBytes = dl.SizeBytes
	if state.format == "" {
		state.format = dl.Format
	}
	return map[string]interface{}{
		"path":         state.localPath,
		"size_bytes":   state.sizeBytes,
		"content_hash": state.contentHash,
		"format":       state.format,
	}, nil
}

// stageTranscode probes the media and normalizes its audio track to the
// canonical mono WAV the ASR providers consume. Rejects media with no audio
// or beyond the configured duration cap.
func (e *Executor) stageTranscode(ctx context.Context, t *ent.Task, state *pipelineState) (map[string]interface{}, error) {
	probe, err := e.transcoder.Probe(ctx, state.localPath)
	if err != nil {
		return nil, err
	}

	maxSeconds := e.cfg.Media.MaxDurationHours * 3600
	if maxSeconds > 0 && probe.DurationSeconds > maxSeconds {
		return nil, providers.Errorf(providers.KindInvalidFormat, "",
			"media duration %.0fs exceeds the %.0fh limit",
			probe.DurationSeconds, e.cfg.Media.MaxDurationHours)
	}

	audioPath, err := e.transcoder.Transcode(ctx, state.localPath)
	if err != nil {
		return nil, err
	}

	state.audioPath = audioPath
	state.durationSeconds = probe.DurationSeconds

	// Duration is now known; make it visible on the task.
	if err := e.client.Task.UpdateOneID(t.ID).
		SetDurationSeconds(probe.DurationSeconds).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("recording media duration: %w", err)
	}

	return map[string]interface{}{
		"audio_path":       state.audioPath,
		"duration_seconds": state.durationSeconds,
	}, nil
}

// stageUpload puts the canonical audio into object storage under a
// content-addressed key, so a re-run of the same media overwrites in place.
func (e *Executor) stageUpload(ctx context.Context, t *ent.Task, state *pipelineState) (map[string]interface{}, error) {
	client, providerName, err := e.storageClient(ctx, t.UserID, state)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(state.audioPath)
	if err != nil {
		return nil, fmt.Errorf("opening canonical audio: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat canonical audio: %w", err)
	}

	hash := state.contentHash
	if hash == "" {
		if hash, err = media.HashFile(state.audioPath); err != nil {
			return nil, fmt.Errorf("hashing canonical audio: %w", err)
		}
	}
	key := storage.UploadKey(time.Now(), hash, "wav")

	start := time.Now()
	err = client.PutObject(ctx, key, f, info.Size(), "audio/wav")
	if err != nil {
		e.health.RecordFailure(providers.ServiceStorage, providerName)
		e.breaker.RecordFailure(providers.ServiceStorage, providerName)
		return nil, err
	}
	e.health.RecordSuccess(providers.ServiceStorage, providerName, time.Since(start))
	e.breaker.RecordSuccess(providers.ServiceStorage, providerName)

	state.audioKey = key
	state.storageProvider = providerName
	return map[string]interface{}{
		"audio_key":        state.audioKey,
		"storage_provider": state.storageProvider,
	}, nil
}

// storageClient resolves the storage provider for this pipeline run. A
// provider recorded by an earlier stage is reused so the pipeline reads the
// object where it wrote it; otherwise the selector picks one.
func (e *Executor) storageClient(ctx context.Context, owner string, state *pipelineState) (providers.StorageClient, string, error) {
	name := state.storageProvider
	if name == "" {
		reg, err := e.selector.Select(ctx, providers.ServiceStorage, selector.Request{Owner: owner})
		if err != nil {
			return nil, "", classifySelection(err, "")
		}
		name = reg.Name
	}

	client, err := e.registry.Instantiate(ctx, providers.ServiceStorage, name, providers.Overrides{})
	if err != nil {
		return nil, "", err
	}
	sc, ok := client.(providers.StorageClient)
	if !ok {
		return nil, "", providers.Errorf(providers.KindConfig, name, "provider is not a storage client")
	}
	return sc, name, nil
}

// keyExt extracts the lowercase extension of an object key, without the dot.
func keyExt(key string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(key)), ".")
}
