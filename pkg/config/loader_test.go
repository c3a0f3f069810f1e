package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFiles(t *testing.T, scribeflowYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scribeflow.yaml"), []byte(scribeflowYAML), 0o644))
	if providersYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "providers.yaml"), []byte(providersYAML), 0o644))
	}
	return dir
}

const minimalScribeflowYAML = `
storage:
  bucket: scribeflow-media
  region: us-east-1
`

func TestInitializeDefaults(t *testing.T) {
	dir := writeConfigFiles(t, minimalScribeflowYAML, "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.Equal(t, StrategyBalanced, cfg.Selector.Strategy)
	assert.InDelta(t, 0.40, cfg.Selector.Weights.FreeQuota, 1e-9)
	assert.Equal(t, 365, cfg.Retention.TaskRetentionDays)
	assert.Equal(t, int64(500), cfg.Media.MaxUploadMB)
	assert.Equal(t, "scribeflow-media", cfg.Storage.Bucket)

	// Built-in provider catalog stands without providers.yaml.
	_, ok := cfg.GetASRProvider("whisper")
	assert.True(t, ok)
	_, ok = cfg.GetLLMProvider("anthropic")
	assert.True(t, ok)
}

func TestInitializeUserOverrides(t *testing.T) {
	scribeflowYAML := minimalScribeflowYAML + `
queue:
  worker_count: 9
  poll_interval: 250ms
selector:
  strategy: cost_first
`
	providersYAML := `
asr_providers:
  deepgram:
    display_name: Deepgram Custom
    api_key_env: DG_KEY
    cost_per_second: 0.0005
    variants: [file]
llm_providers:
  internal:
    display_name: Internal Gateway
    api_key_env: INTERNAL_LLM_KEY
    models: [fast, smart]
    default_model: fast
    cost_input_per_1k: 0.0001
    cost_output_per_1k: 0.0002
`
	dir := writeConfigFiles(t, scribeflowYAML, providersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Queue.WorkerCount)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.PollInterval)
	// Unset fields keep their defaults through the merge.
	assert.Equal(t, 60*time.Minute, cfg.Queue.TaskTimeout)
	assert.Equal(t, StrategyCostFirst, cfg.Selector.Strategy)

	dg, ok := cfg.GetASRProvider("deepgram")
	require.True(t, ok)
	assert.Equal(t, "DG_KEY", dg.APIKeyEnv)
	assert.Equal(t, []string{"file"}, dg.Variants)

	internal, ok := cfg.GetLLMProvider("internal")
	require.True(t, ok)
	assert.Equal(t, "fast", internal.DefaultModel)
	// Built-ins survive alongside user additions.
	_, ok = cfg.GetLLMProvider("openai")
	assert.True(t, ok)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_BUCKET_NAME", "expanded-bucket")

	dir := writeConfigFiles(t, `
storage:
  bucket: "{{.TEST_BUCKET_NAME}}"
  region: us-east-1
`, "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "expanded-bucket", cfg.Storage.Bucket)
}

func TestInitializeValidation(t *testing.T) {
	t.Run("missing storage bucket", func(t *testing.T) {
		dir := writeConfigFiles(t, `
storage:
  region: us-east-1
`, "")
		_, err := Initialize(context.Background(), dir)
		require.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("bad selector strategy", func(t *testing.T) {
		dir := writeConfigFiles(t, minimalScribeflowYAML+`
selector:
  strategy: vibes_first
`, "")
		_, err := Initialize(context.Background(), dir)
		require.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("unbalanced weights", func(t *testing.T) {
		dir := writeConfigFiles(t, minimalScribeflowYAML+`
selector:
  strategy: balanced
  weights:
    free_quota: 0.9
    health: 0.9
    cost: 0.1
    quota: 0.1
`, "")
		_, err := Initialize(context.Background(), dir)
		require.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := Initialize(context.Background(), t.TempDir())
		require.ErrorIs(t, err, ErrConfigNotFound)
	})
}
