package config

// ASRProviderConfig defines a speech-to-text provider configuration.
type ASRProviderConfig struct {
	// DisplayName for API responses and logs.
	DisplayName string `yaml:"display_name"`

	// APIKeyEnv is the environment variable holding the vendor credential.
	APIKeyEnv string `yaml:"api_key_env"`

	// BaseURL optionally overrides the vendor endpoint.
	BaseURL string `yaml:"base_url,omitempty"`

	// Model is the vendor transcription model.
	Model string `yaml:"model,omitempty"`

	// CostPerSecond is the USD price per transcribed audio second.
	CostPerSecond float64 `yaml:"cost_per_second"`

	// Variants are the quota lanes the provider serves (file, file_fast, ...).
	Variants []string `yaml:"variants"`

	// SupportsDiarization reports speaker-labeling capability.
	SupportsDiarization bool `yaml:"supports_diarization"`

	// FreeTierSeconds is the free allocation per reset period, 0 = none.
	FreeTierSeconds float64 `yaml:"free_tier_seconds,omitempty"`

	// FreeTierResetPeriod is monthly, yearly, or none.
	FreeTierResetPeriod string `yaml:"free_tier_reset_period,omitempty"`
}

// LLMProviderConfig defines an LLM provider configuration.
type LLMProviderConfig struct {
	DisplayName string `yaml:"display_name"`
	APIKeyEnv   string `yaml:"api_key_env"`
	BaseURL     string `yaml:"base_url,omitempty"`

	// Models lists the usable model ids; empty means single-model.
	Models []string `yaml:"models,omitempty"`

	// DefaultModel fills requests that carry no model_id. When Models is
	// non-empty and DefaultModel is unset, requests must name a model.
	DefaultModel string `yaml:"default_model,omitempty"`

	// Premium marks the provider/model tier used for final summary passes.
	Premium bool `yaml:"premium,omitempty"`

	// CostInputPer1K and CostOutputPer1K are USD prices per 1K tokens.
	CostInputPer1K  float64 `yaml:"cost_input_per_1k"`
	CostOutputPer1K float64 `yaml:"cost_output_per_1k"`
}

// StorageConfig defines the object store holding media and visuals.
type StorageConfig struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint,omitempty"`
	AccessKeyIDEnv  string `yaml:"access_key_id_env,omitempty"`
	SecretKeyEnv    string `yaml:"secret_key_env,omitempty"`
	ForcePathStyle  bool   `yaml:"force_path_style,omitempty"`
	PresignTTLHours int    `yaml:"presign_ttl_hours,omitempty"`
}

// RedisConfig defines the cost tracker's fast index store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
}

// DefaultRedisConfig returns the built-in Redis defaults.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{Addr: "localhost:6379"}
}
