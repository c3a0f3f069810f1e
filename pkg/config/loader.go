package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ScribeflowYAMLConfig represents the complete scribeflow.yaml file structure
type ScribeflowYAMLConfig struct {
	Queue            *QueueConfig     `yaml:"queue"`
	Retention        *RetentionConfig `yaml:"retention"`
	Selector         *SelectorConfig  `yaml:"selector"`
	Media            *MediaConfig     `yaml:"media"`
	Storage          *StorageConfig   `yaml:"storage"`
	Redis            *RedisConfig     `yaml:"redis"`
	AllowedWSOrigins []string         `yaml:"allowed_ws_origins"`
}

// ProvidersYAMLConfig represents the complete providers.yaml file structure
type ProvidersYAMLConfig struct {
	ASRProviders map[string]ASRProviderConfig `yaml:"asr_providers"`
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Merge built-in + user-defined provider catalogs
//  4. Apply default values for unset sections
//  5. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"asr_providers", stats.ASRProviders,
		"llm_providers", stats.LLMProviders)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	mainConfig, err := loader.loadScribeflowYAML()
	if err != nil {
		return nil, NewLoadError("scribeflow.yaml", err)
	}

	userProviders, err := loader.loadProvidersYAML()
	if err != nil {
		return nil, NewLoadError("providers.yaml", err)
	}

	builtin := GetBuiltinConfig()
	asrProviders := mergeASRProviders(builtin.ASRProviders, userProviders.ASRProviders)
	llmProviders := mergeLLMProviders(builtin.LLMProviders, userProviders.LLMProviders)

	queueConfig := DefaultQueueConfig()
	if mainConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, mainConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	retentionConfig := DefaultRetentionConfig()
	if mainConfig.Retention != nil {
		if err := mergo.Merge(retentionConfig, mainConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	selectorConfig := DefaultSelectorConfig()
	if mainConfig.Selector != nil {
		if err := mergo.Merge(selectorConfig, mainConfig.Selector, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge selector config: %w", err)
		}
	}

	mediaConfig := DefaultMediaConfig()
	if mainConfig.Media != nil {
		if err := mergo.Merge(mediaConfig, mainConfig.Media, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge media config: %w", err)
		}
	}

	redisConfig := DefaultRedisConfig()
	if mainConfig.Redis != nil {
		if err := mergo.Merge(redisConfig, mainConfig.Redis, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge redis config: %w", err)
		}
	}

	return &Config{
		configDir:        configDir,
		Queue:            queueConfig,
		Retention:        retentionConfig,
		Selector:         selectorConfig,
		Media:            mediaConfig,
		Storage:          mainConfig.Storage,
		Redis:            redisConfig,
		AllowedWSOrigins: mainConfig.AllowedWSOrigins,
		ASRProviders:     asrProviders,
		LLMProviders:     llmProviders,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}

func (l *configLoader) loadScribeflowYAML() (*ScribeflowYAMLConfig, error) {
	var config ScribeflowYAMLConfig
	if err := l.loadYAML("scribeflow.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadProvidersYAML loads providers.yaml. A missing file is not an error;
// the built-in catalog stands alone.
func (l *configLoader) loadProvidersYAML() (*ProvidersYAMLConfig, error) {
	config := ProvidersYAMLConfig{
		ASRProviders: make(map[string]ASRProviderConfig),
		LLMProviders: make(map[string]LLMProviderConfig),
	}
	if err := l.loadYAML("providers.yaml", &config); err != nil {
		if _, statErr := os.Stat(filepath.Join(l.configDir, "providers.yaml")); os.IsNotExist(statErr) {
			return &config, nil
		}
		return nil, err
	}
	return &config, nil
}

// mergeASRProviders merges built-in and user-defined ASR provider
// configurations. User-defined providers override built-in ones by name.
func mergeASRProviders(builtin, user map[string]ASRProviderConfig) map[string]ASRProviderConfig {
	result := make(map[string]ASRProviderConfig, len(builtin)+len(user))
	for name, p := range builtin {
		result[name] = p
	}
	for name, p := range user {
		result[name] = p
	}
	return result
}

// mergeLLMProviders merges built-in and user-defined LLM provider
// configurations. User-defined providers override built-in ones by name.
func mergeLLMProviders(builtin, user map[string]LLMProviderConfig) map[string]LLMProviderConfig {
	result := make(map[string]LLMProviderConfig, len(builtin)+len(user))
	for name, p := range builtin {
		result[name] = p
	}
	for name, p := range user {
		result[name] = p
	}
	return result
}
