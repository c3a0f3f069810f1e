package config

// Config is the umbrella configuration object returned by Initialize() and
// used throughout the application.
type Config struct {
	configDir string

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Retention and cleanup configuration
	Retention *RetentionConfig

	// Provider selection configuration
	Selector *SelectorConfig

	// Media handling limits
	Media *MediaConfig

	// Object storage for media and visuals
	Storage *StorageConfig

	// Redis fast index for cost tracking
	Redis *RedisConfig

	// Server settings
	AllowedWSOrigins []string

	// Provider catalogs (built-in merged with user YAML)
	ASRProviders map[string]ASRProviderConfig
	LLMProviders map[string]LLMProviderConfig
}

// Stats contains statistics about loaded configuration
type Stats struct {
	ASRProviders int
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	return Stats{
		ASRProviders: len(c.ASRProviders),
		LLMProviders: len(c.LLMProviders),
	}
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetASRProvider retrieves an ASR provider configuration by name.
func (c *Config) GetASRProvider(name string) (ASRProviderConfig, bool) {
	p, ok := c.ASRProviders[name]
	return p, ok
}

// GetLLMProvider retrieves an LLM provider configuration by name.
func (c *Config) GetLLMProvider(name string) (LLMProviderConfig, bool) {
	p, ok := c.LLMProviders[name]
	return p, ok
}
