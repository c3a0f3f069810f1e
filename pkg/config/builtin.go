package config

import "sync"

// BuiltinConfig holds the built-in provider catalog. User YAML overrides
// entries with the same name and may add new ones.
type BuiltinConfig struct {
	ASRProviders map[string]ASRProviderConfig
	LLMProviders map[string]LLMProviderConfig
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		ASRProviders: initBuiltinASRProviders(),
		LLMProviders: initBuiltinLLMProviders(),
	}
}

func initBuiltinASRProviders() map[string]ASRProviderConfig {
	return map[string]ASRProviderConfig{
		"whisper": {
			DisplayName:         "OpenAI Whisper",
			APIKeyEnv:           "OPENAI_API_KEY",
			Model:               "whisper-1",
			CostPerSecond:       0.0001,
			Variants:            []string{"file"},
			SupportsDiarization: false,
		},
		"deepgram": {
			DisplayName:         "Deepgram Nova",
			APIKeyEnv:           "DEEPGRAM_API_KEY",
			Model:               "nova-2",
			CostPerSecond:       0.000072,
			Variants:            []string{"file", "file_fast"},
			SupportsDiarization: true,
			FreeTierSeconds:     45000,
			FreeTierResetPeriod: "monthly",
		},
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openai": {
			DisplayName:     "OpenAI",
			APIKeyEnv:       "OPENAI_API_KEY",
			Models:          []string{"gpt-4o", "gpt-4o-mini"},
			DefaultModel:    "gpt-4o-mini",
			CostInputPer1K:  0.00015,
			CostOutputPer1K: 0.0006,
		},
		"anthropic": {
			DisplayName:     "Anthropic",
			APIKeyEnv:       "ANTHROPIC_API_KEY",
			Models:          []string{"claude-sonnet-4-20250514"},
			DefaultModel:    "claude-sonnet-4-20250514",
			Premium:         true,
			CostInputPer1K:  0.003,
			CostOutputPer1K: 0.015,
		},
		"deepseek": {
			DisplayName:     "DeepSeek",
			APIKeyEnv:       "DEEPSEEK_API_KEY",
			Models:          []string{"deepseek-chat"},
			DefaultModel:    "deepseek-chat",
			CostInputPer1K:  0.00014,
			CostOutputPer1K: 0.00028,
		},
		"gemini": {
			DisplayName:     "Google Gemini",
			APIKeyEnv:       "GEMINI_API_KEY",
			Models:          []string{"gemini-2.0-flash"},
			DefaultModel:    "gemini-2.0-flash",
			CostInputPer1K:  0.0001,
			CostOutputPer1K: 0.0004,
		},
		"groq": {
			DisplayName:     "Groq",
			APIKeyEnv:       "GROQ_API_KEY",
			Models:          []string{"llama-3.3-70b-versatile"},
			DefaultModel:    "llama-3.3-70b-versatile",
			CostInputPer1K:  0.00059,
			CostOutputPer1K: 0.00079,
		},
		"ollama": {
			DisplayName:     "Ollama (local)",
			Models:          []string{"llama3.1"},
			DefaultModel:    "llama3.1",
			CostInputPer1K:  0,
			CostOutputPer1K: 0,
		},
	}
}
