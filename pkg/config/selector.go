package config

// Selection strategies.
const (
	StrategyHealthFirst      = "health_first"
	StrategyCostFirst        = "cost_first"
	StrategyPerformanceFirst = "performance_first"
	StrategyBalanced         = "balanced"
)

// SelectorConfig controls provider selection.
type SelectorConfig struct {
	// Strategy is one of health_first, cost_first, performance_first,
	// balanced.
	Strategy string `yaml:"strategy"`

	// PreferredASRProvider and PreferredLLMProvider pin selection to one
	// provider. A pinned provider that is unavailable fails the request
	// rather than falling through to scoring.
	PreferredASRProvider string `yaml:"preferred_asr_provider,omitempty"`
	PreferredLLMProvider string `yaml:"preferred_llm_provider,omitempty"`

	// Weights for the balanced strategy. They must sum to 1.
	Weights *SelectorWeights `yaml:"weights,omitempty"`
}

// SelectorWeights are the balanced-strategy scoring weights.
type SelectorWeights struct {
	FreeQuota float64 `yaml:"free_quota"`
	Health    float64 `yaml:"health"`
	Cost      float64 `yaml:"cost"`
	Quota     float64 `yaml:"quota"`
}

// DefaultSelectorConfig returns the built-in selection defaults.
func DefaultSelectorConfig() *SelectorConfig {
	return &SelectorConfig{
		Strategy: StrategyBalanced,
		Weights: &SelectorWeights{
			FreeQuota: 0.40,
			Health:    0.25,
			Cost:      0.20,
			Quota:     0.15,
		},
	}
}
