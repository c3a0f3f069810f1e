package config

import (
	"fmt"
	"math"
	"slices"
)

// Validator performs validation checks on loaded configuration.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for cfg.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation check and returns the first failure.
func (v *Validator) ValidateAll() error {
	checks := []func() error{
		v.validateQueue,
		v.validateSelector,
		v.validateMedia,
		v.validateASRProviders,
		v.validateLLMProviders,
		v.validateStorage,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
	}
	return nil
}

func (v *Validator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count", ErrInvalidValue)
	}
	if q.MaxConcurrentTasks < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_tasks", ErrInvalidValue)
	}
	if q.PollInterval <= 0 || q.TaskTimeout <= 0 || q.OrphanThreshold <= 0 {
		return NewValidationError("queue", "queue", "intervals", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateSelector() error {
	s := v.cfg.Selector
	switch s.Strategy {
	case StrategyHealthFirst, StrategyCostFirst, StrategyPerformanceFirst, StrategyBalanced:
	default:
		return NewValidationError("selector", s.Strategy, "strategy", ErrInvalidValue)
	}
	if s.Strategy == StrategyBalanced {
		if s.Weights == nil {
			return NewValidationError("selector", s.Strategy, "weights", ErrMissingRequiredField)
		}
		sum := s.Weights.FreeQuota + s.Weights.Health + s.Weights.Cost + s.Weights.Quota
		if math.Abs(sum-1.0) > 1e-6 {
			return NewValidationError("selector", s.Strategy, "weights",
				fmt.Errorf("%w: must sum to 1, got %.4f", ErrInvalidValue, sum))
		}
	}
	return nil
}

func (v *Validator) validateMedia() error {
	m := v.cfg.Media
	if m.MaxUploadMB < 1 {
		return NewValidationError("media", "media", "max_upload_mb", ErrInvalidValue)
	}
	if m.MaxDurationHours <= 0 {
		return NewValidationError("media", "media", "max_duration_hours", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateASRProviders() error {
	for name, p := range v.cfg.ASRProviders {
		if p.APIKeyEnv == "" {
			return NewValidationError("asr_provider", name, "api_key_env", ErrMissingRequiredField)
		}
		if len(p.Variants) == 0 {
			return NewValidationError("asr_provider", name, "variants", ErrMissingRequiredField)
		}
		if p.CostPerSecond < 0 {
			return NewValidationError("asr_provider", name, "cost_per_second", ErrInvalidValue)
		}
	}
	return nil
}

func (v *Validator) validateLLMProviders() error {
	for name, p := range v.cfg.LLMProviders {
		if p.CostInputPer1K < 0 || p.CostOutputPer1K < 0 {
			return NewValidationError("llm_provider", name, "cost", ErrInvalidValue)
		}
		if p.DefaultModel != "" && len(p.Models) > 0 && !slices.Contains(p.Models, p.DefaultModel) {
			return NewValidationError("llm_provider", name, "default_model",
				fmt.Errorf("%w: %q not in models list", ErrInvalidValue, p.DefaultModel))
		}
	}
	return nil
}

func (v *Validator) validateStorage() error {
	s := v.cfg.Storage
	if s == nil {
		return NewValidationError("storage", "storage", "", ErrMissingRequiredField)
	}
	if s.Bucket == "" {
		return NewValidationError("storage", "storage", "bucket", ErrMissingRequiredField)
	}
	return nil
}
