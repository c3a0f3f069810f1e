package resilience

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

const (
	// defaultMaxAttempts bounds total tries, not retries.
	defaultMaxAttempts = 3
	// defaultInitialDelay is the first backoff interval.
	defaultInitialDelay = 500 * time.Millisecond
	// defaultJitterFactor randomizes each interval.
	defaultJitterFactor = 0.3
)

// RetryConfig controls Retry behavior.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	JitterFactor float64
}

// DefaultRetryConfig returns the standard retry policy: 3 attempts, 500ms
// base delay doubling per attempt, 30% jitter.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  defaultMaxAttempts,
		InitialDelay: defaultInitialDelay,
		JitterFactor: defaultJitterFactor,
	}
}

// Retry runs op until it succeeds, returns a terminal error, or attempts are
// exhausted. Only transient provider errors are retried; quota, format, and
// auth failures surface immediately. The attempt number is passed to op so
// callers can re-select a provider on every try.
func Retry(ctx context.Context, cfg RetryConfig, op func(ctx context.Context, attempt int) error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = defaultInitialDelay
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.InitialDelay
	b.Multiplier = 2
	b.RandomizationFactor = cfg.JitterFactor
	b.MaxElapsedTime = 0

	attempt := 0
	operation := func() error {
		attempt++
		err := op(ctx, attempt)
		if err == nil {
			return nil
		}
		if !providers.IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(b, uint64(cfg.MaxAttempts-1)), ctx)
	return backoff.Retry(operation, policy)
}
