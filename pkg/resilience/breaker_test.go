package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b := NewBreaker()

	for i := 0; i < 4; i++ {
		b.RecordFailure(providers.ServiceASR, "whisper")
		assert.Equal(t, StateClosed, b.State(providers.ServiceASR, "whisper"))
	}

	b.RecordFailure(providers.ServiceASR, "whisper")
	assert.Equal(t, StateOpen, b.State(providers.ServiceASR, "whisper"))
	assert.False(t, b.Allow(providers.ServiceASR, "whisper"))
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker()

	for i := 0; i < 4; i++ {
		b.RecordFailure(providers.ServiceASR, "whisper")
	}
	b.RecordSuccess(providers.ServiceASR, "whisper")
	b.RecordFailure(providers.ServiceASR, "whisper")

	assert.Equal(t, StateClosed, b.State(providers.ServiceASR, "whisper"))
}

func TestBreakerHalfOpenProbe(t *testing.T) {
	current := time.Unix(1000, 0)
	b := NewBreaker(WithClock(func() time.Time { return current }))

	for i := 0; i < 5; i++ {
		b.RecordFailure(providers.ServiceLLM, "openai")
	}
	require.False(t, b.Allow(providers.ServiceLLM, "openai"))

	// Cooldown elapses: exactly one probe gets through.
	current = current.Add(61 * time.Second)
	assert.Equal(t, StateHalfOpen, b.State(providers.ServiceLLM, "openai"))
	assert.True(t, b.Allow(providers.ServiceLLM, "openai"))
	assert.False(t, b.Allow(providers.ServiceLLM, "openai"))

	// Probe succeeds: circuit closes.
	b.RecordSuccess(providers.ServiceLLM, "openai")
	assert.Equal(t, StateClosed, b.State(providers.ServiceLLM, "openai"))
	assert.True(t, b.Allow(providers.ServiceLLM, "openai"))
}

func TestBreakerCooldownDoublesOnFailedProbe(t *testing.T) {
	current := time.Unix(1000, 0)
	b := NewBreaker(WithClock(func() time.Time { return current }))

	for i := 0; i < 5; i++ {
		b.RecordFailure(providers.ServiceLLM, "openai")
	}

	// First probe fails: cooldown doubles to 120s.
	current = current.Add(61 * time.Second)
	require.True(t, b.Allow(providers.ServiceLLM, "openai"))
	b.RecordFailure(providers.ServiceLLM, "openai")

	current = current.Add(61 * time.Second)
	assert.False(t, b.Allow(providers.ServiceLLM, "openai"))

	current = current.Add(60 * time.Second)
	assert.True(t, b.Allow(providers.ServiceLLM, "openai"))
}

func TestBreakerIsolatesProviders(t *testing.T) {
	b := NewBreaker()

	for i := 0; i < 5; i++ {
		b.RecordFailure(providers.ServiceASR, "whisper")
	}

	assert.False(t, b.Allow(providers.ServiceASR, "whisper"))
	assert.True(t, b.Allow(providers.ServiceASR, "deepgram"))
	assert.True(t, b.Allow(providers.ServiceLLM, "whisper"))
}

func TestRetryStopsOnTerminalError(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
		func(_ context.Context, _ int) error {
			calls++
			return providers.Errorf(providers.KindInvalidFormat, "whisper", "bad media")
		})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, providers.KindInvalidFormat, providers.KindOf(err))
}

func TestRetryRetriesTransientErrors(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
		func(_ context.Context, attempt int) error {
			calls++
			assert.Equal(t, calls, attempt)
			if calls < 3 {
				return providers.Errorf(providers.KindTransient, "whisper", "flaky network")
			}
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	sentinel := errors.New("still down")
	err := Retry(context.Background(), RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
		func(_ context.Context, _ int) error {
			calls++
			return providers.NewError(providers.KindTransient, "whisper", sentinel)
		})

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, calls)
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 10, InitialDelay: 50 * time.Millisecond},
		func(_ context.Context, _ int) error {
			calls++
			cancel()
			return providers.Errorf(providers.KindTransient, "whisper", "slow")
		})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
