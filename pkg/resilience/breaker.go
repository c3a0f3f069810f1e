// Package resilience provides per-provider circuit breaking and retry with
// exponential backoff.
package resilience

import (
	"sync"
	"time"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

// BreakerState is the circuit state for one provider.
type BreakerState int

// Breaker states.
const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

const (
	// defaultFailureThreshold opens the circuit after this many consecutive
	// failures.
	defaultFailureThreshold = 5
	// defaultCooldown is the first open-state duration. It doubles on every
	// failed half-open probe.
	defaultCooldown = 60 * time.Second
	// maxCooldown bounds the doubling.
	maxCooldown = 30 * time.Minute
)

type breakerEntry struct {
	state               BreakerState
	consecutiveFailures int
	cooldown            time.Duration
	openedAt            time.Time
	probeInFlight       bool
}

// Breaker tracks circuit state per (service_type, provider).
type Breaker struct {
	mu               sync.Mutex
	entries          map[breakerKey]*breakerEntry
	failureThreshold int
	baseCooldown     time.Duration
	now              func() time.Time
}

type breakerKey struct {
	serviceType providers.ServiceType
	provider    string
}

// BreakerOption customizes a Breaker.
type BreakerOption func(*Breaker)

// WithFailureThreshold overrides the consecutive-failure trip point.
func WithFailureThreshold(n int) BreakerOption {
	return func(b *Breaker) { b.failureThreshold = n }
}

// WithBaseCooldown overrides the initial open duration.
func WithBaseCooldown(d time.Duration) BreakerOption {
	return func(b *Breaker) { b.baseCooldown = d }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) BreakerOption {
	return func(b *Breaker) { b.now = now }
}

// NewBreaker creates a Breaker with default thresholds.
func NewBreaker(opts ...BreakerOption) *Breaker {
	b := &Breaker{
		entries:          make(map[breakerKey]*breakerEntry),
		failureThreshold: defaultFailureThreshold,
		baseCooldown:     defaultCooldown,
		now:              time.Now,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Breaker) get(key breakerKey) *breakerEntry {
	if e, ok := b.entries[key]; ok {
		return e
	}
	e := &breakerEntry{state: StateClosed, cooldown: b.baseCooldown}
	b.entries[key] = e
	return e
}

// Allow reports whether a call to the provider may proceed. When the
// cooldown of an open circuit has elapsed, the first caller through gets the
// half-open probe slot; concurrent callers are rejected until the probe
// resolves.
func (b *Breaker) Allow(serviceType providers.ServiceType, provider string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.get(breakerKey{serviceType, provider})
	switch e.state {
	case StateClosed:
		return true
	case StateOpen:
		if b.now().Sub(e.openedAt) < e.cooldown {
			return false
		}
		e.state = StateHalfOpen
		e.probeInFlight = true
		return true
	case StateHalfOpen:
		if e.probeInFlight {
			return false
		}
		e.probeInFlight = true
		return true
	}
	return false
}

// RecordSuccess registers a successful call. A successful half-open probe
// closes the circuit and resets the cooldown.
func (b *Breaker) RecordSuccess(serviceType providers.ServiceType, provider string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.get(breakerKey{serviceType, provider})
	e.state = StateClosed
	e.consecutiveFailures = 0
	e.cooldown = b.baseCooldown
	e.probeInFlight = false
}

// RecordFailure registers a failed call. In half-open state the circuit
// reopens immediately with a doubled cooldown; in closed state it opens once
// the consecutive-failure threshold is reached.
func (b *Breaker) RecordFailure(serviceType providers.ServiceType, provider string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.get(breakerKey{serviceType, provider})
	e.consecutiveFailures++

	switch e.state {
	case StateHalfOpen:
		e.cooldown = min(e.cooldown*2, maxCooldown)
		e.state = StateOpen
		e.openedAt = b.now()
		e.probeInFlight = false
	case StateClosed:
		if e.consecutiveFailures >= b.failureThreshold {
			e.state = StateOpen
			e.openedAt = b.now()
		}
	}
}

// State returns the current circuit state for the provider.
func (b *Breaker) State(serviceType providers.ServiceType, provider string) BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.get(breakerKey{serviceType, provider})
	// Surface the pending transition so callers scoring providers see
	// half-open rather than open once the cooldown has elapsed.
	if e.state == StateOpen && b.now().Sub(e.openedAt) >= e.cooldown {
		return StateHalfOpen
	}
	return e.state
}
