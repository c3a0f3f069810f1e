// Package health tracks per-provider health scores from observed call
// outcomes. Scores feed provider selection.
package health

import (
	"sync"
	"time"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

const (
	// failureDecay halves the score on each failure.
	failureDecay = 0.5
	// successRecovery is added back per successful call.
	successRecovery = 0.2
	// latencyAlpha is the EWMA weight for new latency samples.
	latencyAlpha = 0.3
)

// Status is a point-in-time view of one provider's health.
type Status struct {
	Score               float64
	AvgLatency          time.Duration
	ConsecutiveFailures int
	TotalCalls          int64
	TotalFailures       int64
	LastSuccessAt       time.Time
	LastFailureAt       time.Time
}

type statusKey struct {
	serviceType providers.ServiceType
	provider    string
}

// Monitor aggregates call outcomes per (service_type, provider). Unknown
// providers start healthy at score 1.0.
type Monitor struct {
	mu      sync.RWMutex
	entries map[statusKey]*Status
	now     func() time.Time
}

// NewMonitor creates an empty Monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		entries: make(map[statusKey]*Status),
		now:     time.Now,
	}
}

func (m *Monitor) get(key statusKey) *Status {
	if st, ok := m.entries[key]; ok {
		return st
	}
	st := &Status{Score: 1.0}
	m.entries[key] = st
	return st
}

// RecordSuccess registers a successful provider call and its latency.
// The score recovers additively and is capped at 1.0.
func (m *Monitor) RecordSuccess(serviceType providers.ServiceType, provider string, latency time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.get(statusKey{serviceType, provider})
	st.Score += successRecovery
	if st.Score > 1.0 {
		st.Score = 1.0
	}
	st.ConsecutiveFailures = 0
	st.TotalCalls++
	st.LastSuccessAt = m.now()

	if st.AvgLatency == 0 {
		st.AvgLatency = latency
	} else {
		st.AvgLatency = time.Duration(latencyAlpha*float64(latency) + (1-latencyAlpha)*float64(st.AvgLatency))
	}
}

// RecordFailure registers a failed provider call. The score decays
// multiplicatively so repeated failures drop it fast.
func (m *Monitor) RecordFailure(serviceType providers.ServiceType, provider string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.get(statusKey{serviceType, provider})
	st.Score *= failureDecay
	st.ConsecutiveFailures++
	st.TotalCalls++
	st.TotalFailures++
	st.LastFailureAt = m.now()
}

// Score returns the current health score in [0,1]. Providers never seen
// report 1.0.
func (m *Monitor) Score(serviceType providers.ServiceType, provider string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if st, ok := m.entries[statusKey{serviceType, provider}]; ok {
		return st.Score
	}
	return 1.0
}

// Snapshot returns a copy of the provider's status.
func (m *Monitor) Snapshot(serviceType providers.ServiceType, provider string) Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if st, ok := m.entries[statusKey{serviceType, provider}]; ok {
		return *st
	}
	return Status{Score: 1.0}
}

// All returns a copy of every tracked provider status keyed by provider
// name, for the given service type.
func (m *Monitor) All(serviceType providers.ServiceType) map[string]Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]Status)
	for key, st := range m.entries {
		if key.serviceType == serviceType {
			out[key.provider] = *st
		}
	}
	return out
}
