package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

func TestMonitorScoreDecayAndRecovery(t *testing.T) {
	m := NewMonitor()

	assert.Equal(t, 1.0, m.Score(providers.ServiceASR, "whisper"))

	m.RecordFailure(providers.ServiceASR, "whisper")
	assert.InDelta(t, 0.5, m.Score(providers.ServiceASR, "whisper"), 1e-9)

	m.RecordFailure(providers.ServiceASR, "whisper")
	assert.InDelta(t, 0.25, m.Score(providers.ServiceASR, "whisper"), 1e-9)

	m.RecordSuccess(providers.ServiceASR, "whisper", 100*time.Millisecond)
	assert.InDelta(t, 0.45, m.Score(providers.ServiceASR, "whisper"), 1e-9)
}

func TestMonitorScoreCappedAtOne(t *testing.T) {
	m := NewMonitor()

	for i := 0; i < 5; i++ {
		m.RecordSuccess(providers.ServiceLLM, "openai", 50*time.Millisecond)
	}
	assert.Equal(t, 1.0, m.Score(providers.ServiceLLM, "openai"))
}

func TestMonitorTracksPerServiceType(t *testing.T) {
	m := NewMonitor()

	m.RecordFailure(providers.ServiceASR, "whisper")
	// The same vendor under the LLM lane is unaffected.
	assert.Equal(t, 1.0, m.Score(providers.ServiceLLM, "whisper"))
}

func TestMonitorSnapshot(t *testing.T) {
	m := NewMonitor()

	m.RecordSuccess(providers.ServiceASR, "deepgram", 200*time.Millisecond)
	m.RecordFailure(providers.ServiceASR, "deepgram")
	m.RecordFailure(providers.ServiceASR, "deepgram")

	st := m.Snapshot(providers.ServiceASR, "deepgram")
	assert.Equal(t, 2, st.ConsecutiveFailures)
	assert.Equal(t, int64(3), st.TotalCalls)
	assert.Equal(t, int64(2), st.TotalFailures)
	assert.Equal(t, 200*time.Millisecond, st.AvgLatency)
	assert.False(t, st.LastFailureAt.IsZero())
}

func TestMonitorLatencyEWMA(t *testing.T) {
	m := NewMonitor()

	m.RecordSuccess(providers.ServiceASR, "deepgram", 100*time.Millisecond)
	m.RecordSuccess(providers.ServiceASR, "deepgram", 200*time.Millisecond)

	st := m.Snapshot(providers.ServiceASR, "deepgram")
	// 0.3*200 + 0.7*100 = 130ms
	assert.InDelta(t, float64(130*time.Millisecond), float64(st.AvgLatency), float64(time.Millisecond))
}
