package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/scribeflow/scribeflow/pkg/config"
)

func TestPollIntervalJitterBounds(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{
		PollInterval:       time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
	}}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestPollIntervalNoJitter(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{PollInterval: 2 * time.Second}}
	assert.Equal(t, 2*time.Second, w.pollInterval())
}

func TestWorkerHealthTracking(t *testing.T) {
	w := NewWorker("pod-1-worker-0", "pod-1", nil, config.DefaultQueueConfig(), nil, nil, nil)

	h := w.Health()
	assert.Equal(t, "pod-1-worker-0", h.ID)
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentTaskID)

	w.setStatus(WorkerStatusWorking, "task-42")
	h = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), h.Status)
	assert.Equal(t, "task-42", h.CurrentTaskID)

	w.setStatus(WorkerStatusIdle, "")
	assert.Equal(t, string(WorkerStatusIdle), w.Health().Status)
}

func TestCancelTaskRegistry(t *testing.T) {
	p := NewWorkerPool("pod-1", nil, config.DefaultQueueConfig(), nil, nil)

	cancelled := false
	p.RegisterTask("task-1", func() { cancelled = true })

	assert.True(t, p.CancelTask("task-1"))
	assert.True(t, cancelled)

	p.UnregisterTask("task-1")
	assert.False(t, p.CancelTask("task-1"))
	assert.False(t, p.CancelTask("unknown"))
}
