package costs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

type fakeEvaler struct {
	calls []evalCall
	reply interface{}
	err   error
}

type evalCall struct {
	script string
	keys   []string
	args   []interface{}
}

func (f *fakeEvaler) Eval(_ context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	f.calls = append(f.calls, evalCall{script: script, keys: keys, args: args})
	if f.err != nil {
		return nil, f.err
	}
	if f.reply != nil {
		return f.reply, nil
	}
	return int64(1), nil
}

type fakeStore struct {
	saved []Record
	err   error
}

func (f *fakeStore) SaveUsage(_ context.Context, rec Record) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, rec)
	return nil
}

func testRecord() Record {
	return Record{
		ServiceType:     providers.ServiceASR,
		Provider:        "deepgram",
		UserID:          "u1",
		TaskID:          "t1",
		RequestID:       "req-1",
		Attempt:         1,
		CostUSD:         0.0432,
		DurationSeconds: 600,
		At:              time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestTrackerWritesBothSinks(t *testing.T) {
	evaler := &fakeEvaler{}
	store := &fakeStore{}
	tracker := NewTracker(evaler, store, time.Hour)

	require.NoError(t, tracker.Track(context.Background(), testRecord()))

	require.Len(t, store.saved, 1)
	assert.Equal(t, "req-1", store.saved[0].RequestID)

	require.Len(t, evaler.calls, 1)
	call := evaler.calls[0]
	assert.Equal(t, []string{
		"cost:records:asr:deepgram",
		"cost:daily:20260315",
		"cost:commit:req-1:1",
	}, call.keys)
	assert.Equal(t, "asr:deepgram", call.args[2])
}

func TestTrackerRedisFailureIsNonFatal(t *testing.T) {
	evaler := &fakeEvaler{err: errors.New("connection refused")}
	store := &fakeStore{}
	tracker := NewTracker(evaler, store, time.Hour)

	// The durable log took the write, so tracking succeeds.
	require.NoError(t, tracker.Track(context.Background(), testRecord()))
	assert.Len(t, store.saved, 1)
}

func TestTrackerStoreFailureIsFatal(t *testing.T) {
	evaler := &fakeEvaler{}
	store := &fakeStore{err: errors.New("deadlock")}
	tracker := NewTracker(evaler, store, time.Hour)

	require.Error(t, tracker.Track(context.Background(), testRecord()))
	// No fast-index write without a durable record.
	assert.Empty(t, evaler.calls)
}

func TestTrackerRequiresRequestID(t *testing.T) {
	tracker := NewTracker(&fakeEvaler{}, &fakeStore{}, time.Hour)

	rec := testRecord()
	rec.RequestID = ""
	require.Error(t, tracker.Track(context.Background(), rec))
}

func TestDailyTotals(t *testing.T) {
	evaler := &fakeEvaler{reply: []interface{}{
		"asr:deepgram", "1.25",
		"llm:openai", "0.75",
	}}
	tracker := NewTracker(evaler, &fakeStore{}, time.Hour)

	totals, err := tracker.DailyTotals(context.Background(), time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"asr:deepgram": 1.25, "llm:openai": 0.75}, totals)
}
