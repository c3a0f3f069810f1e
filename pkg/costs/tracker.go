// Package costs records per-call provider spend to a durable usage log and a
// Redis fast index for dashboard-style queries.
package costs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

// Record is one billable provider call.
type Record struct {
	ServiceType     providers.ServiceType `json:"service_type"`
	Provider        string                `json:"provider"`
	UserID          string                `json:"user_id"`
	TaskID          string                `json:"task_id,omitempty"`
	RequestID       string                `json:"request_id"`
	Attempt         int                   `json:"attempt"`
	CostUSD         float64               `json:"cost_usd"`
	Tokens          int                   `json:"tokens,omitempty"`
	DurationSeconds float64               `json:"duration_seconds,omitempty"`
	At              time.Time             `json:"at"`
}

// RedisEvaler abstracts the minimal surface we need from a Redis client.
// Implementations may wrap github.com/redis/go-redis/v9 or any equivalent.
type RedisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error)
}

// UsageStore is the durable usage log. The database-backed implementation
// lives with the rest of the persistence layer.
type UsageStore interface {
	SaveUsage(ctx context.Context, rec Record) error
}

// commitLuaScript applies one record to the fast index idempotently:
// SETNX a (request_id, attempt) marker, and only when freshly set, ZADD the
// record to the per-provider stream and HINCRBYFLOAT the daily total.
// Returns 1 if applied, 0 if already applied.
const commitLuaScript = `
local recordsKey = KEYS[1]
local dailyKey = KEYS[2]
local markerKey = KEYS[3]
local member = ARGV[1]
local score = tonumber(ARGV[2])
local dailyField = ARGV[3]
local cost = ARGV[4]
local ttlSeconds = tonumber(ARGV[5])
local set = redis.call('SETNX', markerKey, 1)
if set == 1 then
  redis.call('ZADD', recordsKey, score, member)
  redis.call('HINCRBYFLOAT', dailyKey, dailyField, cost)
  if ttlSeconds and ttlSeconds > 0 then
    redis.call('EXPIRE', markerKey, ttlSeconds)
  end
  return 1
else
  return 0
end
`

// dailyTotalsLuaScript reads one day's totals hash.
const dailyTotalsLuaScript = `return redis.call('HGETALL', KEYS[1])`

// Keys layout helpers (public for interoperability with dashboards).
func RedisRecordsKey(serviceType providers.ServiceType, provider string) string {
	return fmt.Sprintf("cost:records:%s:%s", serviceType, provider)
}

func RedisDailyKey(day time.Time) string {
	return fmt.Sprintf("cost:daily:%s", day.UTC().Format("20060102"))
}

func RedisCommitMarkerKey(requestID string, attempt int) string {
	return fmt.Sprintf("cost:commit:%s:%d", requestID, attempt)
}

// Tracker writes cost records. The durable log is the source of truth; the
// Redis index is best effort and a write failure there only bumps a metric.
type Tracker struct {
	redis     RedisEvaler
	store     UsageStore
	markerTTL time.Duration
}

// NewTracker creates a Tracker. markerTTL guards against unbounded growth of
// commit markers; choose a duration comfortably larger than the maximum
// retry window.
func NewTracker(redisClient RedisEvaler, store UsageStore, markerTTL time.Duration) *Tracker {
	if markerTTL <= 0 {
		markerTTL = 24 * time.Hour
	}
	return &Tracker{redis: redisClient, store: store, markerTTL: markerTTL}
}

// Track records one billable call. Duplicate (request_id, attempt) pairs are
// absorbed by both sinks, so retried commits are safe.
func (t *Tracker) Track(ctx context.Context, rec Record) error {
	if rec.RequestID == "" {
		return fmt.Errorf("cost record request_id must be set")
	}
	if rec.At.IsZero() {
		rec.At = time.Now().UTC()
	}

	if err := t.store.SaveUsage(ctx, rec); err != nil {
		costStoreWriteFailures.Inc()
		return fmt.Errorf("saving usage record: %w", err)
	}

	costRecordedTotal.WithLabelValues(string(rec.ServiceType), rec.Provider).Add(rec.CostUSD)

	if err := t.indexRecord(ctx, rec); err != nil {
		// Fast index only; the durable log already has the record.
		costRedisWriteFailures.Inc()
		slog.Warn("Failed to write cost record to Redis fast index",
			"request_id", rec.RequestID, "provider", rec.Provider, "error", err)
	}
	return nil
}

func (t *Tracker) indexRecord(ctx context.Context, rec Record) error {
	member, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling cost record: %w", err)
	}

	keys := []string{
		RedisRecordsKey(rec.ServiceType, rec.Provider),
		RedisDailyKey(rec.At),
		RedisCommitMarkerKey(rec.RequestID, rec.Attempt),
	}
	args := []interface{}{
		string(member),
		rec.At.UnixMilli(),
		fmt.Sprintf("%s:%s", rec.ServiceType, rec.Provider),
		fmt.Sprintf("%.10f", rec.CostUSD),
		int(t.markerTTL.Seconds()),
	}

	_, err = t.redis.Eval(ctx, commitLuaScript, keys, args...)
	return err
}

// DailyTotals returns the fast-index totals for one UTC day, keyed by
// "service_type:provider".
func (t *Tracker) DailyTotals(ctx context.Context, day time.Time) (map[string]float64, error) {
	raw, err := t.redis.Eval(ctx, dailyTotalsLuaScript, []string{RedisDailyKey(day)})
	if err != nil {
		return nil, fmt.Errorf("reading daily totals: %w", err)
	}

	pairs, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected HGETALL reply type %T", raw)
	}

	out := make(map[string]float64, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		field := fmt.Sprint(pairs[i])
		var value float64
		if _, err := fmt.Sscanf(fmt.Sprint(pairs[i+1]), "%f", &value); err != nil {
			return nil, fmt.Errorf("parsing daily total %q: %w", field, err)
		}
		out[field] = value
	}
	return out, nil
}

// GoRedisEvaler wraps github.com/redis/go-redis/v9 as a RedisEvaler.
type GoRedisEvaler struct{ c *redis.Client }

// NewGoRedisEvaler constructs a client for addr like "127.0.0.1:6379".
func NewGoRedisEvaler(addr, password string, db int) *GoRedisEvaler {
	return &GoRedisEvaler{c: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})}
}

func (g *GoRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	return g.c.Eval(ctx, script, keys, args...).Result()
}

// Ping verifies connectivity.
func (g *GoRedisEvaler) Ping(ctx context.Context) error {
	return g.c.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (g *GoRedisEvaler) Close() error {
	return g.c.Close()
}
