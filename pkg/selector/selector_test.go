package selector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/pkg/config"
	"github.com/scribeflow/scribeflow/pkg/health"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/resilience"
)

type fakeHealth struct {
	scores    map[string]float64
	latencies map[string]time.Duration
}

func (f *fakeHealth) Snapshot(_ providers.ServiceType, provider string) health.Status {
	st := health.Status{Score: 1.0}
	if s, ok := f.scores[provider]; ok {
		st.Score = s
	}
	if l, ok := f.latencies[provider]; ok {
		st.AvgLatency = l
	}
	return st
}

type fakeBreaker struct {
	states map[string]resilience.BreakerState
}

func (f *fakeBreaker) State(_ providers.ServiceType, provider string) resilience.BreakerState {
	return f.states[provider]
}

type fakeQuota struct {
	blocked   map[string]bool
	fractions map[string]float64
}

func (f *fakeQuota) Available(_ context.Context, _, provider, _ string, _ float64) (bool, error) {
	return !f.blocked[provider], nil
}

func (f *fakeQuota) RemainingFraction(_ context.Context, provider, _ string) (float64, error) {
	if frac, ok := f.fractions[provider]; ok {
		return frac, nil
	}
	return 1.0, nil
}

type fixture struct {
	registry *providers.Registry
	health   *fakeHealth
	breaker  *fakeBreaker
	quota    *fakeQuota
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("SEL_TEST_KEY", "set")

	f := &fixture{
		registry: providers.NewRegistry(),
		health:   &fakeHealth{scores: map[string]float64{}, latencies: map[string]time.Duration{}},
		breaker:  &fakeBreaker{states: map[string]resilience.BreakerState{}},
		quota:    &fakeQuota{blocked: map[string]bool{}, fractions: map[string]float64{}},
	}

	registrations := []providers.Registration{
		{
			ServiceType: providers.ServiceASR,
			Name:        "deepgram",
			Metadata: providers.Metadata{
				CostPerUnit:         0.000072,
				SupportsDiarization: true,
				Variants:            []string{"file", "file_fast"},
				FreeTierSeconds:     45000,
			},
			CredentialEnv: []string{"SEL_TEST_KEY"},
		},
		{
			ServiceType: providers.ServiceASR,
			Name:        "whisper",
			Metadata: providers.Metadata{
				CostPerUnit: 0.0001,
				Variants:    []string{"file"},
			},
			CredentialEnv: []string{"SEL_TEST_KEY"},
		},
	}
	for _, reg := range registrations {
		reg.Factory = func(_ context.Context, _ providers.Overrides) (providers.Client, error) {
			return nil, nil
		}
		require.NoError(t, f.registry.Register(reg))
	}
	return f
}

func (f *fixture) selector(cfg *config.SelectorConfig) *Selector {
	return New(f.registry, f.health, f.breaker, f.quota, cfg)
}

func TestSelectBalancedPrefersFreeTier(t *testing.T) {
	f := newFixture(t)
	sel := f.selector(nil)

	// Equal health and quota: deepgram's free tier carries the decision.
	reg, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file", NeedSeconds: 60})
	require.NoError(t, err)
	assert.Equal(t, "deepgram", reg.Name)
}

func TestSelectHealthFirst(t *testing.T) {
	f := newFixture(t)
	f.health.scores["deepgram"] = 0.2
	f.health.scores["whisper"] = 0.9
	sel := f.selector(&config.SelectorConfig{Strategy: config.StrategyHealthFirst})

	reg, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file", NeedSeconds: 60})
	require.NoError(t, err)
	assert.Equal(t, "whisper", reg.Name)
}

func TestSelectCostFirst(t *testing.T) {
	f := newFixture(t)
	sel := f.selector(&config.SelectorConfig{Strategy: config.StrategyCostFirst})

	reg, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file", NeedSeconds: 60})
	require.NoError(t, err)
	assert.Equal(t, "deepgram", reg.Name)
}

func TestSelectPerformanceFirst(t *testing.T) {
	f := newFixture(t)
	f.health.latencies["deepgram"] = 3 * time.Second
	f.health.latencies["whisper"] = 500 * time.Millisecond
	sel := f.selector(&config.SelectorConfig{Strategy: config.StrategyPerformanceFirst})

	reg, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file", NeedSeconds: 60})
	require.NoError(t, err)
	assert.Equal(t, "whisper", reg.Name)
}

func TestSelectSkipsOpenCircuit(t *testing.T) {
	f := newFixture(t)
	f.breaker.states["deepgram"] = resilience.StateOpen
	sel := f.selector(nil)

	reg, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file", NeedSeconds: 60})
	require.NoError(t, err)
	assert.Equal(t, "whisper", reg.Name)
}

func TestSelectHalfOpenCapsHealth(t *testing.T) {
	f := newFixture(t)
	f.breaker.states["deepgram"] = resilience.StateHalfOpen
	f.health.scores["deepgram"] = 1.0
	f.health.scores["whisper"] = 0.6
	sel := f.selector(&config.SelectorConfig{Strategy: config.StrategyHealthFirst})

	// deepgram's perfect score is capped at 0.5 while half-open.
	reg, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file", NeedSeconds: 60})
	require.NoError(t, err)
	assert.Equal(t, "whisper", reg.Name)
}

func TestSelectDiarizationFilter(t *testing.T) {
	f := newFixture(t)
	sel := f.selector(&config.SelectorConfig{Strategy: config.StrategyCostFirst})

	reg, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file", NeedSeconds: 60, RequireDiarization: true})
	require.NoError(t, err)
	assert.Equal(t, "deepgram", reg.Name)
}

func TestSelectPreferredProvider(t *testing.T) {
	f := newFixture(t)
	sel := f.selector(nil)

	reg, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file", NeedSeconds: 60, Preferred: "whisper"})
	require.NoError(t, err)
	assert.Equal(t, "whisper", reg.Name)
}

func TestSelectPreferredUnavailableDoesNotFallThrough(t *testing.T) {
	f := newFixture(t)
	f.quota.blocked["whisper"] = true
	sel := f.selector(nil)

	_, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file", NeedSeconds: 60, Preferred: "whisper"})
	require.ErrorIs(t, err, ErrPreferredUnavailable)
}

func TestSelectAllExhausted(t *testing.T) {
	f := newFixture(t)
	f.quota.blocked["deepgram"] = true
	f.quota.blocked["whisper"] = true
	sel := f.selector(nil)

	_, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file", NeedSeconds: 60})
	require.ErrorIs(t, err, ErrAllExhausted)
}

func TestSelectFastVariantFallsBackToFile(t *testing.T) {
	f := newFixture(t)
	// deepgram is the only file_fast provider; with it out of quota the
	// request lands on the plain file lane instead of failing.
	f.quota.blocked["deepgram"] = true
	sel := f.selector(nil)

	reg, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file_fast", NeedSeconds: 60})
	require.NoError(t, err)
	assert.Equal(t, "whisper", reg.Name)
}

func TestSelectTieBreaksOnName(t *testing.T) {
	f := newFixture(t)
	// Identical scores under health_first.
	sel := f.selector(&config.SelectorConfig{Strategy: config.StrategyHealthFirst})

	reg, err := sel.Select(context.Background(), providers.ServiceASR,
		Request{Owner: "u1", Variant: "file", NeedSeconds: 60})
	require.NoError(t, err)
	assert.Equal(t, "deepgram", reg.Name)
}
