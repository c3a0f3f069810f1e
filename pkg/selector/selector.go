// Package selector picks the provider for each outbound call from health,
// cost, and quota signals.
package selector

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/scribeflow/scribeflow/pkg/config"
	"github.com/scribeflow/scribeflow/pkg/health"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/resilience"
)

// Selection errors.
var (
	// ErrNoProviders means no registered provider can serve the request.
	ErrNoProviders = errors.New("no providers available")

	// ErrPreferredUnavailable means a pinned provider cannot serve the
	// request. Pinning never falls through to scoring.
	ErrPreferredUnavailable = errors.New("preferred provider unavailable")

	// ErrAllExhausted means every capable provider is out of quota.
	ErrAllExhausted = errors.New("all providers exhausted")
)

// HealthSource supplies provider health state.
type HealthSource interface {
	Snapshot(serviceType providers.ServiceType, provider string) health.Status
}

// BreakerSource supplies circuit state.
type BreakerSource interface {
	State(serviceType providers.ServiceType, provider string) resilience.BreakerState
}

// QuotaSource supplies quota availability.
type QuotaSource interface {
	Available(ctx context.Context, owner, provider, variant string, need float64) (bool, error)
	RemainingFraction(ctx context.Context, provider, variant string) (float64, error)
}

// Request describes what the caller needs from a provider.
type Request struct {
	Owner              string
	Variant            string
	NeedSeconds        float64
	RequireDiarization bool
	// Preferred pins selection to one provider name.
	Preferred string
}

// Selector scores and ranks providers per call.
type Selector struct {
	registry *providers.Registry
	health   HealthSource
	breaker  BreakerSource
	quota    QuotaSource
	cfg      *config.SelectorConfig
}

// New creates a Selector.
func New(registry *providers.Registry, h HealthSource, b BreakerSource, q QuotaSource, cfg *config.SelectorConfig) *Selector {
	if cfg == nil {
		cfg = config.DefaultSelectorConfig()
	}
	if cfg.Weights == nil {
		cfg.Weights = config.DefaultSelectorConfig().Weights
	}
	return &Selector{registry: registry, health: h, breaker: b, quota: q, cfg: cfg}
}

type candidate struct {
	reg       providers.Registration
	effHealth float64
	latency   time.Duration
	quotaFrac float64
	freeFrac  float64
}

// Select returns the provider registration to use for the request.
func (s *Selector) Select(ctx context.Context, serviceType providers.ServiceType, req Request) (providers.Registration, error) {
	if req.Preferred == "" {
		req.Preferred = s.configuredPreferred(serviceType)
	}

	discovered := s.registry.Discover(serviceType)
	if len(discovered) == 0 {
		return providers.Registration{}, ErrNoProviders
	}

	if req.Preferred != "" {
		return s.selectPreferred(ctx, serviceType, req, discovered)
	}

	capable, quotaBlocked, err := s.filter(ctx, serviceType, req, discovered)
	if err != nil {
		return providers.Registration{}, err
	}
	if len(capable) == 0 {
		// The fast lane falls back to the standard file lane before the
		// request fails outright.
		if req.Variant == providers.VariantFileFast {
			fallback := req
			fallback.Variant = providers.VariantFile
			return s.Select(ctx, serviceType, fallback)
		}
		if quotaBlocked > 0 {
			return providers.Registration{}, ErrAllExhausted
		}
		return providers.Registration{}, ErrNoProviders
	}

	best := s.rank(capable)
	return best.reg, nil
}

func (s *Selector) configuredPreferred(serviceType providers.ServiceType) string {
	switch serviceType {
	case providers.ServiceASR:
		return s.cfg.PreferredASRProvider
	case providers.ServiceLLM:
		return s.cfg.PreferredLLMProvider
	}
	return ""
}

func (s *Selector) selectPreferred(ctx context.Context, serviceType providers.ServiceType, req Request, discovered []providers.Registration) (providers.Registration, error) {
	for _, reg := range discovered {
		if reg.Name != req.Preferred {
			continue
		}
		ok, reason, err := s.usable(ctx, serviceType, req, reg)
		if err != nil {
			return providers.Registration{}, err
		}
		if !ok {
			return providers.Registration{}, fmt.Errorf("%w: %s (%s)", ErrPreferredUnavailable, req.Preferred, reason)
		}
		return reg, nil
	}
	return providers.Registration{}, fmt.Errorf("%w: %s (not configured)", ErrPreferredUnavailable, req.Preferred)
}

// usable applies the hard filters: capability, circuit state, and quota.
func (s *Selector) usable(ctx context.Context, serviceType providers.ServiceType, req Request, reg providers.Registration) (bool, string, error) {
	if req.RequireDiarization && !reg.Metadata.SupportsDiarization {
		return false, "no diarization support", nil
	}
	if req.Variant != "" && serviceType == providers.ServiceASR && !supportsVariant(reg, req.Variant) {
		return false, "variant not served", nil
	}
	if s.breaker.State(serviceType, reg.Name) == resilience.StateOpen {
		return false, "circuit open", nil
	}
	if serviceType == providers.ServiceASR && req.NeedSeconds > 0 {
		ok, err := s.quota.Available(ctx, req.Owner, reg.Name, req.Variant, req.NeedSeconds)
		if err != nil {
			return false, "", err
		}
		if !ok {
			return false, "quota exhausted", nil
		}
	}
	return true, "", nil
}

func (s *Selector) filter(ctx context.Context, serviceType providers.ServiceType, req Request, discovered []providers.Registration) ([]candidate, int, error) {
	var capable []candidate
	quotaBlocked := 0

	for _, reg := range discovered {
		ok, reason, err := s.usable(ctx, serviceType, req, reg)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			if reason == "quota exhausted" {
				quotaBlocked++
			}
			continue
		}

		st := s.health.Snapshot(serviceType, reg.Name)
		c := candidate{
			reg:       reg,
			effHealth: effectiveHealth(st.Score, s.breaker.State(serviceType, reg.Name)),
			latency:   st.AvgLatency,
			quotaFrac: 1.0,
			freeFrac:  0,
		}

		if serviceType == providers.ServiceASR && req.Variant != "" {
			frac, err := s.quota.RemainingFraction(ctx, reg.Name, req.Variant)
			if err != nil {
				return nil, 0, err
			}
			c.quotaFrac = frac
			if reg.Metadata.FreeTierSeconds > 0 {
				c.freeFrac = frac
			}
		}

		capable = append(capable, c)
	}
	return capable, quotaBlocked, nil
}

// effectiveHealth folds circuit state into the raw health score: an open
// circuit scores 0, half-open is capped at 0.5.
func effectiveHealth(score float64, state resilience.BreakerState) float64 {
	switch state {
	case resilience.StateOpen:
		return 0
	case resilience.StateHalfOpen:
		return min(score, 0.5)
	default:
		return score
	}
}

// rank orders candidates by the configured strategy; ties break on provider
// name ascending so selection is deterministic.
func (s *Selector) rank(capable []candidate) candidate {
	maxCost := 0.0
	for _, c := range capable {
		if c.reg.Metadata.CostPerUnit > maxCost {
			maxCost = c.reg.Metadata.CostPerUnit
		}
	}

	score := func(c candidate) float64 {
		switch s.cfg.Strategy {
		case config.StrategyHealthFirst:
			return c.effHealth
		case config.StrategyCostFirst:
			return costScore(c.reg.Metadata.CostPerUnit, maxCost)
		case config.StrategyPerformanceFirst:
			return latencyScore(c.latency)
		default:
			w := s.cfg.Weights
			return w.FreeQuota*c.freeFrac +
				w.Health*c.effHealth +
				w.Cost*costScore(c.reg.Metadata.CostPerUnit, maxCost) +
				w.Quota*c.quotaFrac
		}
	}

	sort.Slice(capable, func(i, j int) bool {
		si, sj := score(capable[i]), score(capable[j])
		if si != sj {
			return si > sj
		}
		return capable[i].reg.Name < capable[j].reg.Name
	})
	return capable[0]
}

// costScore maps cost per unit into [0,1], cheaper is higher. When every
// candidate is free the score is 1 for all.
func costScore(cost, maxCost float64) float64 {
	if maxCost <= 0 {
		return 1
	}
	return 1 - cost/maxCost
}

// latencyScore maps average latency into (0,1], faster is higher. Providers
// with no samples score a neutral 0.5 so they get tried.
func latencyScore(latency time.Duration) float64 {
	if latency <= 0 {
		return 0.5
	}
	return 1.0 / (1.0 + latency.Seconds())
}

func supportsVariant(reg providers.Registration, variant string) bool {
	for _, v := range reg.Metadata.Variants {
		if v == variant {
			return true
		}
	}
	return false
}
