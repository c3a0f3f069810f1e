package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/pkg/health"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/resilience"
)

func testRegistration(st providers.ServiceType, name string, meta providers.Metadata) providers.Registration {
	return providers.Registration{
		ServiceType: st,
		Name:        name,
		Metadata:    meta,
		Factory: func(ctx context.Context, overrides providers.Overrides) (providers.Client, error) {
			return nil, nil
		},
	}
}

func TestListProvidersHandler(t *testing.T) {
	registry := providers.NewRegistry()
	require.NoError(t, registry.Register(testRegistration(providers.ServiceASR, "deepgram", providers.Metadata{
		DisplayName:         "Deepgram",
		CostPerUnit:         0.0002,
		SupportsDiarization: true,
		Variants:            []string{"file", "file_fast"},
	})))
	require.NoError(t, registry.Register(testRegistration(providers.ServiceLLM, "openai", providers.Metadata{
		DisplayName:  "OpenAI",
		Models:       []string{"gpt-4o", "gpt-4o-mini"},
		DefaultModel: "gpt-4o-mini",
	})))

	s := &Server{
		registry:      registry,
		healthMonitor: health.NewMonitor(),
		breaker:       resilience.NewBreaker(),
	}

	t.Run("lists all service types", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil)
		c, rec := newTestContext(t, req)

		require.NoError(t, s.listProvidersHandler(c))

		var env Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		require.Equal(t, CodeOK, env.Code)

		raw, err := json.Marshal(env.Data)
		require.NoError(t, err)
		var infos []ProviderInfo
		require.NoError(t, json.Unmarshal(raw, &infos))

		require.Len(t, infos, 2)
		assert.Equal(t, "deepgram", infos[0].Name)
		assert.Equal(t, "asr", infos[0].ServiceType)
		assert.True(t, infos[0].SupportsDiarization)
		assert.Equal(t, "closed", infos[0].CircuitState)
		assert.Equal(t, "openai", infos[1].Name)
		assert.Equal(t, "gpt-4o-mini", infos[1].DefaultModel)
	})

	t.Run("filters by service type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/providers?service_type=llm", nil)
		c, rec := newTestContext(t, req)

		require.NoError(t, s.listProvidersHandler(c))

		var env Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

		raw, err := json.Marshal(env.Data)
		require.NoError(t, err)
		var infos []ProviderInfo
		require.NoError(t, json.Unmarshal(raw, &infos))

		require.Len(t, infos, 1)
		assert.Equal(t, "openai", infos[0].Name)
	})
}
