package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

// listProvidersHandler handles GET /api/v1/providers: configured providers
// across all service types, annotated with live health and circuit state.
func (s *Server) listProvidersHandler(c *echo.Context) error {
	serviceTypes := []providers.ServiceType{
		providers.ServiceASR,
		providers.ServiceLLM,
		providers.ServiceStorage,
	}
	if st := c.QueryParam("service_type"); st != "" {
		serviceTypes = []providers.ServiceType{providers.ServiceType(st)}
	}

	var infos []ProviderInfo
	for _, st := range serviceTypes {
		for _, reg := range s.registry.Discover(st) {
			infos = append(infos, ProviderInfo{
				Name:                reg.Name,
				ServiceType:         string(reg.ServiceType),
				DisplayName:         reg.Metadata.DisplayName,
				CostPerUnit:         reg.Metadata.CostPerUnit,
				SupportsStreaming:   reg.Metadata.SupportsStreaming,
				SupportsDiarization: reg.Metadata.SupportsDiarization,
				Variants:            reg.Metadata.Variants,
				Models:              reg.Metadata.Models,
				DefaultModel:        reg.Metadata.DefaultModel,
				HealthScore:         s.healthMonitor.Score(st, reg.Name),
				CircuitState:        s.breaker.State(st, reg.Name).String(),
			})
		}
	}
	return ok(c, infos)
}
