package api

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// CancelResponse acknowledges a cancellation request.
type CancelResponse struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// ProviderInfo is one entry of the provider listing: static metadata plus
// live health and circuit state.
type ProviderInfo struct {
	Name                string   `json:"name"`
	ServiceType         string   `json:"service_type"`
	DisplayName         string   `json:"display_name"`
	CostPerUnit         float64  `json:"cost_per_unit"`
	SupportsStreaming   bool     `json:"supports_streaming"`
	SupportsDiarization bool     `json:"supports_diarization"`
	Variants            []string `json:"variants,omitempty"`
	Models              []string `json:"models,omitempty"`
	DefaultModel        string   `json:"default_model,omitempty"`
	HealthScore         float64  `json:"health_score"`
	CircuitState        string   `json:"circuit_state"`
}

// DailyCostsResponse is the per-day spend breakdown from the fast index.
type DailyCostsResponse struct {
	Day    string             `json:"day"` // yyyy-mm-dd
	Totals map[string]float64 `json:"totals"`
}

// ProviderCostsResponse wraps the durable-log provider totals for a range.
type ProviderCostsResponse struct {
	Since  string      `json:"since"`
	Until  string      `json:"until"`
	Totals interface{} `json:"totals"`
}
