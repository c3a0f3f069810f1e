package providers

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
)

// Registry is the process-wide provider catalog. Populated once at startup by
// explicit registration; read-only afterwards.
type Registry struct {
	mu      sync.RWMutex
	entries map[registryKey]Registration
}

type registryKey struct {
	serviceType ServiceType
	name        string
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[registryKey]Registration)}
}

// Register adds a provider registration. Duplicate (service_type, name) pairs
// are rejected.
func (r *Registry) Register(reg Registration) error {
	if reg.Name == "" {
		return fmt.Errorf("provider name is required")
	}
	if reg.Factory == nil {
		return fmt.Errorf("provider %s/%s: factory is required", reg.ServiceType, reg.Name)
	}

	key := registryKey{reg.ServiceType, reg.Name}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateRegistration, reg.ServiceType, reg.Name)
	}
	r.entries[key] = reg
	return nil
}

// Get returns the registration for (serviceType, name).
func (r *Registry) Get(serviceType ServiceType, name string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[registryKey{serviceType, name}]
	return reg, ok
}

// Discover returns registrations for serviceType whose credentials are present
// in the environment, sorted by provider name for deterministic iteration.
func (r *Registry) Discover(serviceType ServiceType) []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Registration
	for key, reg := range r.entries {
		if key.serviceType != serviceType {
			continue
		}
		if credentialsConfigured(reg.CredentialEnv) {
			out = append(out, reg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Instantiate returns a fresh client for (serviceType, name). For multi-model
// LLM providers with no default model, overrides.ModelID is required.
func (r *Registry) Instantiate(ctx context.Context, serviceType ServiceType, name string, overrides Overrides) (Client, error) {
	reg, ok := r.Get(serviceType, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotRegistered, serviceType, name)
	}

	if serviceType == ServiceLLM && overrides.ModelID == "" {
		if reg.Metadata.DefaultModel != "" {
			overrides.ModelID = reg.Metadata.DefaultModel
		} else if len(reg.Metadata.Models) > 0 {
			return nil, Errorf(KindConfig, name, "model_id is required: provider supports %d models and has no default", len(reg.Metadata.Models))
		}
	}

	client, err := reg.Factory(ctx, overrides)
	if err != nil {
		return nil, fmt.Errorf("instantiating %s/%s: %w", serviceType, name, err)
	}
	return client, nil
}

// Len returns the number of registrations (all service types).
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// credentialsConfigured reports whether every listed env var is non-empty.
func credentialsConfigured(envs []string) bool {
	for _, key := range envs {
		if os.Getenv(key) == "" {
			return false
		}
	}
	return true
}
