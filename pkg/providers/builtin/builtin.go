// Package builtin registers the configured provider catalog into a registry.
package builtin

import (
	"context"
	"fmt"
	"os"

	"github.com/scribeflow/scribeflow/pkg/config"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/providers/asr"
	"github.com/scribeflow/scribeflow/pkg/providers/llm"
	"github.com/scribeflow/scribeflow/pkg/providers/storage"
)

// RegisterAll populates reg from the configured provider catalog. Factories
// are lazy: credentials are read at instantiation time, not here.
func RegisterAll(reg *providers.Registry, cfg *config.Config) error {
	for name, p := range cfg.ASRProviders {
		if err := reg.Register(asrRegistration(name, p)); err != nil {
			return fmt.Errorf("register asr provider %q: %w", name, err)
		}
	}

	for name, p := range cfg.LLMProviders {
		if err := reg.Register(llmRegistration(name, p)); err != nil {
			return fmt.Errorf("register llm provider %q: %w", name, err)
		}
	}

	if cfg.Storage != nil {
		if err := reg.Register(storageRegistration(cfg.Storage)); err != nil {
			return fmt.Errorf("register storage provider: %w", err)
		}
	}

	return nil
}

func asrRegistration(name string, p config.ASRProviderConfig) providers.Registration {
	return providers.Registration{
		ServiceType: providers.ServiceASR,
		Name:        name,
		Metadata: providers.Metadata{
			DisplayName:         p.DisplayName,
			CostPerUnit:         p.CostPerSecond,
			SupportsDiarization: p.SupportsDiarization,
			Variants:            p.Variants,
			FreeTierSeconds:     p.FreeTierSeconds,
			FreeTierResetPeriod: p.FreeTierResetPeriod,
		},
		CredentialEnv: credentialEnv(p.APIKeyEnv),
		Factory:       asrFactory(name, p),
	}
}

// asrFactory dispatches on the provider name; each built-in ASR vendor has a
// dedicated client implementation.
func asrFactory(name string, p config.ASRProviderConfig) providers.Factory {
	return func(_ context.Context, _ providers.Overrides) (providers.Client, error) {
		apiKey := os.Getenv(p.APIKeyEnv)

		switch name {
		case "whisper":
			var opts []asr.WhisperOption
			if p.BaseURL != "" {
				opts = append(opts, asr.WithWhisperBaseURL(p.BaseURL))
			}
			if p.Model != "" {
				opts = append(opts, asr.WithWhisperModel(p.Model))
			}
			return asr.NewWhisper(apiKey, opts...)
		case "deepgram":
			var opts []asr.DeepgramOption
			if p.BaseURL != "" {
				opts = append(opts, asr.WithDeepgramBaseURL(p.BaseURL))
			}
			if p.Model != "" {
				opts = append(opts, asr.WithDeepgramModel(p.Model))
			}
			return asr.NewDeepgram(apiKey, opts...)
		default:
			return nil, providers.Errorf(providers.KindConfig, name, "no client implementation for asr provider")
		}
	}
}

func llmRegistration(name string, p config.LLMProviderConfig) providers.Registration {
	return providers.Registration{
		ServiceType: providers.ServiceLLM,
		Name:        name,
		Metadata: providers.Metadata{
			DisplayName:       p.DisplayName,
			CostPerUnit:       p.CostInputPer1K,
			SupportsStreaming: true,
			Models:            p.Models,
			DefaultModel:      p.DefaultModel,
			Premium:           p.Premium,
		},
		CredentialEnv: credentialEnv(p.APIKeyEnv),
		Factory: func(_ context.Context, overrides providers.Overrides) (providers.Client, error) {
			model := overrides.ModelID
			if model == "" {
				model = p.DefaultModel
			}
			pricing := llm.Pricing{InputPer1K: p.CostInputPer1K, OutputPer1K: p.CostOutputPer1K}
			return llm.New(name, model, pricing)
		},
	}
}

func storageRegistration(sc *config.StorageConfig) providers.Registration {
	return providers.Registration{
		ServiceType:   providers.ServiceStorage,
		Name:          "s3",
		Metadata:      providers.Metadata{DisplayName: "S3-compatible object store"},
		CredentialEnv: nil, // IAM roles or static keys both work
		Factory: func(ctx context.Context, _ providers.Overrides) (providers.Client, error) {
			return storage.NewS3(ctx, storage.S3Config{
				Bucket:          sc.Bucket,
				Region:          sc.Region,
				Endpoint:        sc.Endpoint,
				AccessKeyID:     os.Getenv(sc.AccessKeyIDEnv),
				SecretAccessKey: os.Getenv(sc.SecretKeyEnv),
				ForcePathStyle:  sc.ForcePathStyle,
			})
		},
	}
}

func credentialEnv(env string) []string {
	if env == "" {
		return nil
	}
	return []string{env}
}
