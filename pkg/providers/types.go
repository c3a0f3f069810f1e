// Package providers defines the capability contracts for external ASR, LLM,
// and storage vendors, plus the process-wide registry that catalogs them.
package providers

import (
	"context"
	"io"
	"time"

	"github.com/scribeflow/scribeflow/pkg/models"
)

// ServiceType identifies a provider capability family.
type ServiceType string

// Service types.
const (
	ServiceASR     ServiceType = "asr"
	ServiceLLM     ServiceType = "llm"
	ServiceStorage ServiceType = "storage"
)

// ASR quota variants. Variants are tracked as separate quota lanes.
const (
	VariantFile           = "file"
	VariantFileFast       = "file_fast"
	VariantStreamAsync    = "stream_async"
	VariantStreamRealtime = "stream_realtime"
)

// Client is the common surface of all provider clients.
type Client interface {
	Provider() string
}

// AudioSource describes the audio to transcribe. Exactly one of URL or Reader
// is set; Reader-based sources must also set SizeBytes.
type AudioSource struct {
	URL       string
	Reader    io.Reader
	SizeBytes int64
	Format    string // e.g. "wav", "mp3"
}

// TranscribeOptions carries per-call ASR options.
type TranscribeOptions struct {
	Language          string // auto, zh, en
	EnableDiarization bool
	Variant           string // quota lane; file or file_fast
}

// TranscriptionSegment is one vendor-produced transcript span.
type TranscriptionSegment struct {
	SpeakerID    *string
	StartSeconds float64
	EndSeconds   float64
	Content      string
	Confidence   *float64
	Words        []models.WordTimestamp
}

// TranscriptionResult is the outcome of a Transcribe call. DurationSeconds
// reports what was actually consumed, and is what quota commits are based on.
type TranscriptionResult struct {
	Segments        []TranscriptionSegment
	DurationSeconds float64
	Language        string
}

// ASRClient transcribes audio.
type ASRClient interface {
	Client
	Transcribe(ctx context.Context, src AudioSource, opts TranscribeOptions) (*TranscriptionResult, error)
}

// ChatMessage is a single LLM conversation message.
type ChatMessage struct {
	Role    string // system, user, assistant
	Content string
}

// GenerateParams carries per-call LLM parameters.
type GenerateParams struct {
	Temperature float64
	MaxTokens   int
}

// LLMClient produces text from prompts. ChatStream is optional; clients that
// do not stream return ErrStreamingUnsupported.
type LLMClient interface {
	Client
	Chat(ctx context.Context, messages []ChatMessage, params GenerateParams) (string, error)
	Generate(ctx context.Context, prompt, systemMessage string, params GenerateParams) (string, error)
	ChatStream(ctx context.Context, messages []ChatMessage, params GenerateParams) (<-chan string, error)
	ModelName() string
	EstimateCost(inputTokens, outputTokens int) float64
}

// StorageClient stores and serves media objects.
type StorageClient interface {
	Client
	PutObject(ctx context.Context, key string, body io.Reader, sizeBytes int64, contentType string) error
	GetObjectURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	PresignPut(ctx context.Context, key string, ttl time.Duration, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Metadata is the static description of a provider, immutable after
// registration.
type Metadata struct {
	DisplayName         string
	CostPerUnit         float64 // USD per audio second (ASR) or per 1K tokens (LLM)
	SupportsStreaming   bool
	SupportsDiarization bool
	Variants            []string // ASR quota lanes the provider serves
	Models              []string // LLM model ids; empty means single-model
	DefaultModel        string   // empty when a model_id override is required
	Premium             bool     // substituted for low-quality transcripts
	FreeTierSeconds     float64  // free allocation per period, 0 = none
	FreeTierResetPeriod string   // monthly, yearly, none
}

// Overrides customize instantiation of a provider client.
type Overrides struct {
	ModelID string
	Variant string
}

// Factory builds a fresh client from configured credentials.
type Factory func(ctx context.Context, overrides Overrides) (Client, error)

// Registration binds (service_type, provider_name) to metadata and a factory.
type Registration struct {
	ServiceType ServiceType
	Name        string
	Metadata    Metadata
	// CredentialEnv lists environment variables that must all be non-empty
	// for Discover to report this provider as configured. Empty means the
	// provider needs no credentials (e.g. local endpoints).
	CredentialEnv []string
	Factory       Factory
}
