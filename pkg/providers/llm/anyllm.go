// Package llm adapts github.com/mozilla-ai/any-llm-go, a unified multi-provider
// interface covering OpenAI, Anthropic, Gemini, Ollama, DeepSeek, Mistral, and
// Groq, to the LLMClient contract.
package llm

import (
	"context"
	"fmt"
	"strings"

	anyllmlib "github.com/mozilla-ai/any-llm-go"
	"github.com/mozilla-ai/any-llm-go/providers/anthropic"
	"github.com/mozilla-ai/any-llm-go/providers/deepseek"
	"github.com/mozilla-ai/any-llm-go/providers/gemini"
	"github.com/mozilla-ai/any-llm-go/providers/groq"
	"github.com/mozilla-ai/any-llm-go/providers/mistral"
	"github.com/mozilla-ai/any-llm-go/providers/ollama"
	anyllmoai "github.com/mozilla-ai/any-llm-go/providers/openai"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

// Pricing is the per-1K-token cost pair for a model.
type Pricing struct {
	InputPer1K  float64
	OutputPer1K float64
}

// Client implements providers.LLMClient by wrapping an any-llm-go backend.
type Client struct {
	backend      anyllmlib.Provider
	providerName string
	model        string
	pricing      Pricing
}

// New creates a Client backed by the given provider name.
//
// providerName is one of: "openai", "anthropic", "gemini", "ollama",
// "deepseek", "mistral", "groq". model is the concrete model id. If no API key
// option is supplied, any-llm-go falls back to the provider's standard
// environment variable (OPENAI_API_KEY, ANTHROPIC_API_KEY, ...).
func New(providerName, model string, pricing Pricing, opts ...anyllmlib.Option) (*Client, error) {
	if providerName == "" {
		return nil, fmt.Errorf("llm: providerName must not be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("llm: model must not be empty")
	}

	backend, err := createBackend(providerName, opts...)
	if err != nil {
		return nil, fmt.Errorf("llm: create %q backend: %w", providerName, err)
	}

	return &Client{
		backend:      backend,
		providerName: providerName,
		model:        model,
		pricing:      pricing,
	}, nil
}

// createBackend creates the underlying any-llm-go provider.
func createBackend(providerName string, opts ...anyllmlib.Option) (anyllmlib.Provider, error) {
	switch strings.ToLower(providerName) {
	case "openai":
		return anyllmoai.New(opts...)
	case "anthropic":
		return anthropic.New(opts...)
	case "gemini":
		return gemini.New(opts...)
	case "ollama":
		return ollama.New(opts...)
	case "deepseek":
		return deepseek.New(opts...)
	case "mistral":
		return mistral.New(opts...)
	case "groq":
		return groq.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported provider %q; supported: openai, anthropic, gemini, ollama, deepseek, mistral, groq", providerName)
	}
}

// Provider implements providers.Client.
func (c *Client) Provider() string { return c.providerName }

// ModelName implements providers.LLMClient.
func (c *Client) ModelName() string { return c.model }

// EstimateCost implements providers.LLMClient.
func (c *Client) EstimateCost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)/1000*c.pricing.InputPer1K +
		float64(outputTokens)/1000*c.pricing.OutputPer1K
}

// Chat implements providers.LLMClient.
func (c *Client) Chat(ctx context.Context, messages []providers.ChatMessage, params providers.GenerateParams) (string, error) {
	resp, err := c.backend.Completion(ctx, c.buildParams(messages, params))
	if err != nil {
		return "", classify(c.providerName, err)
	}
	if len(resp.Choices) == 0 {
		return "", providers.Errorf(providers.KindTransient, c.providerName, "empty choices in response")
	}
	return resp.Choices[0].Message.ContentString(), nil
}

// Generate implements providers.LLMClient as a single-turn Chat.
func (c *Client) Generate(ctx context.Context, prompt, systemMessage string, params providers.GenerateParams) (string, error) {
	var messages []providers.ChatMessage
	if systemMessage != "" {
		messages = append(messages, providers.ChatMessage{Role: "system", Content: systemMessage})
	}
	messages = append(messages, providers.ChatMessage{Role: "user", Content: prompt})
	return c.Chat(ctx, messages, params)
}

// ChatStream implements providers.LLMClient. The returned channel carries
// incremental text deltas and is closed when the stream ends.
func (c *Client) ChatStream(ctx context.Context, messages []providers.ChatMessage, params providers.GenerateParams) (<-chan string, error) {
	backendChunks, backendErrs := c.backend.CompletionStream(ctx, c.buildParams(messages, params))

	ch := make(chan string, 32)
	go func() {
		defer close(ch)
		for chunk := range backendChunks {
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			select {
			case ch <- delta:
			case <-ctx.Done():
				return
			}
		}
		// Drain the error channel after chunks are exhausted; the final
		// content already delivered stands, errors only end the stream.
		<-backendErrs
	}()

	return ch, nil
}

// buildParams converts messages and params into anyllm CompletionParams.
func (c *Client) buildParams(messages []providers.ChatMessage, params providers.GenerateParams) anyllmlib.CompletionParams {
	out := anyllmlib.CompletionParams{Model: c.model}

	for _, m := range messages {
		out.Messages = append(out.Messages, anyllmlib.Message{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	if params.Temperature != 0 {
		t := params.Temperature
		out.Temperature = &t
	}
	if params.MaxTokens > 0 {
		mt := params.MaxTokens
		out.MaxTokens = &mt
	}

	return out
}

// classify maps backend errors to provider error kinds. any-llm-go does not
// expose typed errors, so classification is by message inspection with a
// transient default.
func classify(provider string, err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "429"):
		return providers.NewError(providers.KindQuotaExceeded, provider, err)
	case strings.Contains(msg, "unauthorized") || strings.Contains(msg, "forbidden") ||
		strings.Contains(msg, "401") || strings.Contains(msg, "403"):
		return providers.NewError(providers.KindUnavailable, provider, err)
	case strings.Contains(msg, "invalid") && strings.Contains(msg, "request"):
		return providers.NewError(providers.KindInvalidFormat, provider, err)
	default:
		return providers.NewError(providers.KindTransient, provider, err)
	}
}

// EstimateTokens approximates the token count of text at ~4 characters per
// token. Used for cost estimation hints before a call is made.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}
