package asr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

const whisperDefaultModel = "whisper-1"

// Whisper transcribes audio through the OpenAI transcription API.
//
// Whisper has no diarization; segments come back without speaker labels and
// the selector treats this provider as diarization-incapable.
type Whisper struct {
	client     oai.Client
	model      string
	httpClient *http.Client
}

// WhisperOption is a functional option for Whisper.
type WhisperOption func(*whisperConfig)

type whisperConfig struct {
	baseURL string
	model   string
	timeout time.Duration
}

// WithWhisperBaseURL overrides the default OpenAI API base URL.
func WithWhisperBaseURL(u string) WhisperOption {
	return func(c *whisperConfig) {
		c.baseURL = u
	}
}

// WithWhisperModel selects the transcription model.
func WithWhisperModel(model string) WhisperOption {
	return func(c *whisperConfig) {
		c.model = model
	}
}

// WithWhisperTimeout sets a per-request timeout.
func WithWhisperTimeout(d time.Duration) WhisperOption {
	return func(c *whisperConfig) {
		c.timeout = d
	}
}

// NewWhisper constructs a Whisper client.
func NewWhisper(apiKey string, opts ...WhisperOption) (*Whisper, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("whisper: apiKey must not be empty")
	}

	cfg := &whisperConfig{model: whisperDefaultModel, timeout: 10 * time.Minute}
	for _, o := range opts {
		o(cfg)
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}
	httpClient := &http.Client{Timeout: cfg.timeout}
	reqOpts = append(reqOpts, option.WithHTTPClient(httpClient))

	return &Whisper{
		client:     oai.NewClient(reqOpts...),
		model:      cfg.model,
		httpClient: httpClient,
	}, nil
}

// Provider implements providers.Client.
func (w *Whisper) Provider() string { return "whisper" }

// whisperVerbose mirrors the verbose_json transcription response. The typed
// Transcription struct only exposes the flat text, so we re-decode the raw
// body for segments and duration.
type whisperVerbose struct {
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
	Segments []struct {
		Start            float64 `json:"start"`
		End              float64 `json:"end"`
		Text             string  `json:"text"`
		AvgLogprob       float64 `json:"avg_logprob"`
		NoSpeechProb     float64 `json:"no_speech_prob"`
		CompressionRatio float64 `json:"compression_ratio"`
	} `json:"segments"`
}

// Transcribe implements providers.ASRClient.
func (w *Whisper) Transcribe(ctx context.Context, src providers.AudioSource, opts providers.TranscribeOptions) (*providers.TranscriptionResult, error) {
	reader, format, cleanup, err := w.openSource(ctx, src)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	params := oai.AudioTranscriptionNewParams{
		File:                   oai.File(reader, "audio."+format, audioContentType(format)),
		Model:                  oai.AudioModel(w.model),
		ResponseFormat:         oai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []string{"segment"},
	}
	if opts.Language != "" && opts.Language != "auto" {
		params.Language = oai.String(opts.Language)
	}

	resp, err := w.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, classifyOpenAI(w.Provider(), err)
	}

	var verbose whisperVerbose
	if err := json.Unmarshal([]byte(resp.RawJSON()), &verbose); err != nil {
		return nil, providers.Errorf(providers.KindTransient, w.Provider(), "decode verbose response: %v", err)
	}

	return w.toResult(&verbose), nil
}

// openSource yields a reader over the audio bytes. URL sources are fetched
// first since the transcription endpoint only accepts uploads.
func (w *Whisper) openSource(ctx context.Context, src providers.AudioSource) (io.Reader, string, func(), error) {
	format := src.Format
	if format == "" {
		format = "wav"
	}

	if src.Reader != nil {
		return src.Reader, format, func() {}, nil
	}
	if src.URL == "" {
		return nil, "", nil, providers.Errorf(providers.KindInvalidFormat, w.Provider(), "audio source has neither URL nor reader")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, "", nil, providers.NewError(providers.KindConfig, w.Provider(), err)
	}
	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, "", nil, providers.NewError(providers.KindTransient, w.Provider(), err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", nil, providers.Errorf(providers.KindTransient, w.Provider(), "fetch source audio: status %d", resp.StatusCode)
	}
	return resp.Body, format, func() { resp.Body.Close() }, nil
}

func (w *Whisper) toResult(verbose *whisperVerbose) *providers.TranscriptionResult {
	result := &providers.TranscriptionResult{
		DurationSeconds: verbose.Duration,
		Language:        verbose.Language,
	}

	for _, s := range verbose.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		// Whisper reports avg_logprob rather than a confidence; exp maps it
		// into (0,1] so downstream confidence bands still apply.
		conf := logprobToConfidence(s.AvgLogprob)
		result.Segments = append(result.Segments, providers.TranscriptionSegment{
			StartSeconds: s.Start,
			EndSeconds:   s.End,
			Content:      text,
			Confidence:   &conf,
		})
	}

	if len(result.Segments) == 0 && strings.TrimSpace(verbose.Text) != "" {
		result.Segments = append(result.Segments, providers.TranscriptionSegment{
			StartSeconds: 0,
			EndSeconds:   verbose.Duration,
			Content:      strings.TrimSpace(verbose.Text),
		})
	}

	return result
}

func logprobToConfidence(avgLogprob float64) float64 {
	if avgLogprob >= 0 {
		return 1
	}
	return math.Exp(avgLogprob)
}

// classifyOpenAI maps openai-go errors to provider error kinds.
func classifyOpenAI(provider string, err error) error {
	var apiErr *oai.Error
	if errors.As(err, &apiErr) {
		return classifyHTTP(provider, apiErr.StatusCode, apiErr.Message)
	}
	return providers.NewError(providers.KindTransient, provider, err)
}
