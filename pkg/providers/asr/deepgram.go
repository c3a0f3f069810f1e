// Package asr contains the built-in speech-to-text provider clients.
package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/scribeflow/scribeflow/pkg/models"
	"github.com/scribeflow/scribeflow/pkg/providers"
)

const (
	deepgramDefaultBaseURL = "https://api.deepgram.com/v1"
	deepgramDefaultModel   = "nova-2"
)

// Deepgram transcribes audio through the Deepgram pre-recorded API.
type Deepgram struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// DeepgramOption is a functional option for Deepgram.
type DeepgramOption func(*Deepgram)

// WithDeepgramBaseURL overrides the default API base URL.
func WithDeepgramBaseURL(u string) DeepgramOption {
	return func(d *Deepgram) {
		d.baseURL = u
	}
}

// WithDeepgramModel selects the transcription model.
func WithDeepgramModel(model string) DeepgramOption {
	return func(d *Deepgram) {
		d.model = model
	}
}

// WithDeepgramHTTPClient overrides the HTTP client used for API calls.
func WithDeepgramHTTPClient(c *http.Client) DeepgramOption {
	return func(d *Deepgram) {
		d.httpClient = c
	}
}

// NewDeepgram constructs a Deepgram client.
func NewDeepgram(apiKey string, opts ...DeepgramOption) (*Deepgram, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("deepgram: apiKey must not be empty")
	}

	d := &Deepgram{
		apiKey:     apiKey,
		baseURL:    deepgramDefaultBaseURL,
		model:      deepgramDefaultModel,
		httpClient: &http.Client{Timeout: 10 * time.Minute},
	}
	for _, o := range opts {
		o(d)
	}
	return d, nil
}

// Provider implements providers.Client.
func (d *Deepgram) Provider() string { return "deepgram" }

// deepgramResponse mirrors the pre-recorded API response, reduced to the
// fields we consume.
type deepgramResponse struct {
	Metadata struct {
		Duration float64 `json:"duration"`
	} `json:"metadata"`
	Results struct {
		Channels []struct {
			DetectedLanguage string `json:"detected_language"`
			Alternatives     []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
		Utterances []deepgramUtterance `json:"utterances"`
	} `json:"results"`
}

type deepgramUtterance struct {
	Start      float64        `json:"start"`
	End        float64        `json:"end"`
	Confidence float64        `json:"confidence"`
	Transcript string         `json:"transcript"`
	Speaker    *int           `json:"speaker"`
	Words      []deepgramWord `json:"words"`
}

type deepgramWord struct {
	Word           string  `json:"word"`
	PunctuatedWord string  `json:"punctuated_word"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	Confidence     float64 `json:"confidence"`
}

// Transcribe implements providers.ASRClient.
func (d *Deepgram) Transcribe(ctx context.Context, src providers.AudioSource, opts providers.TranscribeOptions) (*providers.TranscriptionResult, error) {
	req, err := d.buildRequest(ctx, src, opts)
	if err != nil {
		return nil, err
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, providers.NewError(providers.KindTransient, d.Provider(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, classifyHTTP(d.Provider(), resp.StatusCode, string(body))
	}

	var parsed deepgramResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, providers.Errorf(providers.KindTransient, d.Provider(), "decode response: %v", err)
	}

	return d.toResult(&parsed), nil
}

func (d *Deepgram) buildRequest(ctx context.Context, src providers.AudioSource, opts providers.TranscribeOptions) (*http.Request, error) {
	params := url.Values{}
	params.Set("model", d.model)
	params.Set("smart_format", "true")
	params.Set("utterances", "true")
	if opts.EnableDiarization {
		params.Set("diarize", "true")
	}
	switch opts.Language {
	case "", "auto":
		params.Set("detect_language", "true")
	default:
		params.Set("language", opts.Language)
	}

	endpoint := d.baseURL + "/listen?" + params.Encode()

	var req *http.Request
	var err error
	switch {
	case src.URL != "":
		payload, merr := json.Marshal(map[string]string{"url": src.URL})
		if merr != nil {
			return nil, providers.NewError(providers.KindConfig, d.Provider(), merr)
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err == nil {
			req.Header.Set("Content-Type", "application/json")
		}
	case src.Reader != nil:
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, endpoint, src.Reader)
		if err == nil {
			req.ContentLength = src.SizeBytes
			req.Header.Set("Content-Type", audioContentType(src.Format))
		}
	default:
		return nil, providers.Errorf(providers.KindInvalidFormat, d.Provider(), "audio source has neither URL nor reader")
	}
	if err != nil {
		return nil, providers.NewError(providers.KindConfig, d.Provider(), err)
	}

	req.Header.Set("Authorization", "Token "+d.apiKey)
	return req, nil
}

func (d *Deepgram) toResult(parsed *deepgramResponse) *providers.TranscriptionResult {
	result := &providers.TranscriptionResult{
		DurationSeconds: parsed.Metadata.Duration,
	}
	if len(parsed.Results.Channels) > 0 {
		result.Language = parsed.Results.Channels[0].DetectedLanguage
	}

	for _, u := range parsed.Results.Utterances {
		if u.Transcript == "" {
			continue
		}
		seg := providers.TranscriptionSegment{
			SpeakerID:    normalizeSpeaker(u.Speaker),
			StartSeconds: u.Start,
			EndSeconds:   u.End,
			Content:      u.Transcript,
		}
		conf := u.Confidence
		seg.Confidence = &conf
		for _, w := range u.Words {
			word := w.PunctuatedWord
			if word == "" {
				word = w.Word
			}
			seg.Words = append(seg.Words, models.WordTimestamp{
				Word:       word,
				Start:      w.Start,
				End:        w.End,
				Confidence: w.Confidence,
			})
		}
		result.Segments = append(result.Segments, seg)
	}

	// Some requests come back without utterances (very short clips). Fall
	// back to the channel-level transcript as a single segment.
	if len(result.Segments) == 0 && len(parsed.Results.Channels) > 0 &&
		len(parsed.Results.Channels[0].Alternatives) > 0 {
		alt := parsed.Results.Channels[0].Alternatives[0]
		if alt.Transcript != "" {
			conf := alt.Confidence
			result.Segments = append(result.Segments, providers.TranscriptionSegment{
				StartSeconds: 0,
				EndSeconds:   parsed.Metadata.Duration,
				Content:      alt.Transcript,
				Confidence:   &conf,
			})
		}
	}

	return result
}

// normalizeSpeaker maps a vendor speaker index to the canonical spk_N label.
func normalizeSpeaker(speaker *int) *string {
	if speaker == nil {
		return nil
	}
	s := fmt.Sprintf("spk_%d", *speaker)
	return &s
}

func audioContentType(format string) string {
	switch format {
	case "wav":
		return "audio/wav"
	case "mp3":
		return "audio/mpeg"
	case "flac":
		return "audio/flac"
	case "ogg":
		return "audio/ogg"
	case "m4a", "aac":
		return "audio/aac"
	default:
		return "application/octet-stream"
	}
}

// classifyHTTP maps a vendor HTTP status to a provider error kind.
func classifyHTTP(provider string, status int, body string) error {
	kind := providers.KindTransient
	switch {
	case status == http.StatusTooManyRequests || status == http.StatusPaymentRequired:
		kind = providers.KindQuotaExceeded
	case status == http.StatusBadRequest || status == http.StatusUnsupportedMediaType ||
		status == http.StatusRequestEntityTooLarge:
		kind = providers.KindInvalidFormat
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = providers.KindUnavailable
	}
	return providers.Errorf(kind, provider, "vendor returned %d: %s", status, body)
}
