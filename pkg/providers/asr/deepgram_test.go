package asr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

const deepgramFixture = `{
  "metadata": {"duration": 42.5},
  "results": {
    "channels": [{
      "detected_language": "en",
      "alternatives": [{"transcript": "hello there general", "confidence": 0.97}]
    }],
    "utterances": [
      {"start": 0.0, "end": 2.1, "confidence": 0.98, "transcript": "hello there", "speaker": 0,
       "words": [{"word": "hello", "punctuated_word": "Hello", "start": 0.0, "end": 0.8, "confidence": 0.99}]},
      {"start": 2.5, "end": 4.0, "confidence": 0.91, "transcript": "general", "speaker": 1, "words": []}
    ]
  }
}`

func newTestDeepgram(t *testing.T, handler http.HandlerFunc) *Deepgram {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	d, err := NewDeepgram("dg-key", WithDeepgramBaseURL(srv.URL))
	require.NoError(t, err)
	return d
}

func TestDeepgramTranscribe(t *testing.T) {
	var gotQuery string
	var gotAuth string
	d := newTestDeepgram(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(deepgramFixture))
	})

	result, err := d.Transcribe(context.Background(),
		providers.AudioSource{URL: "https://media.example.com/a.wav"},
		providers.TranscribeOptions{Language: "auto", EnableDiarization: true})
	require.NoError(t, err)

	assert.Equal(t, "Token dg-key", gotAuth)
	assert.Contains(t, gotQuery, "diarize=true")
	assert.Contains(t, gotQuery, "detect_language=true")

	assert.Equal(t, 42.5, result.DurationSeconds)
	assert.Equal(t, "en", result.Language)
	require.Len(t, result.Segments, 2)

	first := result.Segments[0]
	require.NotNil(t, first.SpeakerID)
	assert.Equal(t, "spk_0", *first.SpeakerID)
	assert.Equal(t, "hello there", first.Content)
	require.Len(t, first.Words, 1)
	assert.Equal(t, "Hello", first.Words[0].Word)

	second := result.Segments[1]
	require.NotNil(t, second.SpeakerID)
	assert.Equal(t, "spk_1", *second.SpeakerID)
}

func TestDeepgramFallsBackToChannelTranscript(t *testing.T) {
	noUtterances := strings.Replace(deepgramFixture, `"utterances": [`, `"ignored": [`, 1)
	d := newTestDeepgram(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(noUtterances))
	})

	result, err := d.Transcribe(context.Background(),
		providers.AudioSource{URL: "https://media.example.com/a.wav"},
		providers.TranscribeOptions{})
	require.NoError(t, err)

	require.Len(t, result.Segments, 1)
	assert.Equal(t, "hello there general", result.Segments[0].Content)
	assert.Equal(t, 42.5, result.Segments[0].EndSeconds)
}

func TestDeepgramErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   providers.ErrorKind
	}{
		{"rate limited", http.StatusTooManyRequests, providers.KindQuotaExceeded},
		{"bad media", http.StatusBadRequest, providers.KindInvalidFormat},
		{"bad credentials", http.StatusUnauthorized, providers.KindUnavailable},
		{"vendor outage", http.StatusBadGateway, providers.KindTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeepgram(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := d.Transcribe(context.Background(),
				providers.AudioSource{URL: "https://media.example.com/a.wav"},
				providers.TranscribeOptions{})
			require.Error(t, err)
			assert.Equal(t, tt.want, providers.KindOf(err))
		})
	}
}
