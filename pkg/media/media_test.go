package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

func TestResolveDirectMediaURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("audio bytes"))
	}))
	defer server.Close()

	r := NewResolver(5*time.Second, nil)
	got, err := r.Resolve(context.Background(), server.URL+"/episode.mp3")
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/episode.mp3", got)
}

func TestResolveScrapesHTMLPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/watch" {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<html><head>
				<meta property="og:video" content="/media/talk.mp4" />
			</head></html>`))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	r := NewResolver(5*time.Second, nil)
	got, err := r.Resolve(context.Background(), server.URL+"/watch")
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/media/talk.mp4", got, "relative URL resolved against the page")
}

func TestResolveNoMediaInPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>nothing to see</body></html>`))
	}))
	defer server.Close()

	r := NewResolver(5*time.Second, nil)
	_, err := r.Resolve(context.Background(), server.URL)
	require.Error(t, err)
	assert.Equal(t, providers.KindInvalidFormat, providers.KindOf(err))
}

func TestResolveRejectsScheme(t *testing.T) {
	r := NewResolver(time.Second, []string{"https"})
	_, err := r.Resolve(context.Background(), "ftp://host/file.mp3")
	require.Error(t, err)
	assert.Equal(t, providers.KindInvalidFormat, providers.KindOf(err))
}

func TestFetchDownloadsAndHashes(t *testing.T) {
	payload := []byte("pretend this is audio")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(payload)
	}))
	defer server.Close()

	d := NewDownloader(t.TempDir(), 0, 5*time.Second)
	got, err := d.Fetch(context.Background(), server.URL+"/clip.mp3")
	require.NoError(t, err)

	assert.Equal(t, int64(len(payload)), got.SizeBytes)
	assert.Equal(t, "mp3", got.Format)
	assert.Len(t, got.ContentHash, 64)

	data, err := os.ReadFile(got.Path)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, got.ContentHash+".mp3", filepath.Base(got.Path))
}

func TestFetchEnforcesSizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(make([]byte, 2048))
	}))
	defer server.Close()

	d := NewDownloader(t.TempDir(), 1024, 5*time.Second)
	_, err := d.Fetch(context.Background(), server.URL+"/big.mp3")
	require.Error(t, err)
	assert.Equal(t, providers.KindInvalidFormat, providers.KindOf(err))
}

func TestFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	d := NewDownloader(t.TempDir(), 0, 5*time.Second)
	_, err := d.Fetch(context.Background(), server.URL+"/clip.mp3")
	require.Error(t, err)
	assert.Equal(t, providers.KindTransient, providers.KindOf(err))
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.bin")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	h1, err := HashFile(path)
	require.NoError(t, err)
	h2, err := HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestGuessFormat(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/a/b/talk.MP4?sig=abc", "mp4"},
		{"https://cdn.example.com/audio.flac", "flac"},
		{"https://cdn.example.com/stream", "mp4"},
		{"https://cdn.example.com/file.reallylongext", "mp4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GuessFormat(tt.url), tt.url)
	}
}
