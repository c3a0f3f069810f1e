package media

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

// Download is the result of fetching a media source to local disk.
type Download struct {
	Path        string
	SizeBytes   int64
	ContentHash string
	Format      string
}

// Downloader fetches media URLs into a working directory, enforcing the
// configured size ceiling.
type Downloader struct {
	httpClient *http.Client
	workDir    string
	maxBytes   int64
}

// NewDownloader creates a Downloader. maxBytes of 0 means unlimited.
func NewDownloader(workDir string, maxBytes int64, timeout time.Duration) *Downloader {
	return &Downloader{
		httpClient: &http.Client{Timeout: timeout},
		workDir:    workDir,
		maxBytes:   maxBytes,
	}
}

// Fetch downloads mediaURL to the working directory, hashing the content as
// it streams. The file is named after its content hash so that repeated
// downloads of the same media land on the same path.
func (d *Downloader) Fetch(ctx context.Context, mediaURL string) (*Download, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, providers.NewError(providers.KindConfig, resolverName, err)
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, providers.NewError(providers.KindTransient, resolverName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		kind := providers.KindTransient
		if resp.StatusCode < 500 {
			kind = providers.KindInvalidFormat
		}
		return nil, providers.Errorf(kind, resolverName, "downloading media: status %d", resp.StatusCode)
	}
	if d.maxBytes > 0 && resp.ContentLength > d.maxBytes {
		return nil, providers.Errorf(providers.KindInvalidFormat, resolverName,
			"media size %d exceeds limit %d", resp.ContentLength, d.maxBytes)
	}

	if err := os.MkdirAll(d.workDir, 0o755); err != nil {
		return nil, providers.NewError(providers.KindConfig, resolverName, err)
	}
	tmp, err := os.CreateTemp(d.workDir, "download-*")
	if err != nil {
		return nil, providers.NewError(providers.KindConfig, resolverName, err)
	}
	defer tmp.Close()

	hasher := sha256.New()
	reader := io.Reader(resp.Body)
	if d.maxBytes > 0 {
		// One extra byte so an over-limit stream is detectable.
		reader = io.LimitReader(resp.Body, d.maxBytes+1)
	}
	written, err := io.Copy(io.MultiWriter(tmp, hasher), reader)
	if err != nil {
		os.Remove(tmp.Name())
		return nil, providers.NewError(providers.KindTransient, resolverName, err)
	}
	if d.maxBytes > 0 && written > d.maxBytes {
		os.Remove(tmp.Name())
		return nil, providers.Errorf(providers.KindInvalidFormat, resolverName,
			"media stream exceeds limit %d bytes", d.maxBytes)
	}

	format := GuessFormat(mediaURL)
	hash := hex.EncodeToString(hasher.Sum(nil))
	final := filepath.Join(d.workDir, fmt.Sprintf("%s.%s", hash, format))
	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return nil, providers.NewError(providers.KindConfig, resolverName, err)
	}

	return &Download{
		Path:        final,
		SizeBytes:   written,
		ContentHash: hash,
		Format:      format,
	}, nil
}

// HashFile computes the sha256 content hash of a local file, used for
// deduplicating direct uploads.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
