// Package media handles source resolution, download, and audio
// normalization ahead of transcription.
package media

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

const resolverName = "media"

// mediaURLPatterns pull a direct media URL out of an HTML page, in
// preference order: Open Graph video/audio tags, then <source>/<video>/
// <audio> elements.
var mediaURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`<meta[^>]+property="og:video(?::secure_url|:url)?"[^>]+content="([^"]+)"`),
	regexp.MustCompile(`<meta[^>]+property="og:audio(?::secure_url|:url)?"[^>]+content="([^"]+)"`),
	regexp.MustCompile(`<source[^>]+src="([^"]+)"`),
	regexp.MustCompile(`<(?:video|audio)[^>]+src="([^"]+)"`),
}

// Resolver turns a user-supplied URL into a directly downloadable media URL.
type Resolver struct {
	httpClient     *http.Client
	allowedSchemes []string
}

// NewResolver creates a Resolver. allowedSchemes defaults to http/https.
func NewResolver(timeout time.Duration, allowedSchemes []string) *Resolver {
	if len(allowedSchemes) == 0 {
		allowedSchemes = []string{"http", "https"}
	}
	return &Resolver{
		httpClient:     &http.Client{Timeout: timeout},
		allowedSchemes: allowedSchemes,
	}
}

// Resolve returns a direct media URL for src. Direct audio/video URLs pass
// through; HTML pages are scraped for their primary media element.
func (r *Resolver) Resolve(ctx context.Context, src string) (string, error) {
	parsed, err := url.Parse(src)
	if err != nil {
		return "", providers.Errorf(providers.KindInvalidFormat, resolverName, "invalid source url: %v", err)
	}
	if !r.schemeAllowed(parsed.Scheme) {
		return "", providers.Errorf(providers.KindInvalidFormat, resolverName, "scheme %q not allowed", parsed.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", providers.NewError(providers.KindConfig, resolverName, err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", providers.NewError(providers.KindTransient, resolverName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		kind := providers.KindTransient
		if resp.StatusCode < 500 {
			kind = providers.KindInvalidFormat
		}
		return "", providers.Errorf(kind, resolverName, "fetching source: status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if isMediaContentType(contentType) {
		return src, nil
	}
	if !strings.Contains(contentType, "text/html") {
		// Unknown binary payloads go to probing; ffprobe has the final say.
		return src, nil
	}

	// Page scrape: read a bounded chunk, look for a media element.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", providers.NewError(providers.KindTransient, resolverName, err)
	}

	mediaURL, err := extractMediaURL(string(body))
	if err != nil {
		return "", err
	}
	return absoluteURL(parsed, mediaURL), nil
}

func (r *Resolver) schemeAllowed(scheme string) bool {
	for _, s := range r.allowedSchemes {
		if s == scheme {
			return true
		}
	}
	return false
}

func isMediaContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "audio/") ||
		strings.HasPrefix(contentType, "video/") ||
		strings.HasPrefix(contentType, "application/octet-stream")
}

func extractMediaURL(html string) (string, error) {
	for _, pattern := range mediaURLPatterns {
		if m := pattern.FindStringSubmatch(html); m != nil {
			return m[1], nil
		}
	}
	return "", providers.Errorf(providers.KindInvalidFormat, resolverName, "no media element found in page")
}

// absoluteURL resolves a possibly relative media URL against the page URL.
func absoluteURL(page *url.URL, media string) string {
	ref, err := url.Parse(media)
	if err != nil {
		return media
	}
	return page.ResolveReference(ref).String()
}

// GuessFormat extracts the media container extension from a URL path,
// defaulting to mp4 when the path carries none.
func GuessFormat(mediaURL string) string {
	parsed, err := url.Parse(mediaURL)
	if err != nil {
		return "mp4"
	}
	path := parsed.Path
	if idx := strings.LastIndex(path, "."); idx >= 0 && idx < len(path)-1 {
		ext := strings.ToLower(path[idx+1:])
		if len(ext) <= 5 {
			return ext
		}
	}
	return "mp4"
}
