package summarize

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ChapterDoc is the stored chapters summary content.
type ChapterDoc struct {
	TotalChapters int       `json:"total_chapters"`
	Chapters      []Chapter `json:"chapters"`
}

// Chapter is one timeline chapter of the transcript.
type Chapter struct {
	Index       int     `json:"index"`
	Title       string  `json:"title"`
	StartOffset float64 `json:"start_offset"`
	EndOffset   float64 `json:"end_offset"`
	Summary     string  `json:"summary"`
}

// ParseChapters validates an LLM chapters response and returns it as
// canonical JSON. Models sometimes wrap the document in prose or a code
// fence, so parsing falls back to the first balanced JSON object in the
// response.
func ParseChapters(raw string) (string, error) {
	var doc ChapterDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		extracted, ok := extractJSONObject(raw)
		if !ok {
			return "", fmt.Errorf("no JSON object in chapters response")
		}
		if err := json.Unmarshal([]byte(extracted), &doc); err != nil {
			return "", fmt.Errorf("parsing chapters JSON: %w", err)
		}
	}

	if len(doc.Chapters) == 0 {
		return "", fmt.Errorf("chapters document has no chapters")
	}
	if doc.TotalChapters != len(doc.Chapters) {
		doc.TotalChapters = len(doc.Chapters)
	}
	for i, ch := range doc.Chapters {
		if strings.TrimSpace(ch.Title) == "" {
			return "", fmt.Errorf("chapter %d has no title", i+1)
		}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding chapters: %w", err)
	}
	return string(out), nil
}

// extractJSONObject returns the outermost {...} span of s.
func extractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
