package summarize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChapters(t *testing.T) {
	valid := `{"total_chapters": 2, "chapters": [` +
		`{"index": 1, "title": "Intro", "start_offset": 0, "end_offset": 90, "summary": "Hello."},` +
		`{"index": 2, "title": "Roadmap", "start_offset": 90, "end_offset": 400, "summary": "Plans."}]}`

	t.Run("plain JSON", func(t *testing.T) {
		out, err := ParseChapters(valid)
		require.NoError(t, err)

		var doc ChapterDoc
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, 2, doc.TotalChapters)
		require.Len(t, doc.Chapters, 2)
		assert.Equal(t, "Intro", doc.Chapters[0].Title)
		assert.Equal(t, 90.0, doc.Chapters[0].EndOffset)
	})

	t.Run("JSON wrapped in prose and code fence", func(t *testing.T) {
		out, err := ParseChapters("Here are the chapters:\n```json\n" + valid + "\n```")
		require.NoError(t, err)

		var doc ChapterDoc
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, 2, doc.TotalChapters)
	})

	t.Run("total corrected to chapter count", func(t *testing.T) {
		out, err := ParseChapters(`{"total_chapters": 7, "chapters": [` +
			`{"index": 1, "title": "Only", "start_offset": 0, "end_offset": 10, "summary": "x"}]}`)
		require.NoError(t, err)

		var doc ChapterDoc
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, 1, doc.TotalChapters)
	})

	t.Run("no JSON object", func(t *testing.T) {
		_, err := ParseChapters("Chapter 1 - Kickoff\nChapter 2 - Wrap-up")
		assert.Error(t, err)
	})

	t.Run("empty chapters list", func(t *testing.T) {
		_, err := ParseChapters(`{"total_chapters": 0, "chapters": []}`)
		assert.Error(t, err)
	})

	t.Run("untitled chapter", func(t *testing.T) {
		_, err := ParseChapters(`{"total_chapters": 1, "chapters": [` +
			`{"index": 1, "title": "  ", "start_offset": 0, "end_offset": 10, "summary": "x"}]}`)
		assert.Error(t, err)
	})
}
