package summarize

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/transcript"
)

// scriptedLLM returns canned responses in order of invocation.
type scriptedLLM struct {
	responses []string
	calls     int
	prompts   []string
}

func (s *scriptedLLM) Provider() string  { return "scripted" }
func (s *scriptedLLM) ModelName() string { return "scripted-1" }
func (s *scriptedLLM) EstimateCost(in, out int) float64 {
	return float64(in+out) * 0.000001
}

func (s *scriptedLLM) Generate(_ context.Context, prompt, _ string, _ providers.GenerateParams) (string, error) {
	s.prompts = append(s.prompts, prompt)
	resp := s.responses[s.calls%len(s.responses)]
	s.calls++
	return resp, nil
}

func (s *scriptedLLM) Chat(ctx context.Context, messages []providers.ChatMessage, params providers.GenerateParams) (string, error) {
	return s.Generate(ctx, messages[len(messages)-1].Content, "", params)
}

func (s *scriptedLLM) ChatStream(context.Context, []providers.ChatMessage, providers.GenerateParams) (<-chan string, error) {
	return nil, providers.ErrStreamingUnsupported
}

func TestGenerateBundleCoreTypes(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	client := &scriptedLLM{responses: []string{"summary text"}}
	items, err := g.GenerateBundle(context.Background(), client, Input{
		Transcript: "[spk_0] short meeting",
		Style:      "meeting",
	})
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, TypeOverview, items[0].Type)
	assert.Equal(t, TypeKeyPoints, items[1].Type)
	assert.Equal(t, TypeActionItems, items[2].Type)
	for _, item := range items {
		assert.Equal(t, "scripted-1", item.ModelUsed)
		assert.Equal(t, "v1.3.0", item.PromptVersion)
		assert.Positive(t, item.TokenCount)
	}
}

const chaptersJSON = `{"total_chapters": 2, "chapters": [` +
	`{"index": 1, "title": "Kickoff", "start_offset": 0, "end_offset": 120, "summary": "Opening."},` +
	`{"index": 2, "title": "Planning", "start_offset": 120, "end_offset": 300, "summary": "The plan."}]}`

func TestGenerateBundleAddsChaptersForLongTranscripts(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	client := &scriptedLLM{responses: []string{
		"summary text", "summary text", "summary text", chaptersJSON,
	}}
	items, err := g.GenerateBundle(context.Background(), client, Input{
		Transcript: strings.Repeat("[spk_0] lots of content here\n", 200),
	})
	require.NoError(t, err)

	require.Len(t, items, 4)
	assert.Equal(t, TypeChapters, items[3].Type)
	assert.JSONEq(t, chaptersJSON, items[3].Content)
}

func TestGenerateBundleSkipsUnparsableChapters(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	client := &scriptedLLM{responses: []string{
		"summary text", "summary text", "summary text", "Chapter 1: not JSON at all",
	}}
	items, err := g.GenerateBundle(context.Background(), client, Input{
		Transcript: strings.Repeat("[spk_0] lots of content here\n", 200),
	})
	require.NoError(t, err)

	// Chapters failure is non-fatal; the core three survive.
	require.Len(t, items, 3)
	for _, item := range items {
		assert.NotEqual(t, TypeChapters, item.Type)
	}
}

func TestGenerateBundleLowQuality(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	client := &scriptedLLM{responses: []string{"the overview"}}
	items, err := g.GenerateBundle(context.Background(), client, Input{
		Transcript: "[spk_0] mumbled recording",
		Quality:    transcript.Quality{Score: transcript.ConfidenceLow, AvgConfidence: 0.45},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(items[0].Content, ">"), "overview carries a caveat")
	assert.Contains(t, items[0].Content, "the overview")
	// Only the overview is annotated.
	assert.Equal(t, "the overview", items[1].Content)

	// Every prompt carries the quality preamble.
	require.Len(t, client.prompts, 3)
	for _, prompt := range client.prompts {
		assert.Contains(t, prompt, "low confidence")
		assert.Contains(t, prompt, "0.45")
	}
}

func TestGenerateBundleHighQualityPromptsCarryNoNotice(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	client := &scriptedLLM{responses: []string{"clean text"}}
	_, err = g.GenerateBundle(context.Background(), client, Input{
		Transcript: "[spk_0] crisp recording",
		Quality:    transcript.Quality{Score: transcript.ConfidenceHigh, AvgConfidence: 0.95},
	})
	require.NoError(t, err)

	for _, prompt := range client.prompts {
		assert.NotContains(t, prompt, "low confidence")
		assert.NotContains(t, prompt, "speech recognition")
	}
}

func TestGenerateVisual(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	client := &scriptedLLM{responses: []string{"```mermaid\nmindmap\n  root((Meeting))\n    Topic A\n```"}}
	item, err := g.GenerateVisual(context.Background(), client, TypeVisualMindmap, Input{
		Transcript: "[spk_0] topics",
	})
	require.NoError(t, err)

	assert.Equal(t, VisualFormatMermaid, item.VisualFormat)
	assert.True(t, strings.HasPrefix(item.VisualContent, "mindmap"))
	assert.Equal(t, item.Content, item.VisualContent)
}

func TestGenerateVisualRetriesInvalidDiagram(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	client := &scriptedLLM{responses: []string{
		"sorry, I cannot draw that",
		"timeline\n  2024 : kickoff",
	}}
	item, err := g.GenerateVisual(context.Background(), client, TypeVisualTimeline, Input{Transcript: "x"})
	require.NoError(t, err)

	assert.Equal(t, 2, client.calls)
	assert.True(t, strings.HasPrefix(item.Content, "timeline"))
}

func TestGenerateVisualFailsAfterAttempts(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	client := &scriptedLLM{responses: []string{"not a diagram"}}
	_, err = g.GenerateVisual(context.Background(), client, TypeVisualFlowchart, Input{Transcript: "x"})
	require.Error(t, err)
	assert.Equal(t, visualAttempts, client.calls)
}

func TestExtractMermaid(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"fenced mermaid block", "```mermaid\nflowchart TD\n  A --> B\n```", "flowchart TD\n  A --> B", false},
		{"bare fence", "```\ngraph LR\n  A --> B\n```", "graph LR\n  A --> B", false},
		{"raw diagram", "mindmap\n  root((X))", "mindmap\n  root((X))", false},
		{"unknown header", "sequenceDiagram\n  A->>B: hi", "", true},
		{"unterminated fence", "```mermaid\nmindmap\n  root((X))", "", true},
		{"unbalanced brackets", "mindmap\n  root((X)", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractMermaid(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
