// Package summarize turns a processed transcript into the summary bundle:
// overview, key points, action items, optional chapters, and Mermaid
// visuals.
package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/scribeflow/scribeflow/pkg/prompts"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/providers/llm"
	"github.com/scribeflow/scribeflow/pkg/transcript"
)

// Summary types.
const (
	TypeOverview    = "overview"
	TypeKeyPoints   = "key_points"
	TypeActionItems = "action_items"
	TypeChapters    = "chapters"

	TypeVisualMindmap   = "visual_mindmap"
	TypeVisualTimeline  = "visual_timeline"
	TypeVisualFlowchart = "visual_flowchart"
)

// VisualFormatMermaid is the only visual format produced today.
const VisualFormatMermaid = "mermaid"

const (
	// chaptersThresholdRunes: transcripts shorter than this skip chapters.
	chaptersThresholdRunes = 2000

	// visualAttempts bounds regeneration of invalid diagrams.
	visualAttempts = 2

	defaultTemperature = 0.4
	defaultMaxTokens   = 2048
)

// qualityCaveat is prepended to the overview when transcription confidence
// was poor.
const qualityCaveat = "> ⚠ Parts of this recording transcribed with low confidence; details below may be inaccurate.\n\n"

// Input is the material a summary bundle is generated from.
type Input struct {
	// Transcript is the speaker-block formatted text.
	Transcript string
	Style      string
	Language   string
	// Quality is the transcript quality assessment. Low quality injects a
	// caveat preamble into every prompt and flags the stored overview.
	Quality transcript.Quality
}

// Item is one generated summary.
type Item struct {
	Type          string
	Content       string
	VisualFormat  string
	VisualContent string
	ModelUsed     string
	PromptVersion string
	TokenCount    int
}

// Generator renders prompts and drives an LLM client to produce summaries.
type Generator struct {
	catalog *prompts.Catalog
}

// NewGenerator creates a Generator over the embedded prompt catalog.
func NewGenerator() (*Generator, error) {
	catalog, err := prompts.Load()
	if err != nil {
		return nil, err
	}
	return &Generator{catalog: catalog}, nil
}

// PromptVersion reports the active catalog version.
func (g *Generator) PromptVersion() string { return g.catalog.Version }

func promptParams(input Input) prompts.Params {
	return prompts.Params{
		Transcript:    input.Transcript,
		Style:         input.Style,
		Language:      input.Language,
		QualityNotice: input.Quality.Notice(),
	}
}

// NeedsChapters reports whether the transcript is long enough for a
// chapters summary.
func NeedsChapters(transcript string) bool {
	return utf8.RuneCountInString(transcript) > chaptersThresholdRunes
}

// GenerateBundle produces the textual summary set: overview, key points,
// action items, and chapters when the transcript is long enough. A chapters
// failure is logged and skipped; the core three are mandatory.
func (g *Generator) GenerateBundle(ctx context.Context, client providers.LLMClient, input Input) ([]Item, error) {
	types := []string{TypeOverview, TypeKeyPoints, TypeActionItems}
	if NeedsChapters(input.Transcript) {
		types = append(types, TypeChapters)
	}

	var items []Item
	for _, summaryType := range types {
		item, err := g.generateText(ctx, client, summaryType, input)
		if err != nil {
			if summaryType == TypeChapters {
				slog.Warn("Chapters generation failed, continuing without",
					"provider", client.Provider(), "error", err)
				continue
			}
			return nil, fmt.Errorf("generating %s: %w", summaryType, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (g *Generator) generateText(ctx context.Context, client providers.LLMClient, summaryType string, input Input) (Item, error) {
	system, user, err := g.catalog.Render(summaryType, promptParams(input))
	if err != nil {
		return Item{}, err
	}

	content, err := client.Generate(ctx, user, system, providers.GenerateParams{
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	})
	if err != nil {
		return Item{}, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return Item{}, providers.Errorf(providers.KindTransient, client.Provider(), "empty %s response", summaryType)
	}

	if summaryType == TypeChapters {
		content, err = ParseChapters(content)
		if err != nil {
			return Item{}, fmt.Errorf("chapters response: %w", err)
		}
	}

	if summaryType == TypeOverview && input.Quality.Score == transcript.ConfidenceLow {
		content = qualityCaveat + content
	}

	return Item{
		Type:          summaryType,
		Content:       content,
		ModelUsed:     client.ModelName(),
		PromptVersion: g.catalog.Version,
		TokenCount:    llm.EstimateTokens(system+user) + llm.EstimateTokens(content),
	}, nil
}

// GenerateVisual produces one Mermaid visual summary. Invalid diagrams are
// regenerated up to visualAttempts times before failing.
func (g *Generator) GenerateVisual(ctx context.Context, client providers.LLMClient, visualType string, input Input) (Item, error) {
	system, user, err := g.catalog.Render(visualType, promptParams(input))
	if err != nil {
		return Item{}, err
	}

	var lastErr error
	for attempt := 1; attempt <= visualAttempts; attempt++ {
		response, err := client.Generate(ctx, user, system, providers.GenerateParams{
			Temperature: defaultTemperature,
			MaxTokens:   defaultMaxTokens,
		})
		if err != nil {
			return Item{}, err
		}

		diagram, err := ExtractMermaid(response)
		if err != nil {
			lastErr = err
			slog.Warn("Generated diagram failed validation",
				"visual_type", visualType, "attempt", attempt, "error", err)
			continue
		}

		return Item{
			Type:          visualType,
			Content:       diagram,
			VisualFormat:  VisualFormatMermaid,
			VisualContent: diagram,
			ModelUsed:     client.ModelName(),
			PromptVersion: g.catalog.Version,
			TokenCount:    llm.EstimateTokens(system+user) + llm.EstimateTokens(response),
		}, nil
	}
	return Item{}, fmt.Errorf("diagram invalid after %d attempts: %w", visualAttempts, lastErr)
}
