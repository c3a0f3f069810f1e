// Package prompts holds the versioned prompt catalog for summarization.
// Prompts live in an embedded YAML file so non-code changes still flow
// through review, and every generated summary records the catalog version.
package prompts

import (
	"bytes"
	"fmt"
	"text/template"

	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var rawCatalog []byte

// Prompt is one rendered-template pair.
type Prompt struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// Catalog is the parsed prompt set.
type Catalog struct {
	Version string            `yaml:"version"`
	Prompts map[string]Prompt `yaml:"prompts"`
}

// Params fills a prompt template.
type Params struct {
	Transcript string
	Style      string
	Language   string

	// QualityNotice is the recognition-quality preamble injected into every
	// prompt; empty for high-quality transcripts.
	QualityNotice string
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(rawCatalog, &c); err != nil {
		return nil, fmt.Errorf("parsing prompt catalog: %w", err)
	}
	if c.Version == "" {
		return nil, fmt.Errorf("prompt catalog has no version")
	}
	return &c, nil
}

// Render returns the (system, user) messages for a summary type.
func (c *Catalog) Render(summaryType string, params Params) (system, user string, err error) {
	p, ok := c.Prompts[summaryType]
	if !ok {
		return "", "", fmt.Errorf("no prompt for summary type %q", summaryType)
	}
	if params.Style == "" {
		params.Style = "general"
	}

	user, err = renderTemplate(summaryType, p.User, params)
	if err != nil {
		return "", "", err
	}
	return p.System, user, nil
}

func renderTemplate(name, text string, params Params) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing prompt template %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("rendering prompt template %q: %w", name, err)
	}
	return buf.String(), nil
}
