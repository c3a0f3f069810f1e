package summarize

import (
	"fmt"
	"strings"
)

// mermaidHeaders are the diagram types visual summaries may produce.
var mermaidHeaders = []string{"mindmap", "timeline", "flowchart", "graph"}

// ExtractMermaid pulls the Mermaid source out of an LLM response. Accepts a
// fenced ```mermaid block, a bare fenced block, or raw diagram text.
func ExtractMermaid(response string) (string, error) {
	text := strings.TrimSpace(response)

	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		rest = strings.TrimPrefix(rest, "mermaid")
		end := strings.Index(rest, "```")
		if end < 0 {
			return "", fmt.Errorf("unterminated code fence in diagram response")
		}
		text = strings.TrimSpace(rest[:end])
	}

	if err := ValidateMermaid(text); err != nil {
		return "", err
	}
	return text, nil
}

// ValidateMermaid checks the structural sanity of Mermaid source: a known
// diagram header, a non-empty body, and balanced brackets. The text itself
// is the product; rendering to an image is a separate, optional step.
func ValidateMermaid(source string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return fmt.Errorf("empty diagram")
	}

	lines := strings.Split(source, "\n")
	header := strings.TrimSpace(lines[0])

	known := false
	for _, h := range mermaidHeaders {
		if strings.HasPrefix(header, h) {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown diagram type %q", header)
	}

	if len(lines) < 2 {
		return fmt.Errorf("diagram has no body")
	}

	if err := balancedBrackets(source); err != nil {
		return err
	}
	return nil
}

func balancedBrackets(source string) error {
	var stack []rune
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}

	for _, r := range source {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				return fmt.Errorf("unbalanced %q in diagram", r)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		return fmt.Errorf("unclosed %q in diagram", stack[len(stack)-1])
	}
	return nil
}
