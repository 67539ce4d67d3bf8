// ============================================================================
// Pitagoras - Right-Triangle Trainer
// ============================================================================
//
// Package:     reference
// Description: Static panel of geometry facts, embedded as YAML
// License:     MIT
// ============================================================================

package reference

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lmoreno/pitagoras/internal/apperr"
)

//go:embed facts.yaml
var factsYAML []byte

// Fact is one titled entry of the reference panel
type Fact struct {
	Title   string `yaml:"title"`
	Body    string `yaml:"body"`
	Formula string `yaml:"formula,omitempty"`
}

// Section groups related facts
type Section struct {
	Title string `yaml:"title"`
	Facts []Fact `yaml:"facts"`
}

// Panel is the full reference content
type Panel struct {
	Sections []Section `yaml:"sections"`
}

// Load parses the embedded reference content
func Load() (*Panel, error) {
	var p Panel
	if err := yaml.Unmarshal(factsYAML, &p); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeConfig, "parsing reference content")
	}
	if len(p.Sections) == 0 {
		return nil, apperr.New(apperr.CodeConfig, "reference content is empty")
	}
	return &p, nil
}

// Render formats the panel as plain text, wrapping bodies at width columns.
// Styling is left to the caller.
func (p *Panel) Render(width int) string {
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for i, sec := range p.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n%s\n", sec.Title, strings.Repeat("─", len([]rune(sec.Title))))
		for _, f := range sec.Facts {
			fmt.Fprintf(&b, "\n• %s\n", f.Title)
			for _, line := range wrap(f.Body, width-2) {
				fmt.Fprintf(&b, "  %s\n", line)
			}
			if f.Formula != "" {
				fmt.Fprintf(&b, "    %s\n", f.Formula)
			}
		}
	}
	return b.String()
}

// wrap breaks text into lines of at most width columns, on word boundaries.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
