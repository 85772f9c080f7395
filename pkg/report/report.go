/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/

// Package report renders feedline outcomes for people and for tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fulmenhq/feedline/pkg/feedline"
)

// Format represents the output format of a report
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return FormatText, fmt.Errorf("unsupported format: %s", s)
	}
}

// Options configures a Renderer. Only the text format looks at Verbosity,
// UseColor and Files.
type Options struct {
	Format    Format
	Verbosity Verbosity
	UseColor  bool
	// Files is the input list echoed in the verbose preamble.
	Files []string
}

// Renderer writes outcomes in the configured format. It never reorders
// them; sorting is up to the caller.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer
func NewRenderer(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Renderer{opts: opts}
}

// document is the shape of the json and yaml reports.
type document struct {
	Summary  feedline.Summary   `json:"summary" yaml:"summary"`
	Outcomes []feedline.Outcome `json:"outcomes" yaml:"outcomes"`
}

func newDocument(outcomes []feedline.Outcome) document {
	if outcomes == nil {
		outcomes = []feedline.Outcome{}
	}
	return document{Summary: feedline.Summarize(outcomes), Outcomes: outcomes}
}

// Render writes outcomes to w
func (r *Renderer) Render(w io.Writer, outcomes []feedline.Outcome) error {
	switch r.opts.Format {
	case FormatText:
		return r.renderText(w, outcomes)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newDocument(outcomes)); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(outcomes)); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		return r.renderMarkdown(w, outcomes)
	default:
		return fmt.Errorf("unsupported format: %s", r.opts.Format)
	}
}
