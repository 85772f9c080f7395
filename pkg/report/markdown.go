package report

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/fulmenhq/feedline/pkg/feedline"
)

//go:embed templates/report.md.hbs
var markdownSource string

var markdownTemplate = mustMarkdownTemplate()

func mustMarkdownTemplate() *raymond.Template {
	tpl := raymond.MustParse(markdownSource)
	// cell HTML-escapes a value and makes it safe inside a table cell.
	tpl.RegisterHelper("cell", func(s string) raymond.SafeString {
		s = strings.ReplaceAll(raymond.Escape(s), "|", `\|`)
		s = strings.ReplaceAll(s, "\n", " ")
		return raymond.SafeString(s)
	})
	return tpl
}

func (r *Renderer) renderMarkdown(w io.Writer, outcomes []feedline.Outcome) error {
	summary := feedline.Summarize(outcomes)

	counts := make([]map[string]interface{}, 0, len(feedline.Statuses))
	for _, s := range feedline.Statuses {
		counts = append(counts, map[string]interface{}{
			"label": Label(s),
			"count": summary.Count(s),
		})
	}

	rows := make([]map[string]interface{}, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, map[string]interface{}{
			"label":   Label(o.Status),
			"path":    o.Path,
			"reason":  string(o.Reason),
			"message": o.Message,
		})
	}

	out, err := markdownTemplate.Exec(map[string]interface{}{
		"total":    summary.Total,
		"failed":   summary.Error > 0,
		"counts":   counts,
		"outcomes": rows,
	})
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
