package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fulmenhq/feedline/pkg/feedline"
)

var upper = cases.Upper(language.Und)

// labelWidth fits the longest status label, "SUCCESS".
const labelWidth = 7

// Label returns the upper-cased display label for a status.
func Label(s feedline.Status) string {
	return upper.String(s.String())
}

func (r *Renderer) renderText(w io.Writer, outcomes []feedline.Outcome) error {
	var sb strings.Builder
	color := r.opts.UseColor

	if r.opts.Verbosity >= Verbose {
		fmt.Fprintf(&sb, "%s %s\n", paint(color, ansiYellow, "verbosity:"), upper.String(r.opts.Verbosity.String()))
		fmt.Fprintf(&sb, "%s\n", paint(color, ansiYellow, "files provided:"))
		for _, f := range r.opts.Files {
			fmt.Fprintf(&sb, "\t%s\n", f)
		}
		sb.WriteString("\n")
	}

	for _, o := range outcomes {
		if !Visible(o.Status, r.opts.Verbosity) {
			continue
		}
		sb.WriteString(r.formatLine(o))
		sb.WriteString("\n")
	}

	if r.opts.Verbosity >= Verbose {
		s := feedline.Summarize(outcomes)
		fmt.Fprintf(&sb, "\nprocessed %d path(s): %d success, %d skip, %d warn, %d error\n",
			s.Total, s.Success, s.Skip, s.Warn, s.Error)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// formatLine renders "STATUS  path message" with the label padded so paths
// line up.
func (r *Renderer) formatLine(o feedline.Outcome) string {
	label := runewidth.FillRight(Label(o.Status), labelWidth)
	line := paint(r.opts.UseColor, statusColor(o.Status), label) + " " + o.Path
	if o.Message != "" {
		line += " " + paint(r.opts.UseColor, ansiDim, o.Message)
	}
	return line
}
