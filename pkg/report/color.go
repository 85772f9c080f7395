package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fulmenhq/feedline/pkg/feedline"
	"github.com/fulmenhq/feedline/pkg/pathsource"
)

// ColorMode selects when ANSI colour is written. It implements pflag.Value.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses always, never or auto, ignoring case.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q (expected always, never or auto)", s)
	}
}

func (m *ColorMode) String() string {
	if *m == "" {
		return string(ColorAuto)
	}
	return string(*m)
}

func (m *ColorMode) Set(s string) error {
	parsed, err := ParseColorMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *ColorMode) Type() string { return "when" }

// Resolve decides whether output written to w should be coloured. In auto
// mode colour requires NO_COLOR to be unset, TERM not to be "dumb" and w to
// be a terminal.
func (m ColorMode) Resolve(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return pathsource.IsTerminal(w)
}

const (
	ansiReset   = "\x1b[0m"
	ansiDim     = "\x1b[2m"
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiMagenta = "\x1b[35m"
)

// statusColor is keyed by status, never by rank.
func statusColor(s feedline.Status) string {
	switch s {
	case feedline.Success:
		return ansiGreen
	case feedline.Skip:
		return ansiYellow
	case feedline.Warn:
		return ansiMagenta
	case feedline.Error:
		return ansiRed
	default:
		return ""
	}
}

func paint(enabled bool, code, s string) string {
	if !enabled || code == "" || s == "" {
		return s
	}
	return code + s + ansiReset
}
