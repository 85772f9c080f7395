package report

import (
	"fmt"
	"strings"

	"github.com/fulmenhq/feedline/pkg/feedline"
)

// Verbosity controls which outcomes the text renderer shows
type Verbosity int

const (
	Quiet Verbosity = iota
	Normal
	Verbose
)

func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Normal:
		return "normal"
	case Verbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// ParseVerbosity parses quiet, normal or verbose, ignoring case.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quiet":
		return Quiet, nil
	case "normal", "":
		return Normal, nil
	case "verbose":
		return Verbose, nil
	default:
		return Normal, fmt.Errorf("invalid verbosity %q (expected quiet, normal or verbose)", s)
	}
}

// VerbosityFromFlags combines a counted -v flag with -q. Quiet always wins.
func VerbosityFromFlags(base Verbosity, verboseCount int, quiet bool) Verbosity {
	switch {
	case quiet:
		return Quiet
	case verboseCount > 0:
		return Verbose
	default:
		return base
	}
}

// Threshold is the lowest verbosity at which an outcome with status s is
// shown. Errors are never suppressed.
func Threshold(s feedline.Status) Verbosity {
	switch s {
	case feedline.Error:
		return Quiet
	case feedline.Success, feedline.Warn:
		return Normal
	default:
		return Verbose
	}
}

// Visible reports whether an outcome with status s is shown at verbosity v.
func Visible(s feedline.Status, v Verbosity) bool {
	return Threshold(s) <= v
}
