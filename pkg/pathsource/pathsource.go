// Package pathsource produces the ordered list of paths a feedline run works
// on, either from command-line arguments or from a newline-delimited stream.
package pathsource

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source yields an ordered sequence of input paths
type Source interface {
	Paths() ([]string, error)
	Name() string
}

type argSource struct {
	args []string
}

// FromArgs returns a Source over explicit paths. Arguments are used verbatim.
func FromArgs(args []string) Source {
	return argSource{args: args}
}

func (s argSource) Paths() ([]string, error) {
	out := make([]string, len(s.args))
	copy(out, s.args)
	return out, nil
}

func (s argSource) Name() string { return "args" }

type readerSource struct {
	r io.Reader
}

// FromReader returns a Source that reads one path per line from r. Lines
// that are blank after trimming are dropped; other lines are kept as-is,
// minus the line terminator.
func FromReader(r io.Reader) Source {
	return readerSource{r: r}
}

func (s readerSource) Paths() ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(s.r)
	// Allow paths up to the common PATH_MAX-ish limits and then some.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return paths, fmt.Errorf("failed reading path list: %w", err)
	}
	return paths, nil
}

func (s readerSource) Name() string { return "stdin" }

type emptySource struct{}

func (emptySource) Paths() ([]string, error) { return nil, nil }
func (emptySource) Name() string             { return "none" }

// Select picks the source for a run: explicit arguments win; otherwise stdin
// is read unless it is an interactive terminal.
func Select(args []string, stdin io.Reader) Source {
	if len(args) > 0 {
		return FromArgs(args)
	}
	if stdin == nil || IsTerminal(stdin) {
		return emptySource{}
	}
	return FromReader(stdin)
}

// IsTerminal reports whether r is a file attached to a character device.
func IsTerminal(r interface{}) bool {
	f, ok := r.(*os.File)
	if !ok || f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
