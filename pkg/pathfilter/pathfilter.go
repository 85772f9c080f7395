// Package pathfilter decides which input paths are withheld from feedline
// evaluation: explicit doublestar excludes and, optionally, gitignored paths.
package pathfilter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/fulmenhq/feedline/pkg/ignore"
)

const (
	MsgExcluded = "path is excluded"
	MsgIgnored  = "path is ignored"
)

// Config configures a Filter
type Config struct {
	Excludes         []string
	RespectGitignore bool
	// Root anchors gitignore matching; defaults to the working directory.
	Root string
}

// Filter implements feedline.Filter
type Filter struct {
	excludes []string
	ignore   *ignore.Matcher
}

// New validates the exclude patterns and, when requested, loads the ignore
// files under the root. It returns nil when no filtering is configured.
func New(cfg Config) (*Filter, error) {
	f := &Filter{}
	for _, pattern := range cfg.Excludes {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
		f.excludes = append(f.excludes, pattern)
	}

	if cfg.RespectGitignore {
		root := cfg.Root
		if root == "" {
			root = "."
		}
		m, err := ignore.NewMatcher(root)
		if err != nil {
			return nil, err
		}
		f.ignore = m
	}

	if len(f.excludes) == 0 && f.ignore == nil {
		return nil, nil
	}
	return f, nil
}

// Match reports whether path is withheld, with the message to report.
// Exclude patterns are tried against the path as given and against its
// base name, both slash-normalised.
func (f *Filter) Match(path string) (string, bool) {
	if f == nil {
		return "", false
	}
	slashed := filepath.ToSlash(filepath.Clean(path))
	base := filepath.ToSlash(filepath.Base(path))
	for _, pattern := range f.excludes {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return MsgExcluded, true
		}
		if !strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, base); ok {
				return MsgExcluded, true
			}
		}
	}

	if f.ignore != nil {
		isDir := false
		if info, err := os.Stat(path); err == nil {
			isDir = info.IsDir()
		}
		if f.ignore.IsIgnored(path, isDir) {
			return MsgIgnored, true
		}
	}

	return "", false
}

// Patterns returns the active exclude patterns
func (f *Filter) Patterns() []string {
	out := make([]string, len(f.excludes))
	copy(out, f.excludes)
	return out
}
