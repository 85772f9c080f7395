// Package ignore provides gitignore-based path matching using go-git
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	gitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/fulmenhq/feedline/pkg/safeio"
)

// IgnoreFile is the feedline-specific ignore file read from the root.
const IgnoreFile = ".feedlineignore"

// Matcher answers whether a path is ignored relative to a root directory
type Matcher struct {
	root    string
	matcher gitignore.Matcher
}

// NewMatcher creates a matcher for root with layered patterns:
// 1. built-in defaults (.git/**)
// 2. .gitignore files under root and .git/info/exclude
// 3. .feedlineignore at root
func NewMatcher(root string) (*Matcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ignore root: %w", err)
	}

	var patterns []gitignore.Pattern
	patterns = append(patterns, gitignore.ParsePattern(".git/**", nil))

	fs := osfs.New(absRoot)
	if gitPatterns, err := gitignore.ReadPatterns(fs, nil); err == nil {
		patterns = append(patterns, gitPatterns...)
	}

	if lines, err := readIgnoreFile(filepath.Join(absRoot, IgnoreFile)); err == nil {
		for _, line := range lines {
			patterns = append(patterns, gitignore.ParsePattern(line, nil))
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", IgnoreFile, err)
	}

	return &Matcher{
		root:    absRoot,
		matcher: gitignore.NewMatcher(patterns),
	}, nil
}

// readIgnoreFile returns the non-blank, non-comment lines of path
func readIgnoreFile(path string) ([]string, error) {
	content, err := safeio.ReadFileClean(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// IsIgnored reports whether path matches the ignore patterns. Paths outside
// the root are never ignored. isDir selects directory-only pattern semantics.
func (m *Matcher) IsIgnored(path string, isDir bool) bool {
	parts := m.relParts(path)
	if len(parts) == 0 {
		return false
	}
	return m.matcher.Match(parts, isDir)
}

// relParts splits path, relative to the root, into components for go-git.
func (m *Matcher) relParts(path string) []string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}
	rel, err := filepath.Rel(m.root, abs)
	if err != nil {
		return nil
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return nil
	}
	return splitPath(rel)
}

// splitPath converts a slash-separated path into components for go-git matching
func splitPath(path string) []string {
	if path == "" || path == "." {
		return []string{}
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" && part != "." {
			result = append(result, part)
		}
	}
	return result
}
