package feedline

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEndScenario(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")
	empty := writeFixture(t, dir, "empty.txt", "")
	noNewline := writeFixture(t, dir, "nonewline.txt", "x")
	hasNewline := writeFixture(t, dir, "hasnewline.txt", "x\n")

	outcomes := Run([]string{missing, empty, noNewline, hasNewline}, Options{Jobs: 1})

	require.Len(t, outcomes, 4)
	assert.Equal(t, []string{missing, empty, noNewline, hasNewline}, paths(outcomes))
	assert.Equal(t, []Status{Error, Skip, Success, Skip}, statuses(outcomes))
	assert.Equal(t, MsgNotFound, outcomes[0].Message)
	assert.Equal(t, MsgEmpty, outcomes[1].Message)
	assert.Empty(t, outcomes[2].Message)
	assert.Equal(t, MsgAlreadyTerminated, outcomes[3].Message)

	assert.Equal(t, "", readFixture(t, empty))
	assert.Equal(t, "x\n", readFixture(t, noNewline))
	assert.Equal(t, "x\n", readFixture(t, hasNewline))
	assert.True(t, HasErrors(outcomes))
}

func TestRun_EmptyInput(t *testing.T) {
	outcomes := Run(nil, Options{})
	assert.Empty(t, outcomes)
	assert.False(t, HasErrors(outcomes))
}

func TestRun_ErrorDoesNotAbortBatch(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "absent-1")
	fixable := writeFixture(t, dir, "fixable.txt", "data")
	second := filepath.Join(dir, "absent-2")

	outcomes := Run([]string{first, fixable, second}, Options{Jobs: 1})

	assert.Equal(t, []Status{Error, Success, Error}, statuses(outcomes))
	assert.Equal(t, "data\n", readFixture(t, fixable))
}

func TestRun_DuplicatesReportedPerOccurrence(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "dup.txt", "x")

	outcomes := Run([]string{path, path}, Options{Jobs: 1})

	require.Len(t, outcomes, 2)
	assert.Equal(t, Success, outcomes[0].Status)
	assert.Equal(t, Skip, outcomes[1].Status)
	assert.Equal(t, "x\n", readFixture(t, path))
}

// mixedFixtures builds n paths cycling through every disposition. Each file
// appears once so parallel evaluation never touches the same path twice.
func mixedFixtures(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("item-%03d", i)
		switch i % 6 {
		case 0:
			paths = append(paths, writeFixture(t, dir, name, "no newline"))
		case 1:
			paths = append(paths, writeFixture(t, dir, name, "newline\n"))
		case 2:
			paths = append(paths, writeFixture(t, dir, name, ""))
		case 3:
			sub := filepath.Join(dir, name)
			require.NoError(t, os.Mkdir(sub, 0o755))
			paths = append(paths, sub)
		case 4:
			target := writeFixture(t, dir, name+".target", "t")
			link := filepath.Join(dir, name)
			require.NoError(t, os.Symlink(target, link))
			paths = append(paths, link)
		case 5:
			paths = append(paths, filepath.Join(dir, name+".missing"))
		}
	}
	return paths
}

func TestRun_SequentialAndParallelAgree(t *testing.T) {
	const n = 60

	sequentialPaths := mixedFixtures(t, n)
	parallelPaths := mixedFixtures(t, n)

	sequential := Run(sequentialPaths, Options{Jobs: 1})
	parallel := Run(parallelPaths, Options{Jobs: 8})

	require.Len(t, sequential, n)
	require.Len(t, parallel, n)

	// Input order is preserved even when workers finish out of order.
	assert.Equal(t, parallelPaths, paths(parallel))

	assert.Equal(t, statuses(sequential), statuses(parallel))
	assert.Equal(t, Summarize(sequential), Summarize(parallel))

	for i := range sequential {
		assert.Equal(t, sequential[i].Reason, parallel[i].Reason)
		assert.Equal(t, sequential[i].Message, parallel[i].Message)
	}

	for i, p := range parallelPaths {
		if i%6 == 0 {
			assert.Equal(t, "no newline\n", readFixture(t, p))
		}
	}
}

func TestRun_SortedOutcomesMatchAcrossModes(t *testing.T) {
	sequential := Run(mixedFixtures(t, 24), Options{Jobs: 1})
	parallel := Run(mixedFixtures(t, 24), Options{Jobs: 0})

	Sort(sequential)
	Sort(parallel)

	assert.Equal(t, statuses(sequential), statuses(parallel))
}

type prefixFilter string

func (p prefixFilter) Match(path string) (string, bool) {
	if strings.HasPrefix(filepath.Base(path), string(p)) {
		return "path is excluded", true
	}
	return "", false
}

func TestRun_FilterWithholdsPaths(t *testing.T) {
	dir := t.TempDir()
	kept := writeFixture(t, dir, "kept.txt", "x")
	skipped := writeFixture(t, dir, "vendor.txt", "x")
	missing := filepath.Join(dir, "vendor-missing.txt")

	outcomes := Run([]string{kept, skipped, missing}, Options{Jobs: 1, Filter: prefixFilter("vendor")})

	assert.Equal(t, []Status{Success, Skip, Skip}, statuses(outcomes))
	assert.Equal(t, ReasonExcluded, outcomes[1].Reason)
	assert.Equal(t, "path is excluded", outcomes[1].Message)
	assert.Equal(t, "x", readFixture(t, skipped))
}

func TestRun_CheckMode(t *testing.T) {
	dir := t.TempDir()
	fixable := writeFixture(t, dir, "a.txt", "x")
	fine := writeFixture(t, dir, "b.txt", "x\n")

	outcomes := Run([]string{fixable, fine}, Options{Jobs: 2, Check: true})

	assert.Equal(t, []Status{Error, Skip}, statuses(outcomes))
	assert.Equal(t, "x", readFixture(t, fixable))
}

func TestOptionsWorkers(t *testing.T) {
	tests := []struct {
		name     string
		jobs     int
		n        int
		expected int
	}{
		{name: "sequential", jobs: 1, n: 10, expected: 1},
		{name: "negative is sequential", jobs: -3, n: 10, expected: 1},
		{name: "bounded by path count", jobs: 8, n: 3, expected: 3},
		{name: "explicit", jobs: 4, n: 100, expected: 4},
		{name: "zero uses cpu count", jobs: 0, n: 10000, expected: runtime.NumCPU()},
		{name: "no paths", jobs: 4, n: 0, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Options{Jobs: tt.jobs}.Workers(tt.n))
		})
	}
}
