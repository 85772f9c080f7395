package feedline

import (
	"errors"
	"fmt"
	"os"

	"github.com/fulmenhq/feedline/pkg/logger"
	"github.com/fulmenhq/feedline/pkg/safeio"
)

const newline byte = '\n'

// RepairOptions configures Repair
type RepairOptions struct {
	// Check reports a missing feedline as an Error instead of appending it.
	// Files are opened read-only in this mode.
	Check bool
}

// Repair ensures the regular file at path ends with a newline byte, appending
// exactly one when it is missing. Existing bytes are never rewritten.
//
// A failure part way through leaves the file in whatever state the failing
// call produced; nothing is rolled back.
func Repair(path string, info os.FileInfo, opts RepairOptions) Outcome {
	if info != nil && info.Size() == 0 {
		return newOutcome(path, Skip, ReasonEmpty, MsgEmpty)
	}

	appended, err := ensureFeedline(path, opts.Check)
	switch {
	case errors.Is(err, safeio.ErrEmpty):
		return newOutcome(path, Skip, ReasonEmpty, MsgEmpty)
	case err != nil:
		logger.Debug("feedline check failed", logger.String("path", path), logger.Err(err))
		o := newOutcome(path, Error, ReasonIOFailure, MsgIOFailure)
		o.Err = err
		return o
	}

	if !appended {
		return newOutcome(path, Skip, ReasonAlreadyTerminated, MsgAlreadyTerminated)
	}
	if opts.Check {
		return newOutcome(path, Error, ReasonMissingFeedline, MsgMissingFeedline)
	}
	return newOutcome(path, Success, ReasonAppended, "")
}

// ensureFeedline reports whether the file lacked a trailing newline. Unless
// checkOnly is set, the missing newline is appended through the same handle.
func ensureFeedline(path string, checkOnly bool) (missing bool, err error) {
	flag := os.O_RDWR
	if checkOnly {
		flag = os.O_RDONLY
	}

	f, err := os.OpenFile(path, flag, 0) // #nosec G304 -- paths are supplied by the caller to be repaired
	if err != nil {
		return false, fmt.Errorf("open: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	last, err := safeio.TailByte(f)
	if err != nil {
		return false, err
	}
	if last == newline {
		return false, nil
	}
	if checkOnly {
		return true, nil
	}

	if err := safeio.AppendByte(f, newline); err != nil {
		return false, err
	}
	return true, nil
}
