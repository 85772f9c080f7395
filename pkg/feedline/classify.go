package feedline

import (
	"os"
)

// Classify inspects the metadata of path and decides whether it can be
// repaired. When eligible is false the returned outcome is final; when it is
// true the FileInfo describes the regular file to hand to Repair.
//
// Checks run in a fixed order and the first match wins: missing, directory,
// symlink, non-regular. Existence and the directory check follow links, so a
// dangling link does not exist and a link to a directory is a directory.
func Classify(path string) (outcome Outcome, info os.FileInfo, eligible bool) {
	target, err := os.Stat(path)
	if err != nil {
		return newOutcome(path, Error, ReasonNotFound, MsgNotFound), nil, false
	}

	if target.IsDir() {
		return newOutcome(path, Skip, ReasonDirectory, MsgDirectory), nil, false
	}

	link, err := os.Lstat(path)
	if err != nil {
		// Removed between the two lookups.
		return newOutcome(path, Error, ReasonNotFound, MsgNotFound), nil, false
	}
	if link.Mode()&os.ModeSymlink != 0 {
		return newOutcome(path, Warn, ReasonSymlink, MsgSymlink), nil, false
	}

	if !target.Mode().IsRegular() {
		return newOutcome(path, Error, ReasonNotAFile, MsgNotAFile), nil, false
	}

	return Outcome{}, target, true
}
