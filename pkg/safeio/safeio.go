// Package safeio holds small I/O primitives shared by feedline packages.
package safeio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrEmpty is returned by TailByte when the stream has no bytes.
var ErrEmpty = errors.New("stream is empty")

// TailByte seeks r to its final byte and reads exactly that byte.
// After a successful call the offset of r is at end-of-stream, so a
// subsequent write on the same handle appends.
func TailByte(r io.ReadSeeker) (byte, error) {
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("seek end: %w", err)
	}
	if end == 0 {
		return 0, ErrEmpty
	}
	if _, err := r.Seek(-1, io.SeekEnd); err != nil {
		return 0, fmt.Errorf("seek last byte: %w", err)
	}
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("read last byte: %w", err)
	}
	return buf[0], nil
}

// AppendByte writes b at the current offset of w and fails on short writes.
func AppendByte(w io.Writer, b byte) error {
	n, err := w.Write([]byte{b})
	if err != nil {
		return fmt.Errorf("append byte: %w", err)
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}

// ReadFileClean reads a user-supplied path after cleaning it.
func ReadFileClean(path string) ([]byte, error) {
	cleaned := filepath.Clean(path)
	return os.ReadFile(cleaned) // #nosec G304 -- path cleaned; config files are user-selected by design
}
