/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package feedline

import (
	"fmt"
	"strings"
)

// Status is the disposition of a single evaluated path.
type Status int

const (
	Success Status = iota // feedline appended
	Skip                  // nothing to do, or a benign non-file
	Warn                  // processed but notable
	Error                 // missing, wrong type, or I/O failure
)

// Statuses lists every status in rank order.
var Statuses = []Status{Success, Skip, Warn, Error}

// String returns the lowercase name of the status
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Skip:
		return "skip"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Rank returns the position of s in the total order used for sorting:
// Success < Skip < Warn < Error.
func (s Status) Rank() int {
	switch s {
	case Success:
		return 0
	case Skip:
		return 1
	case Warn:
		return 2
	case Error:
		return 3
	default:
		return 4
	}
}

// ParseStatus converts a status name (case-insensitive) to a Status
func ParseStatus(name string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "success":
		return Success, nil
	case "skip":
		return Skip, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return 0, fmt.Errorf("unknown status: %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
