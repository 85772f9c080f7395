package feedline

import (
	"sort"
)

// Reason identifies why a path ended with its status.
type Reason string

const (
	ReasonAppended          Reason = "appended"
	ReasonNotFound          Reason = "not_found"
	ReasonDirectory         Reason = "directory"
	ReasonSymlink           Reason = "symlink"
	ReasonNotAFile          Reason = "not_a_file"
	ReasonEmpty             Reason = "empty"
	ReasonAlreadyTerminated Reason = "already_terminated"
	ReasonIOFailure         Reason = "io_failure"
	ReasonExcluded          Reason = "excluded"
	ReasonMissingFeedline   Reason = "missing_feedline"
)

// Messages reported for each reason.
const (
	MsgNotFound          = "path does not exist"
	MsgDirectory         = "path is a directory"
	MsgSymlink           = "path is a symlink"
	MsgNotAFile          = "path is not a file"
	MsgEmpty             = "file is empty"
	MsgAlreadyTerminated = "file already has a feedline"
	MsgIOFailure         = "failed checking feedline"
	MsgMissingFeedline   = "file is missing a feedline"
)

// Outcome is the result of evaluating one input path. It is created once and
// never modified afterwards.
type Outcome struct {
	Path    string `json:"path" yaml:"path"`
	Status  Status `json:"status" yaml:"status"`
	Reason  Reason `json:"reason" yaml:"reason"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Err holds the underlying failure for io_failure outcomes.
	Err error `json:"-" yaml:"-"`
}

func newOutcome(path string, status Status, reason Reason, message string) Outcome {
	return Outcome{Path: path, Status: status, Reason: reason, Message: message}
}

// Less reports whether o sorts before other: by status rank, then by path.
func (o Outcome) Less(other Outcome) bool {
	if o.Status.Rank() != other.Status.Rank() {
		return o.Status.Rank() < other.Status.Rank()
	}
	return o.Path < other.Path
}

// Sort orders outcomes in place by status rank, breaking ties by path.
// Equal elements keep their input order.
func Sort(outcomes []Outcome) {
	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].Less(outcomes[j])
	})
}

// HasErrors reports whether any outcome has status Error
func HasErrors(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Status == Error {
			return true
		}
	}
	return false
}

// Summary counts outcomes per status
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Success int `json:"success" yaml:"success"`
	Skip    int `json:"skip" yaml:"skip"`
	Warn    int `json:"warn" yaml:"warn"`
	Error   int `json:"error" yaml:"error"`
}

// Summarize tallies outcomes by status
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch o.Status {
		case Success:
			s.Success++
		case Skip:
			s.Skip++
		case Warn:
			s.Warn++
		case Error:
			s.Error++
		}
	}
	return s
}

// Count returns the number of outcomes with the given status
func (s Summary) Count(status Status) int {
	switch status {
	case Success:
		return s.Success
	case Skip:
		return s.Skip
	case Warn:
		return s.Warn
	case Error:
		return s.Error
	default:
		return 0
	}
}
