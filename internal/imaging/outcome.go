package imaging

import "isorip/internal/disc"

// OutcomeKind tags how processing of one selected volume ended.
type OutcomeKind int

const (
	// OutcomeImaged means the imager ran to completion; Status holds its output.
	OutcomeImaged OutcomeKind = iota + 1
	// OutcomeUnmountFailed means imaging was skipped; Status holds the
	// unmount tool's error output.
	OutcomeUnmountFailed
	// OutcomeImagerFailed means the imager could not be started.
	OutcomeImagerFailed
	// OutcomeInterrupted means the run was cancelled while the imager was
	// working; Status holds what it printed before it stopped. The image is
	// incomplete but its rescue log can resume it.
	OutcomeInterrupted
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeImaged:
		return "imaged"
	case OutcomeUnmountFailed:
		return "unmount_failed"
	case OutcomeImagerFailed:
		return "imager_failed"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Outcome is the final record for one processed selection.
type Outcome struct {
	Volume disc.Volume
	Kind   OutcomeKind
	// Status is the text shown in the final report.
	Status    string
	ImagePath string
	LogPath   string
	// ExitCode is the imager's exit code when Kind is OutcomeImaged. It is
	// informational only.
	ExitCode int
}

// Report is the ordered list of outcomes for one run.
type Report []Outcome

// ByIndex maps each volume index to its status. When an index was selected
// more than once the last attempt wins.
func (r Report) ByIndex() map[int]string {
	out := make(map[int]string, len(r))
	for _, outcome := range r {
		out[outcome.Volume.Index] = outcome.Status
	}
	return out
}

// Count returns how many outcomes have the given kind.
func (r Report) Count(kind OutcomeKind) int {
	n := 0
	for _, outcome := range r {
		if outcome.Kind == kind {
			n++
		}
	}
	return n
}
