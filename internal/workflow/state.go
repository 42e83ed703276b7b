package workflow

// State is a step of a run.
type State int

const (
	StateInit State = iota
	StatePreconditionsChecked
	StateDiscovered
	StateSelected
	StateImaging
	StateEjected
	StateReported
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePreconditionsChecked:
		return "preconditions_checked"
	case StateDiscovered:
		return "discovered"
	case StateSelected:
		return "selected"
	case StateImaging:
		return "imaging"
	case StateEjected:
		return "ejected"
	case StateReported:
		return "reported"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}
