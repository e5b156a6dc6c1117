package round

import "fmt"

// State is a position in the round lifecycle.
type State int

const (
	StateIdle State = iota
	StateCommitted
	StateAwaitingMove
	StateResolved
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateCommitted:
		return "COMMITTED"
	case StateAwaitingMove:
		return "AWAITING_MOVE"
	case StateResolved:
		return "RESOLVED"
	case StateTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal reports whether no further transition is possible from s.
func IsTerminal(s State) bool {
	return s == StateResolved || s == StateTerminated
}

func isAllowedTransition(from, to State) bool {
	switch from {
	case StateIdle:
		return to == StateCommitted
	case StateCommitted:
		return to == StateAwaitingMove
	case StateAwaitingMove:
		return to == StateResolved || to == StateTerminated
	default:
		return false
	}
}

// transition moves r from one state to the next. The expected prior state
// makes an out-of-order call observable instead of silently skipping a step.
func (r *Round) transition(from, to State) error {
	if IsTerminal(r.state) {
		return fmt.Errorf("round %s already finished in %s", r.id, r.state)
	}
	if r.state != from {
		return fmt.Errorf("invalid transition for round %s: expected %s, got %s", r.id, from, r.state)
	}
	if !isAllowedTransition(from, to) {
		return fmt.Errorf("disallowed transition for round %s: %s -> %s", r.id, from, to)
	}
	r.state = to
	return nil
}
