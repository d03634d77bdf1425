package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyDomain is returned by Choose in single mode when the domain
// is empty: sampling must hand back a value and there is none. During
// enumeration an empty domain is not an error; the fork queues no
// successors and the path dies.
var ErrEmptyDomain = errors.New("choose: empty domain")

// errFork is the unwind signal for the fork branch of Choose.
//
// It is deliberately unexported: flows must propagate it like any other
// error, and only the driver may recognize and swallow it. User code
// that could match the sentinel could also resume a forked replay,
// which corrupts the search.
var errFork = errors.New("choice path exhausted: replay forked")

// forked reports whether err is (or wraps) the fork sentinel.
func forked(err error) bool {
	return errors.Is(err, errFork)
}

// DeterminismError reports a replay that diverged from its own choice
// history: the value recorded at some position is not a member of the
// domain offered at that call site during replay.
//
// This is a programming error in the flow - its choice domains must be
// a pure function of the choice prefix and nothing else. The error is
// fatal and aborts the whole enumeration with no partial results.
type DeterminismError struct {
	// Position is the zero-based index of the diverging choice point.
	Position int

	// Recorded is the value replayed from the choice path.
	Recorded any

	// Domain is the domain offered at the call site during replay.
	Domain []any
}

// Error implements the error interface.
func (e *DeterminismError) Error() string {
	return fmt.Sprintf("flow is not deterministic: recorded value %v at choice %d is not in the offered domain %v",
		e.Recorded, e.Position, e.Domain)
}

// IsDeterminism reports whether err is (or wraps) a DeterminismError.
func IsDeterminism(err error) bool {
	var de *DeterminismError
	return errors.As(err, &de)
}
