package engine

import (
	"fmt"

	"github.com/fiber-space/exhaustive/internal/binding"
)

// Chooser presents finite ordered domains of candidate values at the
// decision points of a flow. A chooser is bound to exactly one choice
// path and one backlog, and is consumed across exactly one replay; the
// driver constructs a fresh one per replay.
//
// Flows receive their chooser from the driver and must not retain it
// across replays.
type Chooser struct {
	path    Path
	cursor  int
	backlog *backlog

	// single selects the one-shot sampling mode used by First: every
	// domain yields its first element and nothing ever forks.
	single bool
}

// Choose presents a domain at this call site and returns the value the
// current replay assigns to it.
//
// While the chooser's path still holds recorded values, Choose returns
// the next one - failing with a DeterminismError if it is no longer a
// member of the offered domain. Once the path is exhausted, the call
// site is a fork point: one extended path per domain value is pushed to
// the backlog, in domain order, and Choose returns the unwind sentinel.
// On that branch control never re-enters the flow body; the flow must
// return the error to its caller unchanged.
//
// Forking over an empty domain pushes nothing: the path dies and the
// search continues with its siblings. Only in single mode is an empty
// domain an error, since sampling must hand back a value.
func (c *Chooser) Choose(domain ...any) (any, error) {
	if c.single {
		if len(domain) == 0 {
			return nil, ErrEmptyDomain
		}
		return domain[0], nil
	}
	if c.cursor < len(c.path) {
		recorded := c.path[c.cursor]
		pos := c.cursor
		c.cursor++
		if !member(domain, recorded) {
			return nil, &DeterminismError{Position: pos, Recorded: recorded, Domain: domain}
		}
		return recorded, nil
	}

	// Fork point: queue one successor path per candidate and unwind.
	// Zero candidates queue zero successors, which abandons this path.
	for _, v := range domain {
		c.backlog.push(c.path.extend(v))
	}
	return nil, errFork
}

// ChooseOf is a typed convenience wrapper around Choose.
//
//	x, err := engine.ChooseOf(c, 0, 1)
func ChooseOf[T comparable](c *Chooser, domain ...T) (T, error) {
	raw := make([]any, len(domain))
	for i, v := range domain {
		raw[i] = v
	}
	v, err := c.Choose(raw...)
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("choose: recorded value %v is a %T, not a %T", v, v, zero)
	}
	return t, nil
}

// member reports whether v is an element of domain.
func member(domain []any, v any) bool {
	for _, d := range domain {
		if binding.Equal(d, v) {
			return true
		}
	}
	return false
}
