package engine

// Path is an ordered sequence of previously recorded choices - one
// value per decision point already resolved. A path of length k defines
// the execution prefix that replays the first k choice points of a
// flow. Values must be equality-comparable (see binding.Equal).
type Path []any

// extend returns a new path equal to p with v appended.
// The backing array is never shared with p: sibling paths forked from
// the same prefix must not alias each other.
func (p Path) extend(v any) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, v)
}

// backlog is the LIFO collection of unexplored choice-path prefixes.
//
// Each Apply invocation owns exactly one backlog, read and written only
// from the replay loop's goroutine, so there is no lock: pushes happen
// inside a replay, pops happen between replays, and both run on the
// same goroutine.
type backlog struct {
	paths []Path
}

// push adds a path to the top of the backlog.
func (b *backlog) push(p Path) {
	b.paths = append(b.paths, p)
}

// pop removes and returns the most recently pushed path.
func (b *backlog) pop() (Path, bool) {
	if len(b.paths) == 0 {
		return nil, false
	}
	last := len(b.paths) - 1
	p := b.paths[last]
	b.paths[last] = nil
	b.paths = b.paths[:last]
	return p, true
}

// size returns the number of unexplored paths.
func (b *backlog) size() int {
	return len(b.paths)
}
