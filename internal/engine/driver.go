package engine

import (
	"fmt"
	"log/slog"
)

// Flow is a search entry point: a function that draws values from its
// chooser zero or more times and returns an outcome, or None to decline
// contributing one for the current path.
//
// A flow must propagate every error returned by Choose unchanged. Any
// error a flow returns for other reasons aborts the whole enumeration.
type Flow func(c *Chooser) (Outcome, error)

// Driver runs flows to exhaustion. The zero-argument constructor yields
// a driver logging at the default slog logger with UUIDv7 run tokens;
// both are configurable via options.
//
// A driver carries no per-search state - every Apply call owns a fresh
// backlog - so one driver may be shared and reused freely.
type Driver struct {
	logger *slog.Logger
	tokens TokenGenerator
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithLogger sets the slog logger used for search diagnostics.
func WithLogger(l *slog.Logger) DriverOption {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithTokens sets the run-token generator. Tests use FixedTokens for
// deterministic log output.
func WithTokens(g TokenGenerator) DriverOption {
	return func(d *Driver) {
		d.tokens = g
	}
}

// NewDriver creates a Driver.
func NewDriver(opts ...DriverOption) *Driver {
	d := &Driver{
		logger: slog.Default(),
		tokens: UUIDTokens{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Apply enumerates every terminating path of entry and returns the
// outcomes of the completed paths, in path-discovery order (depth-first,
// alternatives in reverse declared order; see the package comment).
//
// None outcomes are omitted. Replays that unwind at a fork are
// discarded silently - their successors are already queued. Any other
// error aborts the enumeration immediately and Apply returns it with no
// partial results.
//
// Apply does not terminate on a flow with an unbounded choice tree;
// bounding the tree is the flow author's responsibility.
func (d *Driver) Apply(entry Flow) ([]Outcome, error) {
	token := d.tokens.Generate()
	log := d.logger.With("run", token)

	bl := &backlog{}
	bl.push(Path{})

	var results []Outcome
	replays := 0
	forks := 0

	for {
		path, ok := bl.pop()
		if !ok {
			break
		}
		replays++

		c := &Chooser{path: path, backlog: bl}
		out, err := entry(c)
		if err != nil {
			if forked(err) {
				forks++
				log.Debug("replay forked",
					"prefix_len", len(path),
					"backlog", bl.size(),
				)
				continue
			}
			log.Error("flow failed, enumeration aborted",
				"error", err,
				"prefix_len", len(path),
				"replays", replays,
			)
			return nil, fmt.Errorf("apply: replay %d: %w", replays, err)
		}
		if out.IsNone() {
			continue
		}
		results = append(results, out)
	}

	log.Debug("search complete",
		"replays", replays,
		"forks", forks,
		"results", len(results),
	)
	return results, nil
}

// First runs entry once in one-shot sampling mode: every choice point
// yields the first element of its domain, nothing forks, and no backlog
// exists. It returns the single outcome of that one path.
//
// This is a distinct operation from Apply on purpose - it answers "what
// does the default path produce", not "what do all paths produce".
func (d *Driver) First(entry Flow) (Outcome, error) {
	c := &Chooser{single: true}
	out, err := entry(c)
	if err != nil {
		return None(), fmt.Errorf("first: %w", err)
	}
	return out, nil
}

// Apply runs an exhaustive search with a default driver. See
// Driver.Apply.
func Apply(entry Flow) ([]Outcome, error) {
	return NewDriver().Apply(entry)
}

// First runs a one-shot sample with a default driver. See Driver.First.
func First(entry Flow) (Outcome, error) {
	return NewDriver().First(entry)
}
