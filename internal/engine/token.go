package engine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// TokenGenerator produces run tokens that correlate the log lines of
// one search. Implemented by UUIDTokens (production) and FixedTokens
// (tests).
type TokenGenerator interface {
	Generate() string
}

// UUIDTokens generates time-sortable UUIDv7 run tokens, so tokens sort
// by search start time in aggregated logs.
//
// Thread-safety: stateless, safe for concurrent use.
type UUIDTokens struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails, which does not happen in practice.
func (UUIDTokens) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedTokens returns predetermined run tokens, enabling deterministic
// log output and golden-file comparison in tests.
type FixedTokens struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewFixedTokens creates a generator that returns tokens in order and
// panics when exhausted - a test asking for more searches than it
// provisioned tokens for is a test bug.
func NewFixedTokens(tokens ...string) *FixedTokens {
	return &FixedTokens{tokens: tokens}
}

// Generate returns the next predetermined token.
func (g *FixedTokens) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.tokens) {
		panic(fmt.Sprintf("FixedTokens: all %d tokens consumed", len(g.tokens)))
	}
	t := g.tokens[g.idx]
	g.idx++
	return t
}
