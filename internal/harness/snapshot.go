package harness

import (
	"fmt"
	"strings"

	"github.com/fiber-space/exhaustive/internal/binding"
)

// Snapshot is the deterministic text form of one enumeration result.
type Snapshot struct {
	// Name identifies the search the collection came from.
	Name string

	// Tokens holds the run tokens behind the collection, one per flow
	// run, in run order.
	Tokens []string

	// Lines holds one rendered element per collection element, in
	// collection order.
	Lines []string
}

// Take renders a collection into a snapshot. Records render with sorted
// keys; scalar elements render with their own String method when they
// have one.
func Take(name string, coll *binding.Collection, tokens ...string) *Snapshot {
	s := &Snapshot{Name: name, Tokens: tokens}
	for _, e := range coll.Elements() {
		switch el := e.(type) {
		case binding.Record:
			s.Lines = append(s.Lines, el.String())
		case binding.Scalar:
			s.Lines = append(s.Lines, fmt.Sprintf("%v", el.Value))
		}
	}
	return s
}

// Bytes serializes the snapshot for golden-file comparison.
func (s *Snapshot) Bytes() []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "search: %s\n", s.Name)
	if len(s.Tokens) > 0 {
		fmt.Fprintf(&sb, "runs: %s\n", strings.Join(s.Tokens, ", "))
	}
	fmt.Fprintf(&sb, "elements: %d\n", len(s.Lines))
	for _, line := range s.Lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
