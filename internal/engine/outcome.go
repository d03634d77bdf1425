package engine

import "github.com/fiber-space/exhaustive/internal/binding"

// OutcomeKind distinguishes the shapes a completed path may produce.
type OutcomeKind int

const (
	// KindNone is the "no result" signal: the path declines to
	// contribute an outcome. This is a normal, non-error condition.
	KindNone OutcomeKind = iota

	// KindBindings is a single binding record.
	KindBindings

	// KindList is a list of binding records, flattened element-wise by
	// the aggregator.
	KindList

	// KindValue is an opaque scalar result that is not an assignment.
	KindValue
)

// Outcome is the tagged result of one completed path. Exactly one
// variant is populated, selected by Kind. Aggregation consumes outcomes
// by switching on the kind, never by sniffing value types.
//
// Only the None kind is ever dropped from results. Zero values, empty
// strings, and empty collections are legitimate outcomes and are kept.
type Outcome struct {
	kind    OutcomeKind
	record  binding.Record
	records []binding.Record
	value   any
}

// None returns the "no result" outcome.
func None() Outcome {
	return Outcome{kind: KindNone}
}

// Bindings returns an outcome carrying one binding record.
func Bindings(r binding.Record) Outcome {
	return Outcome{kind: KindBindings, record: r}
}

// List returns an outcome carrying several binding records.
func List(records ...binding.Record) Outcome {
	return Outcome{kind: KindList, records: records}
}

// Value returns an outcome carrying an opaque scalar result.
func Value(v any) Outcome {
	return Outcome{kind: KindValue, value: v}
}

// Kind returns the populated variant.
func (o Outcome) Kind() OutcomeKind { return o.kind }

// IsNone reports whether this is the "no result" signal.
func (o Outcome) IsNone() bool { return o.kind == KindNone }

// Record returns the binding record of a KindBindings outcome.
func (o Outcome) Record() binding.Record { return o.record }

// Records returns the record list of a KindList outcome.
func (o Outcome) Records() []binding.Record { return o.records }

// Value returns the scalar of a KindValue outcome.
func (o Outcome) Value() any { return o.value }
