package binding

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Element is a sealed interface for collection elements.
// Only Record and Scalar implement it.
type Element interface {
	element() // Sealed - only types in this package implement it
}

// Record is one variable assignment: a map from variable name to value.
// Keys are unique; no ordering among keys is defined. Values must be
// equality-comparable (see Equal for the exact rules).
type Record map[string]any

func (Record) element() {}

// Scalar wraps an opaque non-record result as a collection element.
// Scalars carry no variable bindings and are invisible to Fetch.
type Scalar struct {
	Value any
}

func (Scalar) element() {}

// CanonicalKey returns the NFC-normalized form of a variable name.
// All record keys and constraint keys are normalized through this
// function at the collection boundary, so "é" composed and decomposed
// always address the same variable.
func CanonicalKey(name string) string {
	return norm.NFC.String(name)
}

// canonRecord returns a copy of r with all keys NFC-normalized.
// If no key changes under normalization the copy is still made - records
// entering a collection must never alias caller-owned maps.
func canonRecord(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[CanonicalKey(k)] = v
	}
	return out
}

// Equal reports whether two values are equal for the purposes of the
// algebra and the replay determinism check.
//
// Comparable dynamic types use ==. Non-comparable types (slices, maps,
// structs containing them) fall back to reflect.DeepEqual so that
// tuple-valued results such as solution triples still compare.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	tb := reflect.TypeOf(b)
	if ta.Comparable() && tb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// EqualRecords reports whether two records bind the same variables to
// equal values.
func EqualRecords(a, b Record) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

// String renders a record with sorted keys, for logs and golden files.
// The record order inside a collection is significant; the key order
// inside a record is not, so a deterministic rendering sorts keys.
func (r Record) String() string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", k, r[k])
	}
	sb.WriteByte('}')
	return sb.String()
}
