// Package binding implements the record model and the relational algebra
// over search results.
//
// A Record is one name→value assignment produced by a completed search
// path. Records from all paths are gathered, in discovery order, into a
// Collection. The Collection supports a small relational algebra:
//
//   - Combine: non-commutative cross product (later operand's keys win)
//   - Fix:     soft constraint filter (a constraint must not be violated)
//   - Filter:  hard constraint filter (a constraint must exist and match)
//   - Fetch:   projection of one variable across all records
//
// All algebra operations are pure: they return new collections and never
// mutate their receiver. Collection order is the path-discovery order of
// the search and is preserved by every operation.
//
// Collections may also carry Scalar elements - opaque results that are
// not assignments (for example a full state trace). Scalars pass through
// Fix unchanged, are dropped by Filter with a non-empty constraint set,
// and are skipped by Fetch and Combine.
//
// Record keys are NFC-normalized at the collection boundary so that
// visually identical variable names always compare equal.
package binding
