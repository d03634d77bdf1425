// Package flows holds the sample searches shipped with the engine.
//
// These are consumers of the engine, not part of it: each is an
// ordinary engine.Flow demonstrating one usage pattern - branch-
// dependent bindings, permutation search over a shrinking pool, search
// with rejection (primes, algebraic constraints), composition of
// independent sub-searches, and bounded enumeration of a finite-state
// machine whose transition table loads from YAML.
//
// The CLI and the golden tests both run these flows.
package flows
