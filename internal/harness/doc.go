// Package harness renders chart enumerations into deterministic text
// snapshots and compares them against golden files.
//
// A snapshot preserves collection order - the externally observable
// path-discovery order of the search - and sorts keys only inside each
// record, where no key order is defined. Golden files live under
// testdata/ and regenerate with:
//
//	go test ./internal/harness -update
package harness
