// Package chart registers search flows and aggregates their results.
//
// A Chart holds an explicit, ordered list of entry flows. Create runs
// every registered flow to exhaustion and merges the outcomes, in
// registration order, into one binding collection. Differing outcome
// shapes are normalized during aggregation: record lists are flattened
// element-wise, single records are appended when non-empty, and opaque
// scalar results enter the collection as scalar elements.
//
// Fix, Filter and Fetch delegate to the underlying collection; Fix and
// Filter return a derived chart so constraint applications chain:
//
//	ch.Fix(binding.Record{"x": 1}).Filter(binding.Record{"y": 0}).Fetch("z")
//
// Execute wraps a single flow in an ephemeral chart and returns its
// collection directly. It exists to compose independent sub-searches,
// typically via Collection.Combine.
package chart
