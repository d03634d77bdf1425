// Package engine implements the deterministic-replay exhaustive search.
//
// A flow is an ordinary function that, instead of branching on external
// input, draws values from finite ordered domains via Chooser.Choose.
// The driver discovers every terminating execution path of a flow by
// re-running it from scratch, each run replaying one recorded prefix of
// choices and forking the search when the prefix runs out.
//
// REPLAY PROTOCOL:
//
//  1. The backlog is seeded with the empty choice path.
//  2. The driver pops the most recently pushed path (LIFO) and runs the
//     flow with a fresh Chooser bound to that path.
//  3. Choose replays recorded values until the path is exhausted. The
//     first unrecorded choice point is a fork: one extended path per
//     domain value is pushed, in domain order, and the replay unwinds.
//     An empty domain pushes nothing, so the path dies and its
//     siblings carry on.
//  4. A replay that completes contributes its outcome; a replay that
//     unwinds is discarded (its successors are already queued).
//  5. The search ends when the backlog is empty.
//
// Because the backlog is LIFO and forks push children in domain order,
// the search is depth-first with each branch point visiting its
// alternatives in reverse declared order. This ordering is part of the
// contract and is externally observable.
//
// The unwind is a sentinel error threaded through ordinary error
// returns, not a panic. A flow must propagate every error it receives
// from Choose; the sentinel is unexported, so user code cannot match it
// and accidentally resume a forked replay.
//
// CONCURRENCY:
//
// The search is strictly sequential. Each Apply call owns a private
// backlog with exactly one reader and one writer - the replay loop
// itself - so no locking is required or present. A fork's pushes are
// visible before the driver's next pop because both happen on the same
// goroutine.
package engine
