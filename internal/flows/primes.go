package flows

import (
	"github.com/fiber-space/exhaustive/internal/binding"
	"github.com/fiber-space/exhaustive/internal/engine"
)

// Primes returns a flow that chooses a candidate p in [2, max) and
// rejects composites by trial division. Completed paths bind "prime";
// composite paths contribute an empty record, which the aggregator
// drops. Because the search visits domain values in reverse order, the
// primes come out descending.
func Primes(max int) engine.Flow {
	return func(c *engine.Chooser) (engine.Outcome, error) {
		p, err := engine.ChooseOf(c, intRange(2, max)...)
		if err != nil {
			return engine.None(), err
		}
		for d := 2; d*d <= p; d++ {
			if p%d == 0 {
				return engine.Bindings(binding.Record{}), nil
			}
		}
		return engine.Bindings(binding.Record{"prime": p}), nil
	}
}

// AlgebraicCSP returns a flow searching a, b, c in [1, n] with a≤b≤c
// for solutions of (a+b+c)² = a·b·c. Non-solutions decline a result.
func AlgebraicCSP(n int) engine.Flow {
	domain := intRange(1, n+1)
	return func(c *engine.Chooser) (engine.Outcome, error) {
		a, err := engine.ChooseOf(c, domain...)
		if err != nil {
			return engine.None(), err
		}
		b, err := engine.ChooseOf(c, domain...)
		if err != nil {
			return engine.None(), err
		}
		cc, err := engine.ChooseOf(c, domain...)
		if err != nil {
			return engine.None(), err
		}

		s := a + b + cc
		if a <= b && b <= cc && s*s == a*b*cc {
			return engine.Bindings(binding.Record{"solution": [3]int{a, b, cc}}), nil
		}
		return engine.None(), nil
	}
}

// intRange returns lo, lo+1, ..., hi-1.
func intRange(lo, hi int) []int {
	if hi <= lo {
		return nil
	}
	out := make([]int, 0, hi-lo)
	for v := lo; v < hi; v++ {
		out = append(out, v)
	}
	return out
}
