package flows

import (
	"github.com/fiber-space/exhaustive/internal/binding"
	"github.com/fiber-space/exhaustive/internal/engine"
)

// Preferences builds every {X, Y, Z} assignment drawn from three value
// pools at pairwise-distinct indices - a permutation search. The index
// pool shrinks after each choice, so only 3! = 6 paths complete.
//
// Mutating the pool between choices is safe: each replay re-executes
// the flow from scratch with its own pool, and the domain offered at a
// choice point depends only on the choices made before it.
func Preferences(c *engine.Chooser) (engine.Outcome, error) {
	poolX := []int{2, 5, 6}
	poolY := []int{3, 6, 5}
	poolZ := []int{4, 6, 6}

	free := []int{0, 1, 2}
	var index []int
	for k := 0; k < 3; k++ {
		i, err := engine.ChooseOf(c, free...)
		if err != nil {
			return engine.None(), err
		}
		free = removeValue(free, i)
		index = append(index, i)
	}

	return engine.Bindings(binding.Record{
		"X": poolX[index[0]],
		"Y": poolY[index[1]],
		"Z": poolZ[index[2]],
	}), nil
}

// removeValue returns a copy of s without the first occurrence of v.
func removeValue(s []int, v int) []int {
	out := make([]int, 0, len(s))
	removed := false
	for _, x := range s {
		if !removed && x == v {
			removed = true
			continue
		}
		out = append(out, x)
	}
	return out
}
