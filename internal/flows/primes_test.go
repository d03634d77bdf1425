package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiber-space/exhaustive/internal/chart"
)

func TestPrimes_Below100(t *testing.T) {
	ch := chart.New()
	require.NoError(t, ch.Register("primes", Primes(100)))
	require.NoError(t, ch.Create())

	want := []any{97, 89, 83, 79, 73, 71, 67, 61, 59, 53, 47, 43, 41, 37, 31,
		29, 23, 19, 17, 13, 11, 7, 5, 3, 2}
	assert.Equal(t, want, ch.Fetch("prime"), "descending because the search visits domains in reverse")
}

func TestPrimes_Below50(t *testing.T) {
	ch := chart.New()
	require.NoError(t, ch.Register("primes", Primes(50)))
	require.NoError(t, ch.Create())

	got := ch.Fetch("prime")
	want := []any{47, 43, 41, 37, 31, 29, 23, 19, 17, 13, 11, 7, 5, 3, 2}
	assert.Equal(t, want, got)
	assert.NotContains(t, got, 49, "7*7 is composite")
}

func TestAlgebraicCSP_Solutions(t *testing.T) {
	ch := chart.New()
	require.NoError(t, ch.Register("equation", AlgebraicCSP(30)))
	require.NoError(t, ch.Create())

	want := []any{
		[3]int{9, 9, 9},
		[3]int{8, 8, 16},
		[3]int{6, 12, 18},
		[3]int{5, 20, 25},
	}
	assert.Equal(t, want, ch.Fetch("solution"))
}

func TestIntRange(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, intRange(2, 5))
	assert.Nil(t, intRange(5, 5))
	assert.Nil(t, intRange(5, 2))
}
