package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiber-space/exhaustive/internal/binding"
)

func TestExampleChart_Assignments(t *testing.T) {
	ch, err := ExampleChart()
	require.NoError(t, err)
	require.NoError(t, ch.Create())

	want := []binding.Record{
		{"y": 1, "x": 1, "z": 0},
		{"y": 0, "x": 1, "z": 1},
		{"y": 1, "x": 0},
		{"y": 0, "x": 0},
		{"b": 1, "z": 1},
		{"b": 0, "z": 0},
		{"a": 0, "x": 1, "p": 1},
		{"a": 1, "x": 0, "p": 1},
		{"x": 1, "p": 0},
		{"x": 0, "p": 0},
	}
	got := ch.Collection().Records()
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.True(t, binding.EqualRecords(w, got[i]),
			"record %d: want %v, got %v", i, w, got[i])
	}
}

func TestExampleChart_FixCommutesAsSet(t *testing.T) {
	ch, err := ExampleChart()
	require.NoError(t, err)
	require.NoError(t, ch.Create())

	s1 := ch.Fix(binding.Record{"x": 1}).Fix(binding.Record{"y": 0})
	s2 := ch.Fix(binding.Record{"y": 0}).Fix(binding.Record{"x": 1})
	s3 := ch.Fix(binding.Record{"x": 1, "y": 0})

	require.Equal(t, s1.Len(), s2.Len())
	require.Equal(t, s1.Len(), s3.Len())
	assert.True(t, s1.Collection().Equal(s2.Collection()))
	assert.True(t, s1.Collection().Equal(s3.Collection()))
}

func TestExampleChart_FilterRequiresKeys(t *testing.T) {
	ch, err := ExampleChart()
	require.NoError(t, err)
	require.NoError(t, ch.Create())

	constraints := binding.Record{"x": 1, "y": 0}
	filtered := ch.Filter(constraints)

	for _, r := range filtered.Collection().Records() {
		assert.Equal(t, 1, r["x"])
		assert.Equal(t, 0, r["y"])
	}
	// Only r1 binds both x and y; of its 4 records exactly one matches.
	assert.Equal(t, 1, filtered.Len())
}
