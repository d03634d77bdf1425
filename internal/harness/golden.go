package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/fiber-space/exhaustive/internal/chart"
)

// AssertGolden snapshots a chart's collection, with the tokens of the
// runs that produced it, and compares against testdata/<name>.golden.
// Run with -update to regenerate.
func AssertGolden(t *testing.T, name string, ch *chart.Chart) {
	t.Helper()

	g := goldie.New(t)
	g.Assert(t, name, Take(name, ch.Collection(), ch.RunTokens()...).Bytes())
}
