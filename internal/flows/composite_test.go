package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiber-space/exhaustive/internal/chart"
)

func TestComposite_CrossProductOfSubSearches(t *testing.T) {
	ch := chart.New()
	require.NoError(t, ch.Register("h", Composite(ch)))
	require.NoError(t, ch.Create())

	records := ch.Collection().Records()
	require.Len(t, records, 16, "4 × 4 combined assignments")
	for i, r := range records {
		assert.Len(t, r, 4, "record %d should bind x, y, a and b", i)
	}
}
