package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiber-space/exhaustive/internal/binding"
	"github.com/fiber-space/exhaustive/internal/engine"
)

func bindingsFlow(r binding.Record) engine.Flow {
	return func(c *engine.Chooser) (engine.Outcome, error) {
		return engine.Bindings(r), nil
	}
}

func TestChart_Register_RejectsDuplicatesAndNil(t *testing.T) {
	ch := New()
	require.NoError(t, ch.Register("f", bindingsFlow(binding.Record{"a": 1})))

	err := ch.Register("f", bindingsFlow(binding.Record{"b": 2}))
	assert.Error(t, err)

	assert.Error(t, ch.Register("", bindingsFlow(nil)))
	assert.Error(t, ch.Register("g", nil))
}

func TestChart_Create_AggregatesInRegistrationOrder(t *testing.T) {
	ch := New()
	require.NoError(t, ch.Register("first", bindingsFlow(binding.Record{"n": 1})))
	require.NoError(t, ch.Register("second", bindingsFlow(binding.Record{"n": 2})))
	require.NoError(t, ch.Create())

	assert.Equal(t, []any{1, 2}, ch.Fetch("n"))
}

func TestChart_RunTokens_OnePerFlowInOrder(t *testing.T) {
	ch := New(WithTokens(engine.NewFixedTokens("t1", "t2", "t3", "t4")))
	require.NoError(t, ch.Register("first", bindingsFlow(binding.Record{"n": 1})))
	require.NoError(t, ch.Register("second", bindingsFlow(binding.Record{"n": 2})))

	assert.Empty(t, ch.RunTokens())

	require.NoError(t, ch.Create())
	assert.Equal(t, []string{"t1", "t2"}, ch.RunTokens())

	// Re-creating resets; only the latest runs are reported.
	require.NoError(t, ch.Create())
	assert.Equal(t, []string{"t3", "t4"}, ch.RunTokens())
}

func TestChart_Create_NormalizesOutcomeShapes(t *testing.T) {
	ch := New()

	// List outcomes flatten element-wise.
	require.NoError(t, ch.Register("list", func(c *engine.Chooser) (engine.Outcome, error) {
		return engine.List(binding.Record{"n": 1}, binding.Record{"n": 2}), nil
	}))
	// Empty records vanish.
	require.NoError(t, ch.Register("empty", bindingsFlow(binding.Record{})))
	// Scalars enter as scalar elements.
	require.NoError(t, ch.Register("scalar", func(c *engine.Chooser) (engine.Outcome, error) {
		return engine.Value("trace"), nil
	}))

	require.NoError(t, ch.Create())
	require.Equal(t, 3, ch.Len())

	elems := ch.Collection().Elements()
	assert.IsType(t, binding.Record{}, elems[0])
	assert.IsType(t, binding.Record{}, elems[1])
	assert.Equal(t, binding.Scalar{Value: "trace"}, elems[2])
}

func TestChart_Create_StripsReservedKeys(t *testing.T) {
	ch := New(WithReservedKeys("chooser"))
	require.NoError(t, ch.Register("f", bindingsFlow(binding.Record{"chooser": "leak", "x": 1})))
	require.NoError(t, ch.Register("only-reserved", bindingsFlow(binding.Record{"chooser": "leak"})))
	require.NoError(t, ch.Create())

	require.Equal(t, 1, ch.Len(), "record left empty after stripping is dropped")
	assert.Equal(t, []any{1}, ch.Fetch("x"))
	assert.Empty(t, ch.Fetch("chooser"))
}

func TestChart_Create_FailingFlowKeepsPreviousCollection(t *testing.T) {
	ch := New()
	require.NoError(t, ch.Register("ok", bindingsFlow(binding.Record{"x": 1})))
	require.NoError(t, ch.Create())
	require.Equal(t, 1, ch.Len())

	boom := errors.New("boom")
	require.NoError(t, ch.Register("bad", func(c *engine.Chooser) (engine.Outcome, error) {
		return engine.None(), boom
	}))

	err := ch.Create()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ch.Len(), "failed create leaves the old collection")
}

func TestChart_Execute_RunsEphemeralSubSearch(t *testing.T) {
	ch := New()

	coll, err := ch.Execute(func(c *engine.Chooser) (engine.Outcome, error) {
		x, err := engine.ChooseOf(c, 0, 1)
		if err != nil {
			return engine.None(), err
		}
		return engine.Bindings(binding.Record{"x": x}), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 0}, coll.Fetch("x"))
	assert.Equal(t, 0, ch.Len(), "execute must not touch the parent chart")
}

func TestChart_FixFilterFetch_Delegation(t *testing.T) {
	ch := New()
	require.NoError(t, ch.Register("f", func(c *engine.Chooser) (engine.Outcome, error) {
		x, err := engine.ChooseOf(c, 0, 1)
		if err != nil {
			return engine.None(), err
		}
		r := binding.Record{"x": x}
		if x == 1 {
			r["y"] = 10
		}
		return engine.Bindings(r), nil
	}))
	require.NoError(t, ch.Create())

	fixed := ch.Fix(binding.Record{"y": 10})
	assert.Equal(t, 2, fixed.Len(), "record without y survives fix")

	filtered := ch.Filter(binding.Record{"y": 10})
	assert.Equal(t, 1, filtered.Len())

	assert.Equal(t, []any{10}, filtered.Fetch("y"))
	assert.Equal(t, 2, ch.Len(), "queries never mutate the source chart")
}
