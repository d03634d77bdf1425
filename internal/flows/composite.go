package flows

import (
	"github.com/fiber-space/exhaustive/internal/binding"
	"github.com/fiber-space/exhaustive/internal/chart"
	"github.com/fiber-space/exhaustive/internal/engine"
)

// Composite returns a flow that runs two independent sub-searches via
// the chart's Execute and combines their collections into one record
// list: 4 × 4 = 16 records of width 4. The outer flow itself makes no
// choices - composition happens over finished collections.
func Composite(ch *chart.Chart) engine.Flow {
	f := func(c *engine.Chooser) (engine.Outcome, error) {
		x, err := engine.ChooseOf(c, 0, 1)
		if err != nil {
			return engine.None(), err
		}
		y, err := engine.ChooseOf(c, 2, 3)
		if err != nil {
			return engine.None(), err
		}
		return engine.Bindings(binding.Record{"x": x, "y": y}), nil
	}

	g := func(c *engine.Chooser) (engine.Outcome, error) {
		a, err := engine.ChooseOf(c, 0, 1)
		if err != nil {
			return engine.None(), err
		}
		b, err := engine.ChooseOf(c, 2, 3)
		if err != nil {
			return engine.None(), err
		}
		return engine.Bindings(binding.Record{"a": a, "b": b}), nil
	}

	return func(c *engine.Chooser) (engine.Outcome, error) {
		fres, err := ch.Execute(f)
		if err != nil {
			return engine.None(), err
		}
		gres, err := ch.Execute(g)
		if err != nil {
			return engine.None(), err
		}
		return engine.List(fres.Combine(gres).Records()...), nil
	}
}
