package flows

import (
	"github.com/fiber-space/exhaustive/internal/binding"
	"github.com/fiber-space/exhaustive/internal/chart"
	"github.com/fiber-space/exhaustive/internal/engine"
)

// TwoLevel enumerates two boolean choices and binds z only on the x=1
// branch, so half the records have two keys and half have three.
func TwoLevel(c *engine.Chooser) (engine.Outcome, error) {
	x, err := engine.ChooseOf(c, 0, 1)
	if err != nil {
		return engine.None(), err
	}
	y, err := engine.ChooseOf(c, 0, 1)
	if err != nil {
		return engine.None(), err
	}

	r := binding.Record{"x": x, "y": y}
	if x == 1 {
		if y == 0 {
			r["z"] = 1
		} else {
			r["z"] = 0
		}
	}
	return engine.Bindings(r), nil
}

// Derived binds b as a function of a single choice z.
func Derived(c *engine.Chooser) (engine.Outcome, error) {
	z, err := engine.ChooseOf(c, 0, 1)
	if err != nil {
		return engine.None(), err
	}

	r := binding.Record{"z": z}
	if z == 1 {
		r["b"] = 1
	} else {
		r["b"] = 0
	}
	return engine.Bindings(r), nil
}

// Guarded binds a only when the guard choice p is 1.
func Guarded(c *engine.Chooser) (engine.Outcome, error) {
	p, err := engine.ChooseOf(c, 0, 1)
	if err != nil {
		return engine.None(), err
	}
	x, err := engine.ChooseOf(c, 0, 1)
	if err != nil {
		return engine.None(), err
	}

	r := binding.Record{"p": p, "x": x}
	if p == 1 {
		if x == 0 {
			r["a"] = 1
		} else {
			r["a"] = 0
		}
	}
	return engine.Bindings(r), nil
}

// ExampleChart builds a chart with the three example flows registered
// in their canonical order r1, r2, r3.
func ExampleChart(opts ...chart.Option) (*chart.Chart, error) {
	ch := chart.New(opts...)
	if err := ch.Register("r1", TwoLevel); err != nil {
		return nil, err
	}
	if err := ch.Register("r2", Derived); err != nil {
		return nil, err
	}
	if err := ch.Register("r3", Guarded); err != nil {
		return nil, err
	}
	return ch, nil
}
