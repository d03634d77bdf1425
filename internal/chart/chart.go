package chart

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/fiber-space/exhaustive/internal/binding"
	"github.com/fiber-space/exhaustive/internal/engine"
)

// Chart is a container of search entry points and their aggregated
// results. Flows are registered explicitly; registration order is the
// aggregation order and never changes after Create.
type Chart struct {
	driver   *engine.Driver
	logger   *slog.Logger
	reserved map[string]struct{}
	opts     []Option

	flows  []registeredFlow
	coll   *binding.Collection
	tokens *recordedTokens
}

type registeredFlow struct {
	name string
	flow engine.Flow
}

// recordedTokens wraps a TokenGenerator and remembers every token it
// hands out, so the chart can report which runs produced its
// collection.
type recordedTokens struct {
	gen engine.TokenGenerator

	mu   sync.Mutex
	runs []string
}

func (r *recordedTokens) Generate() string {
	tok := r.gen.Generate()
	r.mu.Lock()
	r.runs = append(r.runs, tok)
	r.mu.Unlock()
	return tok
}

func (r *recordedTokens) reset() {
	r.mu.Lock()
	r.runs = nil
	r.mu.Unlock()
}

func (r *recordedTokens) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.runs...)
}

// Option configures a Chart.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	tokens   engine.TokenGenerator
	reserved []string
}

// WithLogger sets the slog logger for the chart and its driver.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithTokens sets the run-token generator passed to the search driver.
func WithTokens(g engine.TokenGenerator) Option {
	return func(c *config) {
		c.tokens = g
	}
}

// WithReservedKeys names bookkeeping keys that are stripped from every
// record outcome before aggregation. No key is reserved by default.
func WithReservedKeys(keys ...string) Option {
	return func(c *config) {
		c.reserved = append(c.reserved, keys...)
	}
}

// New creates an empty chart.
func New(opts ...Option) *Chart {
	cfg := config{
		logger: slog.Default(),
		tokens: engine.UUIDTokens{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	reserved := make(map[string]struct{}, len(cfg.reserved))
	for _, k := range cfg.reserved {
		reserved[binding.CanonicalKey(k)] = struct{}{}
	}

	tokens := &recordedTokens{gen: cfg.tokens}
	return &Chart{
		driver: engine.NewDriver(
			engine.WithLogger(cfg.logger),
			engine.WithTokens(tokens),
		),
		logger:   cfg.logger,
		reserved: reserved,
		opts:     opts,
		coll:     binding.NewCollection(),
		tokens:   tokens,
	}
}

// Register adds a search entry point under a unique name. The order of
// Register calls is the order Create aggregates results in.
func (ch *Chart) Register(name string, f engine.Flow) error {
	if name == "" {
		return fmt.Errorf("register: flow name must not be empty")
	}
	if f == nil {
		return fmt.Errorf("register: flow %q is nil", name)
	}
	for _, reg := range ch.flows {
		if reg.name == name {
			return fmt.Errorf("register: duplicate flow name %q", name)
		}
	}
	ch.flows = append(ch.flows, registeredFlow{name: name, flow: f})
	return nil
}

// Create runs every registered flow to exhaustion, in registration
// order, and replaces the chart's collection with the aggregated
// results. A failing flow aborts Create and leaves the previous
// collection untouched.
func (ch *Chart) Create() error {
	ch.tokens.reset()
	coll := binding.NewCollection()
	for _, reg := range ch.flows {
		outcomes, err := ch.driver.Apply(reg.flow)
		if err != nil {
			return fmt.Errorf("create: flow %q: %w", reg.name, err)
		}
		ch.logger.Debug("flow enumerated",
			"flow", reg.name,
			"outcomes", len(outcomes),
		)
		ch.aggregate(coll, outcomes)
	}
	ch.coll = coll
	ch.logger.Debug("chart created",
		"flows", len(ch.flows),
		"elements", coll.Len(),
	)
	return nil
}

// aggregate normalizes a flow's outcomes into the collection.
//
// Only the None kind was already dropped by the driver; everything here
// is a real result. Record lists flatten element-wise, single records
// are appended when non-empty after reserved-key stripping, scalars are
// appended as scalar elements.
func (ch *Chart) aggregate(coll *binding.Collection, outcomes []engine.Outcome) {
	for _, out := range outcomes {
		switch out.Kind() {
		case engine.KindList:
			for _, r := range out.Records() {
				coll.Append(r)
			}
		case engine.KindBindings:
			r := ch.stripReserved(out.Record())
			if len(r) > 0 {
				coll.Append(r)
			}
		case engine.KindValue:
			coll.Append(binding.Scalar{Value: out.Value()})
		}
	}
}

// stripReserved removes reserved bookkeeping keys from a record,
// copying only when something must be removed.
func (ch *Chart) stripReserved(r binding.Record) binding.Record {
	if len(ch.reserved) == 0 {
		return r
	}
	strip := false
	for k := range r {
		if _, ok := ch.reserved[binding.CanonicalKey(k)]; ok {
			strip = true
			break
		}
	}
	if !strip {
		return r
	}
	out := make(binding.Record, len(r))
	for k, v := range r {
		if _, ok := ch.reserved[binding.CanonicalKey(k)]; ok {
			continue
		}
		out[k] = v
	}
	return out
}

// Execute wraps a single flow in an ephemeral chart, creates it, and
// returns the resulting collection. Used inside flows to compose
// independent sub-searches.
func (ch *Chart) Execute(f engine.Flow) (*binding.Collection, error) {
	sub := New(ch.opts...)
	if err := sub.Register("execute", f); err != nil {
		return nil, err
	}
	if err := sub.Create(); err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	return sub.coll, nil
}

// Fix returns a derived chart holding the records that do not violate
// the constraints. See binding.Collection.Fix for the exact semantics.
// The derived chart has no registered flows; calling Create on it
// yields an empty collection.
func (ch *Chart) Fix(constraints binding.Record) *Chart {
	return ch.derived(ch.coll.Fix(constraints))
}

// Filter returns a derived chart holding the records that bind every
// constrained key to the constraint value.
func (ch *Chart) Filter(constraints binding.Record) *Chart {
	return ch.derived(ch.coll.Filter(constraints))
}

// Fetch projects one variable across the chart's records; see
// binding.Collection.Fetch.
func (ch *Chart) Fetch(name string) []any {
	return ch.coll.Fetch(name)
}

// Len returns the number of aggregated elements.
func (ch *Chart) Len() int {
	return ch.coll.Len()
}

// Collection returns the chart's aggregated collection.
func (ch *Chart) Collection() *binding.Collection {
	return ch.coll
}

// RunTokens returns the run tokens generated by the most recent Create,
// one per registered flow in registration order. Empty before the first
// Create and on derived charts.
func (ch *Chart) RunTokens() []string {
	return ch.tokens.list()
}

// derived builds a chart sharing this chart's configuration but holding
// a pre-computed collection.
func (ch *Chart) derived(coll *binding.Collection) *Chart {
	out := New(ch.opts...)
	out.coll = coll
	return out
}
