package flows

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fiber-space/exhaustive/internal/engine"
)

//go:embed door.yaml
var doorYAML []byte

// Step is one trace entry: the transition taken and the state reached.
type Step struct {
	Via   string `yaml:"via"`
	State string `yaml:"state"`
}

// Trace is the completed state trace of one enumerated run.
type Trace []Step

// String renders a trace as "(*→start T1:setTimer→wait ...)".
func (t Trace) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, s := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.Via)
		sb.WriteString("→")
		sb.WriteString(s.State)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Rule maps a set of incoming transitions to the state they reach and
// the transitions offered from there. Rules are matched in declaration
// order; the first rule whose when-set contains the pending transition
// wins.
type Rule struct {
	When  []string `yaml:"when"`
	State string   `yaml:"state"`
	Offer []string `yaml:"offer"`
}

// AcceptRule names the terminal condition: a trace completes when it
// has exactly Length steps and its last step is in State.
type AcceptRule struct {
	Length int    `yaml:"length"`
	State  string `yaml:"state"`
}

// Machine is a finite-state transition table enumerated by the
// Controller flow. Stop conditions bound the otherwise unbounded choice
// tree: a trace dies on an immediate step repetition or when it exceeds
// MaxTrace steps, and completes per the accept rule.
type Machine struct {
	Name     string     `yaml:"name"`
	Origin   Step       `yaml:"origin"`
	Initial  string     `yaml:"initial"`
	MaxTrace int        `yaml:"max_trace"`
	Accept   AcceptRule `yaml:"accept"`
	Rules    []Rule     `yaml:"rules"`
}

// ParseMachine decodes and validates a machine definition.
func ParseMachine(data []byte) (*Machine, error) {
	var m Machine
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse machine: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadMachine reads a machine definition from a YAML file.
func LoadMachine(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load machine: %w", err)
	}
	return ParseMachine(data)
}

// DefaultDoorMachine returns the embedded door-controller table, whose
// enumeration count is a regression property of the test suite.
func DefaultDoorMachine() *Machine {
	m, err := ParseMachine(doorYAML)
	if err != nil {
		// The embedded table is validated by tests; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded door machine: %v", err))
	}
	return m
}

// Validate checks that the table is closed: the initial transition and
// every offered transition must match some rule, and stop conditions
// must be set, otherwise enumeration cannot terminate.
func (m *Machine) Validate() error {
	if len(m.Rules) == 0 {
		return fmt.Errorf("machine %q: no rules", m.Name)
	}
	if m.MaxTrace <= 0 {
		return fmt.Errorf("machine %q: max_trace must be positive", m.Name)
	}
	if m.Accept.Length <= 0 || m.Accept.State == "" {
		return fmt.Errorf("machine %q: accept rule is incomplete", m.Name)
	}
	if m.ruleFor(m.Initial) == nil {
		return fmt.Errorf("machine %q: initial transition %q matches no rule", m.Name, m.Initial)
	}
	for _, r := range m.Rules {
		for _, offered := range r.Offer {
			if m.ruleFor(offered) == nil {
				return fmt.Errorf("machine %q: offered transition %q matches no rule", m.Name, offered)
			}
		}
	}
	return nil
}

// ruleFor returns the first rule accepting the transition, or nil.
func (m *Machine) ruleFor(via string) *Rule {
	for i := range m.Rules {
		for _, w := range m.Rules[i].When {
			if w == via {
				return &m.Rules[i]
			}
		}
	}
	return nil
}

// Controller returns a flow enumerating every accepted trace of the
// machine. The trace is the outcome, as an opaque scalar - it is a
// sequence, not a variable assignment.
func Controller(m *Machine) engine.Flow {
	return func(c *engine.Chooser) (engine.Outcome, error) {
		steps := Trace{m.Origin}
		via := m.Initial
		for {
			rule := m.ruleFor(via)
			if rule == nil {
				return engine.None(), fmt.Errorf("machine %q: transition %q matches no rule", m.Name, via)
			}
			steps = append(steps, Step{Via: via, State: rule.State})

			next, err := engine.ChooseOf(c, rule.Offer...)
			if err != nil {
				return engine.None(), err
			}
			via = next

			n := len(steps)
			if (n >= 2 && steps[n-1] == steps[n-2]) || n > m.MaxTrace {
				return engine.None(), nil
			}
			if n == m.Accept.Length && steps[n-1].State == m.Accept.State {
				out := make(Trace, n)
				copy(out, steps)
				return engine.Value(out), nil
			}
		}
	}
}
