package flows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiber-space/exhaustive/internal/binding"
	"github.com/fiber-space/exhaustive/internal/chart"
)

func TestDefaultDoorMachine_Valid(t *testing.T) {
	m := DefaultDoorMachine()

	assert.Equal(t, "door-controller", m.Name)
	assert.Equal(t, Step{Via: "*", State: "start"}, m.Origin)
	assert.Equal(t, "T1:setTimer", m.Initial)
	assert.Len(t, m.Rules, 6)
	require.NoError(t, m.Validate())
}

func TestController_DoorTraceCount(t *testing.T) {
	m := DefaultDoorMachine()

	ch := chart.New()
	require.NoError(t, ch.Register(m.Name, Controller(m)))
	require.NoError(t, ch.Create())

	// Regression property of this transition table.
	assert.Equal(t, 84, ch.Len())

	for _, e := range ch.Collection().Elements() {
		s, ok := e.(binding.Scalar)
		require.True(t, ok, "traces are opaque results, not assignments")
		trace, ok := s.Value.(Trace)
		require.True(t, ok)
		assert.Len(t, trace, m.Accept.Length)
		assert.Equal(t, m.Origin, trace[0])
		assert.Equal(t, m.Accept.State, trace[len(trace)-1].State)
	}
}

func TestController_SingleLoopMachine(t *testing.T) {
	m := &Machine{
		Name:     "loop",
		Origin:   Step{Via: "*", State: "start"},
		Initial:  "tick",
		MaxTrace: 3,
		Accept:   AcceptRule{Length: 2, State: "run"},
		Rules: []Rule{
			{When: []string{"tick"}, State: "run", Offer: []string{"tick"}},
		},
	}
	require.NoError(t, m.Validate())

	ch := chart.New()
	require.NoError(t, ch.Register(m.Name, Controller(m)))
	require.NoError(t, ch.Create())
	assert.Equal(t, 1, ch.Len())
}

func TestController_RepetitionKillsTraces(t *testing.T) {
	// With accept length 3, every candidate trace repeats (tick, run)
	// immediately and dies before acceptance.
	m := &Machine{
		Name:     "loop",
		Origin:   Step{Via: "*", State: "start"},
		Initial:  "tick",
		MaxTrace: 5,
		Accept:   AcceptRule{Length: 3, State: "run"},
		Rules: []Rule{
			{When: []string{"tick"}, State: "run", Offer: []string{"tick"}},
		},
	}

	ch := chart.New()
	require.NoError(t, ch.Register(m.Name, Controller(m)))
	require.NoError(t, ch.Create())
	assert.Equal(t, 0, ch.Len())
}

func TestController_UnknownTransitionFailsEnumeration(t *testing.T) {
	// Built by hand to bypass Validate.
	m := &Machine{
		Name:     "broken",
		Origin:   Step{Via: "*", State: "start"},
		Initial:  "missing",
		MaxTrace: 5,
		Accept:   AcceptRule{Length: 2, State: "run"},
		Rules: []Rule{
			{When: []string{"tick"}, State: "run", Offer: []string{"tick"}},
		},
	}

	ch := chart.New()
	require.NoError(t, ch.Register(m.Name, Controller(m)))
	assert.Error(t, ch.Create())
}

func TestParseMachine_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "::nope"},
		{"no rules", "name: m\ninitial: t\nmax_trace: 5\naccept: {length: 2, state: s}\n"},
		{"initial unmatched", `
name: m
initial: other
max_trace: 5
accept: {length: 2, state: s}
rules:
  - when: ["t"]
    state: s
    offer: ["t"]
`},
		{"offer unmatched", `
name: m
initial: t
max_trace: 5
accept: {length: 2, state: s}
rules:
  - when: ["t"]
    state: s
    offer: ["dangling"]
`},
		{"no accept", `
name: m
initial: t
max_trace: 5
rules:
  - when: ["t"]
    state: s
    offer: ["t"]
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMachine([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadMachine_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "door.yaml")
	require.NoError(t, os.WriteFile(path, doorYAML, 0o644))

	m, err := LoadMachine(path)
	require.NoError(t, err)
	assert.Equal(t, "door-controller", m.Name)
}

func TestLoadMachine_MissingFile(t *testing.T) {
	_, err := LoadMachine(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestTrace_String(t *testing.T) {
	tr := Trace{{Via: "*", State: "start"}, {Via: "T1:setTimer", State: "wait"}}
	assert.Equal(t, "(*→start T1:setTimer→wait)", tr.String())
}
