package def_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsmx/fsmx"
	"github.com/fsmx/fsmx/def"
)

func TestBuildAndDispatch(t *testing.T) {
	var calls []string
	handler := fsmx.HandlerFuncs[string, string, string]{
		Entry: func(state, action string) {
			calls = append(calls, fmt.Sprintf("entry %s %s", state, action))
		},
		Event: func(state, event, action string) {
			calls = append(calls, fmt.Sprintf("event %s %s %s", state, event, action))
		},
		Exit: func(state, action string) {
			calls = append(calls, fmt.Sprintf("exit %s %s", state, action))
		},
	}

	m, err := lightConfig().Build(handler)
	require.NoError(t, err)
	require.Equal(t, "red", m.Current())

	m.HandleEvent("timer")
	assert.Equal(t, "green", m.Current())
	m.HandleEvent("timer")
	assert.Equal(t, "yellow", m.Current())
	m.HandleEvent("timer")
	assert.Equal(t, "red", m.Current())
	assert.Equal(t, []string{
		"event yellow timer warn",
		"entry red stopTraffic",
	}, calls)

	// The wildcard table applies from every state.
	m.HandleEvent("timer")
	require.Equal(t, "green", m.Current())
	m.HandleEvent("power-off")
	assert.Equal(t, "red", m.Current())
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := lightConfig()
	cfg.States["green"].On["timer"] = def.TransitionConfig{Target: "blue"}

	_, err := cfg.Build(nil)
	require.ErrorContains(t, err, `invalid transition target "blue"`)
}

func TestBuildNilHandler(t *testing.T) {
	m, err := lightConfig().Build(nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() { m.HandleEvent("timer") })
	assert.Equal(t, "green", m.Current())
}

func TestBuiltMachineExportsAllDeclaredStates(t *testing.T) {
	cfg := lightConfig()
	// A state nobody transitions to must still get a node.
	cfg.States["maintenance"] = &def.StateConfig{}

	m, err := cfg.Build(nil)
	require.NoError(t, err)

	out := m.ExportDOT(false)
	assert.Contains(t, out, `"maintenance" [shape=box, style=rounded];`)
	assert.Contains(t, out, `"red" [shape=box, style=rounded];`)
	assert.Contains(t, out, `"start" -> "red"`)
	assert.Contains(t, out, `"yellow" -> "red" [label="warn"];`)
}
