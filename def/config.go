// Package def provides a declarative, string-keyed machine definition that
// can be loaded from YAML or JSON and built into a runnable fsmx.Machine.
//
// Unlike the core engine, which deliberately leaves transition targets
// unchecked, Validate enforces that every target and the initial state are
// declared, so malformed definition files fail before a machine is built.
package def

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// TransitionConfig describes what one event does in one state. Empty Action
// means no action; empty Target means stay in the current state.
type TransitionConfig struct {
	Action string `json:"action,omitempty" yaml:"action,omitempty"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
}

// StateConfig declares one state's actions and transition table.
type StateConfig struct {
	Entry string                      `json:"entry,omitempty" yaml:"entry,omitempty"`
	Exit  string                      `json:"exit,omitempty" yaml:"exit,omitempty"`
	On    map[string]TransitionConfig `json:"on,omitempty" yaml:"on,omitempty"`
}

// MachineConfig is the complete declarative machine definition.
type MachineConfig struct {
	ID       string                  `json:"id" yaml:"id"`
	Initial  string                  `json:"initial" yaml:"initial"`
	States   map[string]*StateConfig `json:"states" yaml:"states"`
	Anywhere *StateConfig            `json:"anywhere,omitempty" yaml:"anywhere,omitempty"`
}

// Validate checks the definition:
//   - non-empty ID and Initial
//   - Initial is a declared state
//   - every transition target (state tables and the anywhere table) is a
//     declared state
func (m *MachineConfig) Validate() error {
	if m.ID == "" {
		return errors.New("machine ID is required")
	}
	if m.Initial == "" {
		return errors.New("initial state ID is required")
	}
	if len(m.States) == 0 {
		return errors.New("states map is required and cannot be empty")
	}
	if _, ok := m.States[m.Initial]; !ok {
		return fmt.Errorf("initial state %q not found in states", m.Initial)
	}

	for sid, state := range m.States {
		if state == nil {
			return fmt.Errorf("state %q has no definition", sid)
		}
		if err := checkTargets(sid, state, m.States); err != nil {
			return err
		}
	}
	if m.Anywhere != nil {
		if err := checkTargets("anywhere", m.Anywhere, m.States); err != nil {
			return err
		}
	}
	return nil
}

func checkTargets(sid string, state *StateConfig, states map[string]*StateConfig) error {
	for event, trans := range state.On {
		if strings.TrimSpace(event) == "" {
			return fmt.Errorf("empty event name in On map for state %q", sid)
		}
		if trans.Target != "" {
			if _, ok := states[trans.Target]; !ok {
				return fmt.Errorf("invalid transition target %q (state %q, event %q)", trans.Target, sid, event)
			}
		}
	}
	return nil
}

// StateIDs returns the declared state names in sorted order.
func (m *MachineConfig) StateIDs() []string {
	ids := make([]string, 0, len(m.States))
	for sid := range m.States {
		ids = append(ids, sid)
	}
	sort.Strings(ids)
	return ids
}
