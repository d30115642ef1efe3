package def

import (
	"fmt"

	"github.com/fsmx/fsmx"
)

// Machine is the string-typed machine a definition builds into.
type Machine = fsmx.Machine[string, string, string]

// Handler is the matching string-typed action handler.
type Handler = fsmx.ActionHandler[string, string, string]

// Build validates the definition and constructs the machine. The handler
// may be nil; notifications are then suppressed. The definition's state set
// becomes the machine's state enumeration, so graph export covers every
// declared state.
func (m *MachineConfig) Build(handler Handler) (*Machine, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	cfg := fsmx.Config[string, string, string]{States: m.StateIDs()}
	machine, err := fsmx.New(m.Initial, handler, cfg)
	if err != nil {
		return nil, err
	}

	for _, sid := range m.StateIDs() {
		state := m.States[sid]
		err := machine.AddState(sid, opt(state.Entry), opt(state.Exit), func(sd *fsmx.StateData[string, string, string]) error {
			return addTransitions(sd, state)
		})
		if err != nil {
			return nil, fmt.Errorf("build state %q: %w", sid, err)
		}
	}
	if m.Anywhere != nil {
		err := machine.AddAnywhere(func(sd *fsmx.StateData[string, string, string]) error {
			return addTransitions(sd, m.Anywhere)
		})
		if err != nil {
			return nil, fmt.Errorf("build anywhere: %w", err)
		}
	}
	return machine, nil
}

func addTransitions(sd *fsmx.StateData[string, string, string], state *StateConfig) error {
	for event, trans := range state.On {
		if err := sd.AddEvent(event, opt(trans.Action), opt(trans.Target)); err != nil {
			return err
		}
	}
	return nil
}

// opt maps the definition's empty-string absence convention onto Opt.
func opt(v string) fsmx.Opt[string] {
	if v == "" {
		return fsmx.None[string]()
	}
	return fsmx.Some(v)
}
