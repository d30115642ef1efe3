// Package fsmx is a table-driven finite-state-machine engine, generic over
// caller-chosen action, state and event types.
//
// A Machine is built once by declaring states and populating each state's
// transition table, then driven by feeding it events one at a time. Each
// event resolves against the current state's table, falling back to the
// wildcard ("anywhere") table, and produces up to three notifications in a
// fixed order: the old state's exit action, the event's action, the new
// state's entry action. Unrecognized events are ignored.
//
// The engine is a building block for parsers, protocol decoders and session
// flows; the caller owns the meaning of states, events and actions.
package fsmx

import (
	"fmt"
	"log/slog"
)

// Config carries the optional machine settings. The zero value is valid.
type Config[A comparable, S comparable, E comparable] struct {
	// Mapper rewrites events before table lookup. Lookup only; callbacks
	// receive the original event.
	Mapper EventMapper[E]

	// Domain orders the event type. Required when a bound endpoint is set
	// or when tables use AddEventRange.
	Domain Domain[E]

	// MinEvent and MaxEvent form an inclusive registration bound. Either
	// endpoint may be absent; it then defaults to the domain's natural
	// minimum or maximum.
	MinEvent Opt[E]
	MaxEvent Opt[E]

	// States is the full enumeration of concrete state values, used by the
	// graph export to declare every state node. When empty, the export
	// falls back to the registered states.
	States []S

	// Logger receives debug records from dispatch. Defaults to a discard
	// logger.
	Logger *slog.Logger
}

// Machine owns the state registry and the current-state cursor.
//
// Build the machine fully before dispatching. Dispatch itself is
// single-threaded and synchronous; multiple machines may share nothing, and
// callbacks must not re-enter HandleEvent on the same machine.
type Machine[A comparable, S comparable, E comparable] struct {
	states   map[S]*StateData[A, S, E]
	anywhere *StateData[A, S, E]
	handler  ActionHandler[A, S, E]
	mapper   EventMapper[E]
	domain   Domain[E]
	bound    *eventBound[E]
	stateSet []S
	logger   *slog.Logger
	initial  S
	current  S
}

// New creates a Machine starting in the given state. The handler receives
// action notifications during dispatch; a nil handler suppresses all of
// them. At most one Config may be given.
//
// New fails when a bound endpoint is configured without a Domain, or when
// the resolved bound has min > max.
func New[A comparable, S comparable, E comparable](initial S, handler ActionHandler[A, S, E], cfg ...Config[A, S, E]) (*Machine[A, S, E], error) {
	m := &Machine[A, S, E]{
		states:  make(map[S]*StateData[A, S, E]),
		handler: handler,
		initial: initial,
		current: initial,
	}
	var c Config[A, S, E]
	if len(cfg) > 0 {
		c = cfg[0]
	}
	m.mapper = c.Mapper
	m.domain = c.Domain
	m.stateSet = c.States
	m.logger = c.Logger
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}

	if c.MinEvent.IsSet() || c.MaxEvent.IsSet() {
		if m.domain == nil {
			return nil, fmt.Errorf("%w: event bound configured without a domain", ErrDomainRequired)
		}
		b := &eventBound[E]{min: m.domain.Min(), max: m.domain.Max()}
		if v, ok := c.MinEvent.Get(); ok {
			b.min = v
		}
		if v, ok := c.MaxEvent.Get(); ok {
			b.max = v
		}
		if m.domain.Compare(b.min, b.max) > 0 {
			return nil, fmt.Errorf("%w: %s > %s",
				ErrInvalidBound, m.domain.Describe(b.min), m.domain.Describe(b.max))
		}
		m.bound = b
	}
	return m, nil
}

// AddState registers a state with its entry/exit actions and runs init
// synchronously with the state's empty transition table so the caller can
// populate it. Re-adding a state replaces the previous entry.
//
// When init returns an error the state is not stored.
func (m *Machine[A, S, E]) AddState(state S, onEntry, onExit Opt[A], init func(*StateData[A, S, E]) error) error {
	data := newStateData[A, S, E](onEntry, onExit, m.domain, m.bound)
	if init != nil {
		if err := init(data); err != nil {
			return fmt.Errorf("add state %v: %w", state, err)
		}
	}
	m.states[state] = data
	return nil
}

// AddAnywhere registers the wildcard table, consulted as a fallback for
// every concrete state. The wildcard is not a member of the state type and
// carries no entry/exit actions, since the cursor never rests on it.
func (m *Machine[A, S, E]) AddAnywhere(init func(*StateData[A, S, E]) error) error {
	data := newStateData[A, S, E](None[A](), None[A](), m.domain, m.bound)
	if init != nil {
		if err := init(data); err != nil {
			return fmt.Errorf("add anywhere: %w", err)
		}
	}
	m.anywhere = data
	return nil
}

// StateData returns the registered data for a state, or nil.
func (m *Machine[A, S, E]) StateData(state S) *StateData[A, S, E] {
	return m.states[state]
}

// Anywhere returns the wildcard table, or nil.
func (m *Machine[A, S, E]) Anywhere() *StateData[A, S, E] {
	return m.anywhere
}

// Resolve looks up the EventData for an event in the given state, applying
// the event mapper first and falling back to the wildcard table. A nil
// result means the event is unhandled in that state.
func (m *Machine[A, S, E]) Resolve(state S, event E) *EventData[A, S] {
	lookup := event
	if m.mapper != nil {
		lookup = m.mapper(event)
	}
	if data := m.states[state]; data != nil {
		if ed := data.Event(lookup); ed != nil {
			return ed
		}
	}
	if m.anywhere != nil {
		if ed := m.anywhere.Event(lookup); ed != nil {
			return ed
		}
	}
	return nil
}

// HandleEvent drives one event through the machine.
//
// An unresolved event is a no-op. Otherwise up to three notifications fire
// in fixed order: the current state's exit action (only when a transition
// occurs), the event's action, the next state's entry action. The cursor
// moves after the entry notification, so a callback inspecting the machine
// still observes the old current state.
func (m *Machine[A, S, E]) HandleEvent(event E) {
	data := m.Resolve(m.current, event)
	if data == nil {
		m.logger.Debug("event unhandled", "state", m.current, "event", event)
		return
	}

	next, transition := data.Next.Get()
	if transition {
		if cur := m.states[m.current]; cur != nil {
			if action, ok := cur.OnExit.Get(); ok && m.handler != nil {
				m.handler.OnExit(m.current, action)
			}
		}
	}

	if action, ok := data.Action.Get(); ok && m.handler != nil {
		m.handler.OnEvent(m.current, event, action)
	}

	if transition {
		if nd := m.states[next]; nd != nil {
			if action, ok := nd.OnEntry.Get(); ok && m.handler != nil {
				m.handler.OnEntry(next, action)
			}
		}
		m.logger.Debug("transition", "from", m.current, "to", next, "event", event)
		m.current = next
	}
}

// Reset moves the cursor back to the initial state. No callbacks fire.
func (m *Machine[A, S, E]) Reset() {
	m.current = m.initial
}

// Current returns the current state.
func (m *Machine[A, S, E]) Current() S {
	return m.current
}

// Initial returns the state the machine was constructed with.
func (m *Machine[A, S, E]) Initial() S {
	return m.initial
}
