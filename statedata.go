package fsmx

import "fmt"

// eventBound is an inclusive [min, max] restriction on registered events.
// It is fixed at machine construction and shared by every state's table.
type eventBound[E comparable] struct {
	min E
	max E
}

// StateData holds the entry/exit actions and the transition table for one
// state, or for the wildcard slot. Tables are populated by the init callback
// passed to AddState and are not meant to be mutated afterward.
type StateData[A comparable, S comparable, E comparable] struct {
	// OnEntry is the action reported when this state is entered.
	OnEntry Opt[A]

	// OnExit is the action reported when this state is exited.
	OnExit Opt[A]

	events map[E]*EventData[A, S]
	domain Domain[E]
	bound  *eventBound[E]
}

func newStateData[A comparable, S comparable, E comparable](onEntry, onExit Opt[A], domain Domain[E], bound *eventBound[E]) *StateData[A, S, E] {
	return &StateData[A, S, E]{
		OnEntry: onEntry,
		OnExit:  onExit,
		events:  make(map[E]*EventData[A, S]),
		domain:  domain,
		bound:   bound,
	}
}

// AddEvent registers the action and/or transition for a single event,
// overwriting any previous registration for the same event. When the machine
// carries an event bound, events outside it are rejected.
func (s *StateData[A, S, E]) AddEvent(event E, action Opt[A], next Opt[S]) error {
	if s.bound != nil && !s.inBound(event) {
		return fmt.Errorf("%w: event must be %s to %s, received %s",
			ErrEventOutOfRange,
			s.domain.Describe(s.bound.min), s.domain.Describe(s.bound.max),
			s.domain.Describe(event))
	}
	s.events[event] = &EventData[A, S]{Action: action, Next: next}
	return nil
}

// AddEventRange registers the same action/transition for every event from
// first to last inclusive, in the event domain's order. All keys share one
// EventData instance. Range registration requires an event domain; event
// types without one only support AddEvent.
func (s *StateData[A, S, E]) AddEventRange(first, last E, action Opt[A], next Opt[S]) error {
	if s.domain == nil {
		return fmt.Errorf("%w: range registration needs an ordered event type", ErrDomainRequired)
	}
	if s.bound != nil && (!s.inBound(first) || !s.inBound(last)) {
		return fmt.Errorf("%w: event must be %s to %s, received range %s to %s",
			ErrEventOutOfRange,
			s.domain.Describe(s.bound.min), s.domain.Describe(s.bound.max),
			s.domain.Describe(first), s.domain.Describe(last))
	}
	if s.domain.Compare(first, last) > 0 {
		return fmt.Errorf("%w: first %s exceeds last %s",
			ErrEmptyRange, s.domain.Describe(first), s.domain.Describe(last))
	}
	data := &EventData[A, S]{Action: action, Next: next}
	for e := first; ; {
		s.events[e] = data
		if s.domain.Compare(e, last) >= 0 {
			break
		}
		n, ok := s.domain.Next(e)
		if !ok {
			break
		}
		e = n
	}
	return nil
}

// HasEvent reports whether this table recognizes the event by exact key.
func (s *StateData[A, S, E]) HasEvent(event E) bool {
	_, ok := s.events[event]
	return ok
}

// Event returns the EventData registered for the event, or nil. No wildcard
// fallback happens here; that is Machine.Resolve's job.
func (s *StateData[A, S, E]) Event(event E) *EventData[A, S] {
	return s.events[event]
}

func (s *StateData[A, S, E]) inBound(event E) bool {
	return s.domain.Compare(event, s.bound.min) >= 0 && s.domain.Compare(event, s.bound.max) <= 0
}
