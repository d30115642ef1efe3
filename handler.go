package fsmx

// ActionHandler receives the action notifications produced by dispatch.
//
// The engine never interprets actions itself; it only reports which action a
// table entry names, in the fixed order exit, event, entry.
type ActionHandler[A comparable, S comparable, E comparable] interface {
	// OnEntry is called when entering a state whose entry action is set.
	OnEntry(state S, action A)

	// OnEvent is called when an event triggers an action. The event is the
	// original value fed to HandleEvent, not the mapped lookup value.
	OnEvent(state S, event E, action A)

	// OnExit is called when exiting a state whose exit action is set.
	OnExit(state S, action A)
}

// HandlerFuncs adapts plain functions to ActionHandler. Nil fields ignore
// their notification.
type HandlerFuncs[A comparable, S comparable, E comparable] struct {
	Entry func(state S, action A)
	Event func(state S, event E, action A)
	Exit  func(state S, action A)
}

func (h HandlerFuncs[A, S, E]) OnEntry(state S, action A) {
	if h.Entry != nil {
		h.Entry(state, action)
	}
}

func (h HandlerFuncs[A, S, E]) OnEvent(state S, event E, action A) {
	if h.Event != nil {
		h.Event(state, event, action)
	}
}

func (h HandlerFuncs[A, S, E]) OnExit(state S, action A) {
	if h.Exit != nil {
		h.Exit(state, action)
	}
}

// EventMapper rewrites an event value before table lookup. The mapped value
// is used for lookup only; callbacks always receive the original event.
//
// A mapper can, for example, normalize events outside the configured range
// to an in-range sentinel.
type EventMapper[E comparable] func(event E) E
