package fsmx

// EventData holds the action to take and/or the state to transition to when
// one event is recognized.
//
// An absent Action means the event triggers no work; an absent Next means the
// machine stays in its current state. A single EventData instance backs every
// key of a range registration, so equal range transitions collapse naturally
// in the graph export.
type EventData[A comparable, S comparable] struct {
	Action Opt[A]
	Next   Opt[S]
}
