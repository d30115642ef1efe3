package fsmx

import "errors"

var (
	// ErrEventOutOfRange is returned when a registered event lies outside the
	// machine's configured [min, max] bound.
	ErrEventOutOfRange = errors.New("event out of range")

	// ErrInvalidBound is returned when a configured bound has min > max.
	ErrInvalidBound = errors.New("minimum event must not exceed maximum event")

	// ErrDomainRequired is returned when an operation needs an event domain
	// (bound validation, range registration) and none was configured.
	ErrDomainRequired = errors.New("event domain required")

	// ErrEmptyRange is returned when a range registration is missing an
	// endpoint or its endpoints are reversed.
	ErrEmptyRange = errors.New("invalid event range")
)
