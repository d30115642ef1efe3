package fsmx

import (
	"fmt"
	"math"
	"unicode"
)

// Domain describes an ordered, enumerable event type. A Domain is required
// for bound-checked registration and for range registration; event types
// without one still support single-event registration by exact key.
//
// Describe renders a value in both raw and human-readable form for error
// messages (for example "0x0a (10)" for ints, "0x41 (A)" for runes).
type Domain[E comparable] interface {
	// Compare orders two values: negative when a < b, zero when equal,
	// positive when a > b.
	Compare(a, b E) int

	// Min returns the type's natural minimum, used when a bound is
	// configured with only a maximum.
	Min() E

	// Max returns the type's natural maximum, used when a bound is
	// configured with only a minimum.
	Max() E

	// Next returns the successor of e, or false when e is the last value.
	Next(e E) (E, bool)

	// Describe renders e for diagnostics.
	Describe(e E) string
}

// Ints returns the Domain for int events.
func Ints() Domain[int] {
	return intDomain{}
}

type intDomain struct{}

func (intDomain) Compare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (intDomain) Min() int { return math.MinInt }
func (intDomain) Max() int { return math.MaxInt }

func (intDomain) Next(e int) (int, bool) {
	if e == math.MaxInt {
		return 0, false
	}
	return e + 1, true
}

func (intDomain) Describe(e int) string {
	return fmt.Sprintf("0x%02x (%d)", e, e)
}

// Runes returns the Domain for rune (single character) events.
func Runes() Domain[rune] {
	return runeDomain{}
}

type runeDomain struct{}

func (runeDomain) Compare(a, b rune) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (runeDomain) Min() rune { return 0 }
func (runeDomain) Max() rune { return unicode.MaxRune }

func (runeDomain) Next(e rune) (rune, bool) {
	if e >= unicode.MaxRune {
		return 0, false
	}
	return e + 1, true
}

func (runeDomain) Describe(e rune) string {
	return fmt.Sprintf("0x%02x (%c)", e, e)
}

// Enum builds a Domain from an explicit ordered enumeration of every value
// of an enumerable event type. Ordering and natural bounds follow the slice
// order. A value not in the enumeration orders below all members, so bound
// validation rejects it.
func Enum[E comparable](values ...E) (Domain[E], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("enum domain requires at least one value")
	}
	d := enumDomain[E]{
		values:  make([]E, len(values)),
		ordinal: make(map[E]int, len(values)),
	}
	copy(d.values, values)
	for i, v := range values {
		if _, dup := d.ordinal[v]; dup {
			return nil, fmt.Errorf("enum domain has duplicate value %v", v)
		}
		d.ordinal[v] = i
	}
	return d, nil
}

type enumDomain[E comparable] struct {
	values  []E
	ordinal map[E]int
}

func (d enumDomain[E]) ord(e E) int {
	if i, ok := d.ordinal[e]; ok {
		return i
	}
	return -1
}

func (d enumDomain[E]) Compare(a, b E) int {
	return d.ord(a) - d.ord(b)
}

func (d enumDomain[E]) Min() E { return d.values[0] }
func (d enumDomain[E]) Max() E { return d.values[len(d.values)-1] }

func (d enumDomain[E]) Next(e E) (E, bool) {
	i := d.ord(e)
	if i < 0 || i+1 >= len(d.values) {
		var zero E
		return zero, false
	}
	return d.values[i+1], true
}

func (d enumDomain[E]) Describe(e E) string {
	return fmt.Sprintf("%v (%d)", e, d.ord(e))
}
