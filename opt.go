package fsmx

// Opt is an explicit optional value. The zero Opt is absent.
//
// Transition tables use Opt instead of nil sentinels so that "no action",
// "no transition" and the wildcard state stay three distinct things.
type Opt[T any] struct {
	val T
	set bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{val: v, set: true}
}

// None returns an absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// IsSet reports whether a value is present.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.val, o.set
}

// Value returns the value, or the zero value when absent.
func (o Opt[T]) Value() T {
	return o.val
}
