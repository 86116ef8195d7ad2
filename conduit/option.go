package conduit

import "fmt"

// Unit is the input of a Source and the value a Yielding pipe is resumed with.
type Unit = struct{}

// Void is the output type of a Sink. Nothing in this package constructs a
// Void, so a well-typed Sink never yields.
type Void struct{ _ [0]func() }

// Option is either Some value or None. An Awaiting pipe is fed None once its
// upstream is exhausted.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// OrElse returns the value, or def when o is None.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
