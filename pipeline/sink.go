package pipeline

import "github.com/kbukum/conduit/conduit"

// Fold combines every element into acc with fn and returns the final value.
func Fold[T, R any](acc R, fn func(R, T) R) conduit.Sink[T, R] {
	return each(func(v T) conduit.Sink[T, R] {
		return Fold(fn(acc, v), fn)
	}, func() conduit.Sink[T, R] {
		return conduit.Finished[T, conduit.Void](acc)
	})
}

// Collect returns all elements in order. It is empty, not nil, for an empty stream.
func Collect[T any]() conduit.Sink[T, []T] {
	return Fold([]T{}, func(acc []T, v T) []T { return append(acc, v) })
}

// Count returns the number of elements.
func Count[T any]() conduit.Sink[T, int] {
	return Fold(0, func(n int, _ T) int { return n + 1 })
}

// Head returns the first element, or None for an empty stream. It does not
// pull past the first element.
func Head[T any]() conduit.Sink[T, conduit.Option[T]] {
	return conduit.Await[T, conduit.Void]()
}

// Last returns the final element, or None for an empty stream.
func Last[T any]() conduit.Sink[T, conduit.Option[T]] {
	return Fold(conduit.None[T](), func(_ conduit.Option[T], v T) conduit.Option[T] {
		return conduit.Some(v)
	})
}

// Drain consumes and discards every element.
func Drain[T any]() conduit.Sink[T, conduit.Unit] {
	return ForEach(func(T) {})
}

// ForEach calls fn for every element.
func ForEach[T any](fn func(T)) conduit.Sink[T, conduit.Unit] {
	return Fold(conduit.Unit{}, func(u conduit.Unit, v T) conduit.Unit {
		fn(v)
		return u
	})
}
