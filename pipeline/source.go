package pipeline

import "github.com/kbukum/conduit/conduit"

// FromSlice yields the elements of items in order.
func FromSlice[T any](items []T) conduit.Source[T] {
	return emitAll(items, done[conduit.Unit, T])
}

// Empty finishes without yielding.
func Empty[T any]() conduit.Source[T] {
	return done[conduit.Unit, T]()
}

// Repeat yields v forever.
func Repeat[T any](v T) conduit.Source[T] {
	return emit(v, func() conduit.Source[T] {
		return Repeat(v)
	})
}

// Iterate yields seed, next(seed), next(next(seed)), ... forever. next is
// only called once the previous element has been consumed.
func Iterate[T any](seed T, next func(T) T) conduit.Source[T] {
	return emit(seed, func() conduit.Source[T] {
		return Iterate(next(seed), next)
	})
}

// Range yields from, from+1, ..., to-1.
func Range(from, to int) conduit.Source[int] {
	if from >= to {
		return Empty[int]()
	}
	return emit(from, func() conduit.Source[int] {
		return Range(from+1, to)
	})
}

// Concat yields everything from each source in turn. The sources are consumed.
func Concat[T any](sources ...conduit.Source[T]) conduit.Source[T] {
	if len(sources) == 0 {
		return Empty[T]()
	}
	return conduit.AndThen(sources[0], func(conduit.Unit) conduit.Source[T] {
		return Concat(sources[1:]...)
	})
}
