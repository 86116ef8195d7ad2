package pipeline

import (
	"github.com/kbukum/conduit/conduit"
	"github.com/kbukum/conduit/logger"
)

// Identity passes every element through unchanged.
func Identity[T any]() conduit.Conduit[T, T] {
	return Map(func(v T) T { return v })
}

// Map transforms each element with fn.
func Map[A, B any](fn func(A) B) conduit.Conduit[A, B] {
	return each(func(v A) conduit.Conduit[A, B] {
		return emit(fn(v), func() conduit.Conduit[A, B] { return Map(fn) })
	}, done[A, B])
}

// FlatMap transforms each element into a slice and yields its elements in order.
func FlatMap[A, B any](fn func(A) []B) conduit.Conduit[A, B] {
	return each(func(v A) conduit.Conduit[A, B] {
		return emitAll(fn(v), func() conduit.Conduit[A, B] { return FlatMap(fn) })
	}, done[A, B])
}

// Filter keeps only the elements that satisfy pred.
func Filter[T any](pred func(T) bool) conduit.Conduit[T, T] {
	return each(func(v T) conduit.Conduit[T, T] {
		if !pred(v) {
			return Filter(pred)
		}
		return emit(v, func() conduit.Conduit[T, T] { return Filter(pred) })
	}, done[T, T])
}

// Tap calls fn for each element, then passes it on unchanged.
func Tap[T any](fn func(T)) conduit.Conduit[T, T] {
	return each(func(v T) conduit.Conduit[T, T] {
		fn(v)
		return emit(v, func() conduit.Conduit[T, T] { return Tap(fn) })
	}, done[T, T])
}

// Take passes the first n elements and finishes right after the nth,
// without awaiting another one.
func Take[T any](n int) conduit.Conduit[T, T] {
	if n <= 0 {
		return done[T, T]()
	}
	return each(func(v T) conduit.Conduit[T, T] {
		return emit(v, func() conduit.Conduit[T, T] { return Take[T](n - 1) })
	}, done[T, T])
}

// Drop discards the first n elements and passes the rest.
func Drop[T any](n int) conduit.Conduit[T, T] {
	if n <= 0 {
		return Identity[T]()
	}
	return each(func(T) conduit.Conduit[T, T] {
		return Drop[T](n - 1)
	}, done[T, T])
}

// TakeWhile passes elements while pred holds and finishes at the first one
// that fails it. That element is consumed and dropped.
func TakeWhile[T any](pred func(T) bool) conduit.Conduit[T, T] {
	return each(func(v T) conduit.Conduit[T, T] {
		if !pred(v) {
			return done[T, T]()
		}
		return emit(v, func() conduit.Conduit[T, T] { return TakeWhile(pred) })
	}, done[T, T])
}

// Scan yields the running accumulation fn(acc, v) for every element.
// init itself is not yielded.
func Scan[T, A any](init A, fn func(A, T) A) conduit.Conduit[T, A] {
	return each(func(v T) conduit.Conduit[T, A] {
		acc := fn(init, v)
		return emit(acc, func() conduit.Conduit[T, A] { return Scan(acc, fn) })
	}, done[T, A])
}

// Log writes a debug line for each element passing through, with its
// zero-based index. It is a plain pass-through when debug is disabled.
// A nil l logs through the "pipeline" component logger.
func Log[T any](l *logger.Logger, msg string) conduit.Conduit[T, T] {
	if l == nil {
		l = logger.Get("pipeline")
	}
	return logFrom[T](l, msg, 0)
}

func logFrom[T any](l *logger.Logger, msg string, index int64) conduit.Conduit[T, T] {
	return each(func(v T) conduit.Conduit[T, T] {
		if l.DebugEnabled() {
			l.Debug(msg, logger.Fields(logger.FieldIndex, index, logger.FieldElement, v))
		}
		return emit(v, func() conduit.Conduit[T, T] { return logFrom[T](l, msg, index+1) })
	}, done[T, T])
}
