package conduit

import (
	"errors"
	"testing"
)

func fromSlice[T any](xs []T) Source[T] {
	if len(xs) == 0 {
		return Finished[Unit, T](Unit{})
	}
	return AndThen(Yield[Unit](xs[0]), func(Unit) Source[T] {
		return fromSlice(xs[1:])
	})
}

// naturals yields n, n+1, ... and counts how many values it has built.
func naturals(n int, built *int) Source[int] {
	*built++
	return AndThen(Yield[Unit](n), func(Unit) Source[int] {
		return naturals(n+1, built)
	})
}

func collect[T any](acc []T) Sink[T, []T] {
	return AndThen(Await[T, Void](), func(in Option[T]) Sink[T, []T] {
		v, ok := in.Get()
		if !ok {
			return Finished[T, Void](acc)
		}
		return collect(append(acc, v))
	})
}

func sum(acc int) Sink[int, int] {
	return AndThen(Await[int, Void](), func(in Option[int]) Sink[int, int] {
		v, ok := in.Get()
		if !ok {
			return Finished[int, Void](acc)
		}
		return sum(acc + v)
	})
}

func identity[T any]() Conduit[T, T] {
	return AndThen(Await[T, T](), func(in Option[T]) Conduit[T, T] {
		v, ok := in.Get()
		if !ok {
			return Finished[T, T](Unit{})
		}
		return AndThen(Yield[T](v), func(Unit) Conduit[T, T] {
			return identity[T]()
		})
	})
}

func mapConduit[A, B any](f func(A) B) Conduit[A, B] {
	return AndThen(Await[A, B](), func(in Option[A]) Conduit[A, B] {
		v, ok := in.Get()
		if !ok {
			return Finished[A, B](Unit{})
		}
		return AndThen(Yield[A](f(v)), func(Unit) Conduit[A, B] {
			return mapConduit(f)
		})
	})
}

func mustPanicWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got %v", target, r)
		}
	}()
	fn()
}
