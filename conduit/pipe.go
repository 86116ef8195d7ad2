package conduit

import (
	"errors"
	"fmt"
)

var (
	// ErrSinkYielded reports a Sink observed in the Yielding state.
	ErrSinkYielded = errors.New("conduit: sink yielded an output")
	// ErrWrongState reports Feed or Resume called on a pipe in another state.
	ErrWrongState = errors.New("conduit: pipe is not in the required state")
	// ErrConsumed reports a pipe or continuation used after it was consumed.
	ErrConsumed = errors.New("conduit: continuation already consumed")
)

// Kind discriminates the three states of a Pipe.
type Kind uint8

const (
	// KindFinished holds the result. It is terminal.
	KindFinished Kind = iota
	// KindAwaiting waits for the next input.
	KindAwaiting
	// KindYielding emits an output and continues when resumed.
	KindYielding
)

func (k Kind) String() string {
	switch k {
	case KindFinished:
		return "Finished"
	case KindAwaiting:
		return "Awaiting"
	case KindYielding:
		return "Yielding"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Pipe is a sequence of await and yield steps that ends with a result.
//
//   - I is the type of values consumed from upstream.
//   - O is the type of values passed downstream.
//   - R is the final result.
//
// The zero Pipe is Finished with the zero R.
type Pipe[I, O, R any] struct {
	kind   Kind
	result R
	output O
	await  Continuation[Option[I], I, O, R]
	resume Continuation[Unit, I, O, R]
}

// Source produces a stream of outputs without consuming input or returning a result.
type Source[O any] = Pipe[Unit, O, Unit]

// Sink consumes a stream of inputs and returns a result without producing output.
type Sink[I, R any] = Pipe[I, Void, R]

// Conduit consumes inputs and produces outputs without returning a result.
type Conduit[I, O any] = Pipe[I, O, Unit]

// Finished returns a pipe that is done with result r.
func Finished[I, O, R any](r R) Pipe[I, O, R] {
	return Pipe[I, O, R]{result: r}
}

// Lift is Finished. It reads better where a plain value is lifted into a step.
func Lift[I, O, R any](r R) Pipe[I, O, R] {
	return Finished[I, O](r)
}

// Await waits for a single input from upstream. The result is None once
// upstream is exhausted, and every later Await on the same stream is None too.
func Await[I, O any]() Pipe[I, O, Option[I]] {
	return Pipe[I, O, Option[I]]{kind: KindAwaiting, await: NewContinuation[Option[I], I, O]()}
}

// Yield sends o downstream. If downstream finishes, control never comes back.
func Yield[I, O any](o O) Pipe[I, O, Unit] {
	return Pipe[I, O, Unit]{kind: KindYielding, output: o, resume: NewContinuation[Unit, I, O]()}
}

// Awaiting builds an Awaiting pipe that continues with k.
func Awaiting[I, O, R any](k Continuation[Option[I], I, O, R]) Pipe[I, O, R] {
	return Pipe[I, O, R]{kind: KindAwaiting, await: k}
}

// Yielding builds a Yielding pipe that emits o and continues with k.
func Yielding[I, O, R any](o O, k Continuation[Unit, I, O, R]) Pipe[I, O, R] {
	return Pipe[I, O, R]{kind: KindYielding, output: o, resume: k}
}

// Kind reports the state of p.
func (p Pipe[I, O, R]) Kind() Kind { return p.kind }

// Result returns the result when p is Finished.
func (p Pipe[I, O, R]) Result() (R, bool) {
	if p.kind != KindFinished {
		var zero R
		return zero, false
	}
	return p.result, true
}

// Output returns the pending output when p is Yielding.
func (p Pipe[I, O, R]) Output() (O, bool) {
	if p.kind != KindYielding {
		var zero O
		return zero, false
	}
	return p.output, true
}

// Feed resumes an Awaiting pipe with in. p is consumed.
func (p Pipe[I, O, R]) Feed(in Option[I]) Pipe[I, O, R] {
	if p.kind != KindAwaiting {
		panic(fmt.Errorf("%w: Feed on a %s pipe", ErrWrongState, p.kind))
	}
	return p.await.Run(in)
}

// Resume continues a Yielding pipe past its output. p is consumed.
func (p Pipe[I, O, R]) Resume() Pipe[I, O, R] {
	if p.kind != KindYielding {
		panic(fmt.Errorf("%w: Resume on a %s pipe", ErrWrongState, p.kind))
	}
	return p.resume.Run(Unit{})
}

func (p Pipe[I, O, R]) String() string {
	switch p.kind {
	case KindAwaiting:
		return "Awaiting(..)"
	case KindYielding:
		return fmt.Sprintf("Yielding(%v, ..)", p.output)
	default:
		return fmt.Sprintf("Finished(%v)", p.result)
	}
}

// Equal reports whether p and q are both Finished with equal results.
// Suspended pipes are never equal, not even to themselves.
func Equal[I, O any, R comparable](p, q Pipe[I, O, R]) bool {
	return p.kind == KindFinished && q.kind == KindFinished && p.result == q.result
}

// AndThen runs p and passes its result to f. A Finished p calls f right away;
// a suspended p gets f appended to its continuation in O(1). p is consumed.
func AndThen[I, O, A, B any](p Pipe[I, O, A], f func(A) Pipe[I, O, B]) Pipe[I, O, B] {
	switch p.kind {
	case KindAwaiting:
		return Awaiting(Append(p.await, f))
	case KindYielding:
		return Yielding(p.output, Append(p.resume, f))
	default:
		return f(p.result)
	}
}

// Map applies f to the result of p.
func Map[I, O, A, B any](p Pipe[I, O, A], f func(A) B) Pipe[I, O, B] {
	return AndThen(p, func(a A) Pipe[I, O, B] {
		return Finished[I, O](f(a))
	})
}

// Then runs p, discards its result, then runs next.
func Then[I, O, A, B any](p Pipe[I, O, A], next Pipe[I, O, B]) Pipe[I, O, B] {
	return AndThen(p, func(A) Pipe[I, O, B] {
		return next
	})
}
