// Package conduit is the pull-based coroutine core of a streaming library.
//
// A [Pipe] is a suspended computation in one of three states:
//
//   - Finished: it produced its result R and has no further steps
//   - Awaiting: it needs the next input (an [Option] of I, None once upstream is exhausted)
//   - Yielding: it emits one output O and continues when resumed
//
// Suspension is plain data. Nothing runs in the background and there are no
// goroutines. A pipe advances only when a driver ([Connect]) or a fusing peer
// ([Fuse]) feeds or resumes its stored [Continuation].
//
// # Roles
//
//   - [Source]: a pure producer, Pipe[Unit, O, Unit]
//   - [Sink]: a pure consumer, Pipe[I, Void, R]
//   - [Conduit]: a stage, Pipe[I, O, Unit]
//
// # Composition
//
//	src := pipeline.FromSlice([]int{1, 2, 3})
//	sink := conduit.Map(conduit.Await[int, conduit.Void](), func(in conduit.Option[int]) int {
//	    return 1 + in.OrElse(0)
//	})
//	conduit.Connect(src, sink) // 2
//
// [AndThen] appends to a FIFO continuation queue, so building a pipe out of n
// sequential steps and running it costs O(n) in total rather than O(n²).
//
// # Ownership
//
// Pipes and continuations are single-owner values. Every function that
// advances a pipe ([AndThen], [Map], [Fuse], [Connect], [Pipe.Feed],
// [Pipe.Resume], [Continuation.Run]) consumes its argument. Using a consumed
// suspended pipe again panics with [ErrConsumed]. Finished pipes and the bare
// results of [Await] and [Yield] hold no queue and may be reused.
//
// # Failures
//
// The core has no error channel. Failures a stage wants to report travel as
// ordinary values in O or R. Misusing the representation, for example a
// sink that reaches the Yielding state, is a programming defect and panics
// with [ErrSinkYielded], [ErrWrongState] or [ErrConsumed].
package conduit
