package conduit

// Fuse pipes the outputs of up into the inputs of down.
//
// Downstream drives: if down is Finished the fusion is done and up is
// dropped; if down is Yielding its output passes straight through before up
// is looked at. Only an Awaiting down makes up progress. A Finished up
// answers with None, a Yielding up hands its value over, and an Awaiting up
// makes the fused pipe Awaiting.
//
// Hand-offs that need no outside input run in a loop here, so a long
// synchronous chain does not grow the stack. up and down are consumed.
func Fuse[I, O, C, R any](up Pipe[I, O, Unit], down Pipe[O, C, R]) Pipe[I, C, R] {
	for {
		switch down.kind {
		case KindFinished:
			return Finished[I, C](down.result)
		case KindYielding:
			u, k := up, down.resume
			return Yielding(down.output, Append(NewContinuation[Unit, I, C](), func(Unit) Pipe[I, C, R] {
				return Fuse(u, k.Run(Unit{}))
			}))
		}

		switch up.kind {
		case KindFinished:
			down = down.await.Run(None[O]())
		case KindYielding:
			o := up.output
			up = up.resume.Run(Unit{})
			down = down.await.Run(Some(o))
		default:
			k, d := up.await, down
			return Awaiting(Append(NewContinuation[Option[I], I, C](), func(in Option[I]) Pipe[I, C, R] {
				return Fuse(k.Run(in), d)
			}))
		}
	}
}

// Connect pulls values from src and pushes them into sink until sink is
// Finished, and returns its result. It loops rather than recurses, so the
// length of the stream does not affect the stack.
//
// An Awaiting src is resumed with Some(Unit{}). Once src is Finished, sink
// is fed None on every request. src and sink are consumed.
func Connect[O, R any](src Source[O], sink Sink[O, R]) R {
	for {
		switch sink.kind {
		case KindFinished:
			return sink.result
		case KindYielding:
			panic(ErrSinkYielded)
		}

		switch src.kind {
		case KindFinished:
			sink = sink.await.Run(None[O]())
		case KindAwaiting:
			src = src.await.Run(Some(Unit{}))
		default:
			o := src.output
			src = src.resume.Run(Unit{})
			sink = sink.await.Run(Some(o))
		}
	}
}

// ToProducer lets a Source stand where any input type is expected. The
// source's own Awaiting steps are resumed with Some(Unit{}) as Connect would,
// and the outer input is never consumed.
func ToProducer[I, O any](src Source[O]) Pipe[I, O, Unit] {
	for {
		switch src.kind {
		case KindFinished:
			return Finished[I, O](src.result)
		case KindAwaiting:
			src = src.await.Run(Some(Unit{}))
		default:
			k := src.resume
			return Yielding(src.output, Append(NewContinuation[Unit, I, O](), func(Unit) Pipe[I, O, Unit] {
				return ToProducer[I](k.Run(Unit{}))
			}))
		}
	}
}

// ToConsumer lets a Sink stand where any output type is expected. It is
// rebuilt state by state; a Sink never yields, so no output is ever produced.
func ToConsumer[O, I, R any](sink Sink[I, R]) Pipe[I, O, R] {
	switch sink.kind {
	case KindFinished:
		return Finished[I, O](sink.result)
	case KindAwaiting:
		k := sink.await
		return Awaiting(Append(NewContinuation[Option[I], I, O](), func(in Option[I]) Pipe[I, O, R] {
			return ToConsumer[O](k.Run(in))
		}))
	default:
		panic(ErrSinkYielded)
	}
}
