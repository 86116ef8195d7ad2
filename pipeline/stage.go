package pipeline

import "github.com/kbukum/conduit/conduit"

// each awaits one input and passes it to body, or returns done() once
// upstream is exhausted.
func each[I, O, R any](body func(I) conduit.Pipe[I, O, R], done func() conduit.Pipe[I, O, R]) conduit.Pipe[I, O, R] {
	return conduit.AndThen(conduit.Await[I, O](), func(in conduit.Option[I]) conduit.Pipe[I, O, R] {
		v, ok := in.Get()
		if !ok {
			return done()
		}
		return body(v)
	})
}

// emit yields o and continues with next() when resumed.
func emit[I, O, R any](o O, next func() conduit.Pipe[I, O, R]) conduit.Pipe[I, O, R] {
	return conduit.AndThen(conduit.Yield[I](o), func(conduit.Unit) conduit.Pipe[I, O, R] {
		return next()
	})
}

// emitAll yields every element of os in order, then continues with next().
func emitAll[I, O, R any](os []O, next func() conduit.Pipe[I, O, R]) conduit.Pipe[I, O, R] {
	if len(os) == 0 {
		return next()
	}
	return emit(os[0], func() conduit.Pipe[I, O, R] {
		return emitAll(os[1:], next)
	})
}

func done[I, O any]() conduit.Pipe[I, O, conduit.Unit] {
	return conduit.Finished[I, O](conduit.Unit{})
}
