package pipeline

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"

	"github.com/kbukum/conduit/conduit"
	"github.com/kbukum/conduit/errors"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Item is an element of a stream that can fail: either a Value or the Err
// that ended the stream.
type Item[T any] struct {
	Value T
	Err   error
}

// Values drops the Item wrapper and stops at the first failed item. The
// error itself is not passed on; a sink that needs it should consume Items.
func Values[T any]() conduit.Conduit[Item[T], T] {
	return each(func(it Item[T]) conduit.Conduit[Item[T], T] {
		if it.Err != nil {
			return done[Item[T], T]()
		}
		return emit(it.Value, Values[T])
	}, done[Item[T], T])
}

// FromIterator pulls from it one value per driver tick. An error from Next
// becomes the last Item of the stream. The iterator is closed once it is
// exhausted or has failed, and a Close error is reported as a final Item.
//
// A stream abandoned early by its consumer leaves it open; the caller still
// owns Close in that case.
func FromIterator[T any](ctx context.Context, it Iterator[T]) conduit.Source[Item[T]] {
	return conduit.AndThen(conduit.Await[conduit.Unit, Item[T]](), func(tick conduit.Option[conduit.Unit]) conduit.Source[Item[T]] {
		if !tick.IsSome() {
			return closeIterator[T](it, nil)
		}
		v, ok, err := it.Next(ctx)
		if err != nil {
			return closeIterator[T](it, err)
		}
		if !ok {
			return closeIterator[T](it, nil)
		}
		return emit(Item[T]{Value: v}, func() conduit.Source[Item[T]] {
			return FromIterator(ctx, it)
		})
	})
}

func closeIterator[T any](it Iterator[T], cause error) conduit.Source[Item[T]] {
	if err := stderrors.Join(cause, it.Close()); err != nil {
		return emit(Item[T]{Err: err}, done[conduit.Unit, Item[T]])
	}
	return done[conduit.Unit, Item[T]]()
}

// ToIterator steps src on demand. Each Next resumes src past the value
// returned by the previous call, so src never runs ahead of the caller.
func ToIterator[T any](src conduit.Source[T]) Iterator[T] {
	return &sourceIter[T]{src: src}
}

type sourceIter[T any] struct {
	src     conduit.Source[T]
	pending bool
	closed  bool
}

func (it *sourceIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.closed {
		return zero, false, nil
	}
	if it.pending {
		it.pending = false
		it.src = it.src.Resume()
	}
	for {
		if err := ctx.Err(); err != nil {
			return zero, false, err
		}
		switch it.src.Kind() {
		case conduit.KindFinished:
			it.closed = true
			return zero, false, nil
		case conduit.KindAwaiting:
			it.src = it.src.Feed(conduit.Some(conduit.Unit{}))
		default:
			v, _ := it.src.Output()
			it.pending = true
			return v, true, nil
		}
	}
}

func (it *sourceIter[T]) Close() error {
	it.closed = true
	it.src = conduit.Source[T]{}
	return nil
}

// DefaultMaxLineSize is the longest line Lines accepts.
const DefaultMaxLineSize = 1 << 20

// Lines yields the lines of r without their line endings. A read error, or
// a line longer than DefaultMaxLineSize, ends the stream with an IO_ERROR
// Item. r is not closed.
func Lines(r io.Reader) conduit.Source[Item[string]] {
	return LinesSize(r, DefaultMaxLineSize)
}

// LinesSize is Lines with a custom line length limit in bytes.
func LinesSize(r io.Reader, maxLineSize int) conduit.Source[Item[string]] {
	if maxLineSize <= 0 {
		maxLineSize = DefaultMaxLineSize
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxLineSize)), maxLineSize)
	return FromIterator[string](context.Background(), &lineIter{sc: sc})
}

type lineIter struct {
	sc *bufio.Scanner
}

func (it *lineIter) Next(context.Context) (string, bool, error) {
	if it.sc.Scan() {
		return it.sc.Text(), true, nil
	}
	if err := it.sc.Err(); err != nil {
		return "", false, errors.IO("read lines", err)
	}
	return "", false, nil
}

func (it *lineIter) Close() error { return nil }
