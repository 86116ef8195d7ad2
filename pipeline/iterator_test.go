package pipeline

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/kbukum/conduit/conduit"
	"github.com/kbukum/conduit/errors"
)

var errBoom = stderrors.New("boom")

type sliceIter[T any] struct {
	items    []T
	index    int
	failAt   int
	closeErr error
	closes   int
}

func newSliceIter[T any](items ...T) *sliceIter[T] {
	return &sliceIter[T]{items: items, failAt: -1}
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	if it.index == it.failAt {
		return zero, false, errBoom
	}
	if it.index >= len(it.items) {
		return zero, false, nil
	}
	v := it.items[it.index]
	it.index++
	return v, true, nil
}

func (it *sliceIter[T]) Close() error {
	it.closes++
	return it.closeErr
}

func collectItems[T any](src conduit.Source[Item[T]]) []Item[T] {
	return conduit.Connect(src, Collect[Item[T]]())
}

func TestFromIterator(t *testing.T) {
	it := newSliceIter(1, 2, 3)
	got := collectItems(FromIterator[int](context.Background(), it))
	want := []Item[int]{{Value: 1}, {Value: 2}, {Value: 3}}
	if diff := cmp.Diff(want, got, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if it.closes != 1 {
		t.Errorf("got %d closes, want 1", it.closes)
	}
}

func TestFromIterator_ErrorIsLastItem(t *testing.T) {
	it := newSliceIter(1, 2, 3)
	it.failAt = 2
	got := collectItems(FromIterator[int](context.Background(), it))
	want := []Item[int]{{Value: 1}, {Value: 2}, {Err: errBoom}}
	if diff := cmp.Diff(want, got, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if it.closes != 1 {
		t.Errorf("got %d closes, want 1", it.closes)
	}
}

func TestFromIterator_CloseError(t *testing.T) {
	closeErr := stderrors.New("close failed")
	it := newSliceIter("a")
	it.closeErr = closeErr
	got := collectItems(FromIterator[string](context.Background(), it))
	if len(got) != 2 || got[0].Value != "a" || !stderrors.Is(got[1].Err, closeErr) {
		t.Errorf("got %+v, want [a, close error]", got)
	}
}

func TestFromIterator_EarlyStopLeavesOpen(t *testing.T) {
	it := newSliceIter(1, 2, 3)
	head := conduit.Connect(FromIterator[int](context.Background(), it), Head[Item[int]]())
	if v, ok := head.Get(); !ok || v.Value != 1 {
		t.Errorf("got %v, want first item", head)
	}
	if it.closes != 0 {
		t.Errorf("iterator closed %d times, want 0", it.closes)
	}
	if it.index > 2 {
		t.Errorf("pulled %d values for one element", it.index)
	}
}

func TestValues(t *testing.T) {
	it := newSliceIter(1, 2, 3)
	it.failAt = 2
	got := run(FromIterator[int](context.Background(), it), Values[int]())
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestToIterator(t *testing.T) {
	var seen []int
	src := conduit.Fuse(FromSlice([]int{1, 2, 3}), Tap(func(n int) { seen = append(seen, n) }))
	it := ToIterator(src)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		v, ok, err := it.Next(ctx)
		if err != nil || !ok || v != want {
			t.Fatalf("Next: got (%d, %v, %v), want (%d, true, nil)", v, ok, err, want)
		}
		if len(seen) != want {
			t.Errorf("source ran ahead: saw %v after %d values", seen, want)
		}
	}
	if _, ok, err := it.Next(ctx); ok || err != nil {
		t.Errorf("expected exhaustion, got ok=%v err=%v", ok, err)
	}
	if _, ok, _ := it.Next(ctx); ok {
		t.Error("exhaustion should be sticky")
	}
	if err := it.Close(); err != nil {
		t.Errorf("Close returned %v", err)
	}
}

func TestToIterator_ContextCanceled(t *testing.T) {
	it := ToIterator(Repeat(1))
	ctx, cancel := context.WithCancel(context.Background())
	if _, ok, err := it.Next(ctx); !ok || err != nil {
		t.Fatalf("first Next failed: ok=%v err=%v", ok, err)
	}
	cancel()
	if _, _, err := it.Next(ctx); !stderrors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestToIterator_Close(t *testing.T) {
	it := ToIterator(Repeat("x"))
	if err := it.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := it.Next(context.Background()); ok {
		t.Error("closed iterator should be exhausted")
	}
}

func TestIteratorRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := FromIterator(ctx, ToIterator(Range(0, 4)))
	got := run(src, Values[int]())
	if diff := cmp.Diff([]int{0, 1, 2, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLines(t *testing.T) {
	got := run(Lines(strings.NewReader("alpha\nbeta\r\n\ngamma")), Values[string]())
	if diff := cmp.Diff([]string{"alpha", "beta", "", "gamma"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLines_ReadError(t *testing.T) {
	got := collectItems(Lines(iotest.ErrReader(errBoom)))
	if len(got) != 1 {
		t.Fatalf("expected one error item, got %+v", got)
	}
	if !errors.HasCode(got[0].Err, errors.ErrCodeIO) || !stderrors.Is(got[0].Err, errBoom) {
		t.Errorf("got %v, want IO_ERROR wrapping boom", got[0].Err)
	}
}

func TestLines_TooLong(t *testing.T) {
	input := "short\n" + strings.Repeat("x", DefaultMaxLineSize+1)
	got := collectItems(Lines(strings.NewReader(input)))
	if len(got) != 2 || got[0].Value != "short" {
		t.Fatalf("got %d items, want [short, error]", len(got))
	}
	if !errors.HasCode(got[1].Err, errors.ErrCodeIO) {
		t.Errorf("got %v, want IO_ERROR", got[1].Err)
	}
}

func TestLinesSize(t *testing.T) {
	got := collectItems(LinesSize(strings.NewReader("abc\nabcdefgh\n"), 6))
	if len(got) != 2 || got[0].Value != "abc" {
		t.Fatalf("got %+v, want [abc, error]", got)
	}
	if !errors.HasCode(got[1].Err, errors.ErrCodeIO) {
		t.Errorf("got %v, want IO_ERROR for a line over the limit", got[1].Err)
	}
}
