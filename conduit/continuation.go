package conduit

import "github.com/emirpasic/gods/stacks/arraystack"

// Erased marks a type-erased intermediate value inside a continuation queue.
// Concrete types are recovered with a type assertion at the step boundary.
type Erased = any

// step is a queued function with its argument and result types erased.
type step[I, O any] func(Erased) Pipe[I, O, Erased]

// queue is a FIFO of steps kept as two stacks (a banker's queue). Steps are
// pushed onto back and popped from front; when front runs dry the whole of
// back is reversed into it, so every step is moved at most once.
//
// A queue holding a single step keeps it in head and allocates no stacks.
// head is only filled when the queue is empty, so it is always the oldest step.
//
// An element is either a step or a nested *queue that runs in its place.
// gen is bumped whenever a handle claims the queue; handles holding an older
// gen are stale.
type queue struct {
	head  any
	front *arraystack.Stack
	back  *arraystack.Stack
	moved int
	gen   uint64
}

// spliceLimit is the largest queue a suspension copies in front of the rest
// of its parent queue. Longer ones are nested as a single element.
const spliceLimit = 8

func (q *queue) len() int {
	n := 0
	if q.head != nil {
		n++
	}
	if q.front != nil {
		n += q.front.Size()
	}
	if q.back != nil {
		n += q.back.Size()
	}
	return n
}

func (q *queue) push(s any) {
	if q.len() == 0 {
		q.head = s
		return
	}
	if q.back == nil {
		q.back = arraystack.New()
	}
	q.back.Push(s)
}

func (q *queue) pop() (any, bool) {
	if q.head != nil {
		s := q.head
		q.head = nil
		return s, true
	}
	if q.front == nil || q.front.Empty() {
		if q.back == nil || q.back.Empty() {
			return nil, false
		}
		if q.front == nil {
			q.front = arraystack.New()
		}
		for {
			s, ok := q.back.Pop()
			if !ok {
				break
			}
			q.front.Push(s)
			q.moved++
		}
	}
	return q.front.Pop()
}

// prepend moves every element of src, in order, ahead of the elements of q.
// src must hold at most spliceLimit elements.
func (q *queue) prepend(src *queue) {
	var buf [spliceLimit]any
	n := 0
	for {
		v, ok := src.pop()
		if !ok {
			break
		}
		buf[n] = v
		n++
	}
	if n == 0 {
		return
	}
	if q.front == nil {
		q.front = arraystack.New()
	}
	if q.head != nil {
		q.front.Push(q.head)
		q.head = nil
	}
	for i := n - 1; i >= 0; i-- {
		q.front.Push(buf[i])
	}
}

// Continuation is what a suspended pipe does once it is given an A: it
// threads the value through its queued functions in order and ends up with a
// Pipe[I, O, B].
//
// The zero Continuation is the identity: running it with a yields Finished(a).
// Its only valid instantiation therefore has A == B; use [NewContinuation].
//
// A Continuation is used once. Append and Run consume it, and using it again
// panics with [ErrConsumed].
type Continuation[A, I, O, B any] struct {
	q   *queue
	gen uint64
}

// NewContinuation returns the identity continuation.
func NewContinuation[A, I, O any]() Continuation[A, I, O, A] {
	return Continuation[A, I, O, A]{}
}

// Len returns the number of queued functions.
func (k Continuation[A, I, O, B]) Len() int {
	if k.q == nil {
		return 0
	}
	return k.q.len()
}

// claim takes the queue out of k, leaving every copy of k stale.
func (k Continuation[A, I, O, B]) claim() *queue {
	if k.q == nil {
		return nil
	}
	if k.q.gen != k.gen {
		panic(ErrConsumed)
	}
	k.q.gen++
	return k.q
}

func extend[A, I, O, B any](k Continuation[A, I, O, B], s any) *queue {
	q := k.claim()
	if q == nil {
		q = &queue{}
	}
	q.push(s)
	return q
}

// Append queues f after the functions already in k. It costs O(1) amortized
// and never runs or inspects the queued functions. k is consumed.
func Append[A, I, O, B, C any](k Continuation[A, I, O, B], f func(B) Pipe[I, O, C]) Continuation[A, I, O, C] {
	q := extend(k, step[I, O](func(x Erased) Pipe[I, O, Erased] {
		return erase(f(unerase[B](x)))
	}))
	return Continuation[A, I, O, C]{q: q, gen: q.gen}
}

// Run feeds a through the queue. k is consumed.
func (k Continuation[A, I, O, B]) Run(a A) Pipe[I, O, B] {
	return unerasePipe[B](run[I, O](k.claim(), a))
}

// run pops steps while they finish synchronously. A nested queue is entered
// in place, with what is left of the current queue appended to it. When a
// step suspends, the rest of the queue is handed to the suspension: short
// continuations are spliced in front of it, long ones get it as one element.
// Either way nothing recurses.
func run[I, O any](q *queue, x Erased) Pipe[I, O, Erased] {
	for {
		if q == nil {
			return Pipe[I, O, Erased]{result: x}
		}
		v, ok := q.pop()
		if !ok {
			return Pipe[I, O, Erased]{result: x}
		}
		if nested, ok := v.(*queue); ok {
			if q.len() > 0 {
				nested.push(q)
			}
			q = nested
			continue
		}
		p := v.(step[I, O])(x)
		if p.kind == KindFinished {
			x = p.result
			continue
		}
		if q.len() == 0 {
			return p
		}
		if p.kind == KindAwaiting {
			p.await = attach(p.await, q)
		} else {
			p.resume = attach(p.resume, q)
		}
		return p
	}
}

// attach makes rest run after the functions in k.
func attach[A, I, O any](k Continuation[A, I, O, Erased], rest *queue) Continuation[A, I, O, Erased] {
	if k.Len() > spliceLimit {
		q := extend(k, rest)
		return Continuation[A, I, O, Erased]{q: q, gen: q.gen}
	}
	if q := k.claim(); q != nil {
		rest.prepend(q)
	}
	return Continuation[A, I, O, Erased]{q: rest, gen: rest.gen}
}

func unerase[T any](x Erased) T {
	if x == nil {
		var zero T
		return zero
	}
	return x.(T)
}

func erase[I, O, R any](p Pipe[I, O, R]) Pipe[I, O, Erased] {
	switch p.kind {
	case KindAwaiting:
		return Pipe[I, O, Erased]{kind: KindAwaiting, await: Continuation[Option[I], I, O, Erased]{q: p.await.q, gen: p.await.gen}}
	case KindYielding:
		return Pipe[I, O, Erased]{kind: KindYielding, output: p.output, resume: Continuation[Unit, I, O, Erased]{q: p.resume.q, gen: p.resume.gen}}
	default:
		return Pipe[I, O, Erased]{result: p.result}
	}
}

func unerasePipe[R, I, O any](p Pipe[I, O, Erased]) Pipe[I, O, R] {
	switch p.kind {
	case KindAwaiting:
		return Pipe[I, O, R]{kind: KindAwaiting, await: Continuation[Option[I], I, O, R]{q: p.await.q, gen: p.await.gen}}
	case KindYielding:
		return Pipe[I, O, R]{kind: KindYielding, output: p.output, resume: Continuation[Unit, I, O, R]{q: p.resume.q, gen: p.resume.gen}}
	default:
		return Pipe[I, O, R]{result: unerase[R](p.result)}
	}
}
