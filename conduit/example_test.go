package conduit_test

import (
	"fmt"

	"github.com/kbukum/conduit/conduit"
)

func Example() {
	// produce 42, then add one to whatever arrives
	src := conduit.Yield[conduit.Unit](42)
	sink := conduit.Map(conduit.Await[int, conduit.Void](), func(in conduit.Option[int]) int {
		return 1 + in.OrElse(0)
	})
	fmt.Println(conduit.Connect(src, sink))
	// Output: 43
}

func ExampleFuse() {
	src := conduit.Then(conduit.Yield[conduit.Unit](1), conduit.Yield[conduit.Unit](2))

	var double func() conduit.Conduit[int, int]
	double = func() conduit.Conduit[int, int] {
		return conduit.AndThen(conduit.Await[int, int](), func(in conduit.Option[int]) conduit.Conduit[int, int] {
			v, ok := in.Get()
			if !ok {
				return conduit.Finished[int, int](conduit.Unit{})
			}
			return conduit.Then(conduit.Yield[int](v*2), double())
		})
	}

	var total func(acc int) conduit.Sink[int, int]
	total = func(acc int) conduit.Sink[int, int] {
		return conduit.AndThen(conduit.Await[int, conduit.Void](), func(in conduit.Option[int]) conduit.Sink[int, int] {
			v, ok := in.Get()
			if !ok {
				return conduit.Finished[int, conduit.Void](acc)
			}
			return total(acc + v)
		})
	}

	fmt.Println(conduit.Connect(conduit.Fuse(src, double()), total(0)))
	// Output: 6
}

func ExamplePipe_String() {
	fmt.Println(conduit.Finished[int, int]("done"))
	fmt.Println(conduit.Yield[int](7))
	fmt.Println(conduit.Await[int, int]())
	// Output:
	// Finished(done)
	// Yielding(7, ..)
	// Awaiting(..)
}
