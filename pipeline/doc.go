// Package pipeline provides ready-made stages built on the conduit core.
//
// Stages are plain conduit pipes, so they compose with conduit.Fuse and run
// with conduit.Connect or runner.Run. Nothing happens until a driver pulls:
// a Sink awaiting input makes its upstream step, and a Sink that finishes
// early stops the whole chain.
//
// # Stages
//
// Sources:
//
//   - FromSlice, Range, Empty: finite streams
//   - Repeat, Iterate: infinite streams, cut short by Take or Head
//   - Concat: sources one after another
//   - FromIterator, Lines: pull from an Iterator or an io.Reader
//
// Conduits:
//
//   - Identity, Map, Filter, FlatMap, Tap, Scan
//   - Take, Drop, TakeWhile: limit the stream
//   - Chunk: group elements into fixed-size slices
//   - Log: debug-log every element
//
// Sinks:
//
//   - Collect, Fold, Count, Head, Last, Drain, ForEach
//
// # Usage
//
//	src := conduit.Fuse(pipeline.Range(1, 6), pipeline.Map(func(n int) int { return n * 2 }))
//	evens := conduit.Fuse(src, pipeline.Filter(func(n int) bool { return n%4 == 0 }))
//	got := conduit.Connect(evens, pipeline.Collect[int]()) // [4 8]
//
// Failures are values: FromIterator and Lines produce Item[T] elements that
// carry either a value or the error that ended the stream.
package pipeline
