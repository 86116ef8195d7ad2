// Package runner drives a source into a sink with the operational concerns
// a bare conduit.Connect leaves out: context cancellation, a step budget,
// run ids, structured logs, a trace span and run metrics.
//
//	total, stats, err := runner.Run(ctx, src, pipeline.Count[string](),
//	    runner.WithName("lines"),
//	    runner.WithConfig(runner.Config{MaxSteps: 1_000_000}),
//	)
//
// The driving order is exactly that of conduit.Connect, so a pipeline gives
// the same result under either.
package runner
