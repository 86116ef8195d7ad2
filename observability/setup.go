package observability

import (
	"context"
	"errors"
)

// Setup initializes tracing and metrics when cfg.Enabled and returns a
// shutdown function that flushes both. With export disabled it installs
// nothing and the shutdown function is a no-op.
func Setup(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if !cfg.Enabled() {
		return func(context.Context) error { return nil }, nil
	}
	cfg.ApplyDefaults()

	tp, err := InitTracer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	mp, err := InitMeter(ctx, cfg)
	if err != nil {
		return nil, errors.Join(err, tp.Shutdown(ctx))
	}
	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
