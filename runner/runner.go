package runner

import (
	"context"
	stderrors "errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/conduit/conduit"
	"github.com/kbukum/conduit/errors"
	"github.com/kbukum/conduit/logger"
	"github.com/kbukum/conduit/observability"
)

const operation = "conduit.run"

// Stats describes a finished run.
type Stats struct {
	RunID string `json:"run_id"`
	// Steps counts every feed or resume performed by the driver.
	Steps int64 `json:"steps"`
	// Elements counts values handed from the source to the sink.
	Elements int64 `json:"elements"`
	// SourceResumes counts the times an awaiting source was resumed with a tick.
	SourceResumes int64         `json:"source_resumes"`
	Duration      time.Duration `json:"duration"`
}

// Run drives src into sink and returns the sink's result.
//
// The driving order is that of conduit.Connect. A sink that yields is
// reported as INTERNAL_ERROR instead of a panic. Cancellation of ctx returns
// CANCELED or TIMEOUT, and running out of Config.MaxSteps returns
// STEP_LIMIT_EXCEEDED; Stats are returned in every case once the run started.
func Run[O, R any](ctx context.Context, src conduit.Source[O], sink conduit.Sink[O, R], opts ...Option) (R, *Stats, error) {
	var zero R
	o := newOptions(opts)
	if err := o.cfg.Validate(); err != nil {
		return zero, nil, err
	}
	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanRun, trace.WithAttributes(
		attribute.String(observability.AttrPipeline, o.name),
		attribute.String(observability.AttrRunID, o.runID),
	))
	defer span.End()

	log := o.log.WithContext(ctx).WithFields(logger.Fields(
		logger.FieldRunID, o.runID,
		logger.FieldPipeline, o.name,
	))
	log.Debug("run started", logger.Fields("max_steps", o.cfg.MaxSteps))

	stats := &Stats{RunID: o.runID}
	start := time.Now()
	result, err := drive(ctx, src, sink, o.cfg, stats, log)
	stats.Duration = time.Since(start)

	o.report(ctx, span, log, stats, err)
	if err != nil {
		return zero, stats, err
	}
	return result, stats, nil
}

func drive[O, R any](ctx context.Context, src conduit.Source[O], sink conduit.Sink[O, R], cfg Config, stats *Stats, log *logger.Logger) (R, error) {
	var zero R
	checkEvery := int64(cfg.CheckEvery)
	for {
		switch sink.Kind() {
		case conduit.KindFinished:
			r, _ := sink.Result()
			return r, nil
		case conduit.KindYielding:
			return zero, errors.Internal(conduit.ErrSinkYielded)
		}

		if cfg.MaxSteps > 0 && stats.Steps >= cfg.MaxSteps {
			return zero, errors.StepLimitExceeded(cfg.MaxSteps)
		}
		if stats.Steps%checkEvery == 0 {
			if err := contextError(ctx); err != nil {
				return zero, err
			}
		}
		stats.Steps++

		switch src.Kind() {
		case conduit.KindFinished:
			sink = sink.Feed(conduit.None[O]())
		case conduit.KindAwaiting:
			stats.SourceResumes++
			src = src.Feed(conduit.Some(conduit.Unit{}))
		default:
			v, _ := src.Output()
			src = src.Resume()
			sink = sink.Feed(conduit.Some(v))
			stats.Elements++
			if cfg.LogEvery > 0 && stats.Elements%cfg.LogEvery == 0 {
				log.Debug("run progress", logger.Fields(
					logger.FieldElements, stats.Elements,
					logger.FieldSteps, stats.Steps,
				))
			}
		}
	}
}

func contextError(ctx context.Context) error {
	err := ctx.Err()
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Timeout(operation).WithCause(err)
	default:
		return errors.Canceled(operation).WithCause(err)
	}
}

func (o *options) report(ctx context.Context, span trace.Span, log *logger.Logger, stats *Stats, err error) {
	span.SetAttributes(
		attribute.Int64(observability.AttrSteps, stats.Steps),
		attribute.Int64(observability.AttrElements, stats.Elements),
	)
	fields := logger.Fields(
		logger.FieldSteps, stats.Steps,
		logger.FieldElements, stats.Elements,
		logger.FieldSourceResumes, stats.SourceResumes,
	)
	record := observability.RunRecord{
		Pipeline: o.name,
		Steps:    stats.Steps,
		Elements: stats.Elements,
		Duration: stats.Duration,
	}

	if err != nil {
		code := string(errors.From(err).Code)
		record.ErrorCode = code
		span.SetAttributes(
			attribute.String(observability.AttrStatus, "error"),
			attribute.String(observability.AttrErrorCode, code),
		)
		observability.SetSpanError(span, err)
		if errors.HasCode(err, errors.ErrCodeCanceled) {
			log.WithError(err).Info("run canceled", fields, logger.DurationFields(operation, stats.Duration))
		} else {
			log.WithError(err).Warn("run failed", fields, logger.DurationFields(operation, stats.Duration))
		}
	} else {
		span.SetAttributes(attribute.String(observability.AttrStatus, "ok"))
		log.Info("run finished", fields, logger.DurationFields(operation, stats.Duration))
	}

	if o.metrics != nil {
		o.metrics.RecordRun(ctx, record)
	}
}
