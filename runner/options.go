package runner

import (
	"github.com/google/uuid"

	"github.com/kbukum/conduit/logger"
	"github.com/kbukum/conduit/observability"
)

// Option configures a single Run.
type Option func(*options)

type options struct {
	cfg     Config
	log     *logger.Logger
	metrics *observability.Metrics
	name    string
	runID   string
}

func newOptions(opts []Option) *options {
	o := &options{name: "conduit"}
	for _, opt := range opts {
		opt(o)
	}
	o.cfg.ApplyDefaults()
	if o.log == nil {
		o.log = logger.Get("runner")
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	return o
}

// WithConfig sets the run bounds.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger sets the logger. It defaults to the "runner" component logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records every run on m. Runs are not recorded without it.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithName names the pipeline in logs, spans and metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithRunID sets the run id. A random UUID is used otherwise.
func WithRunID(id string) Option {
	return func(o *options) { o.runID = id }
}
