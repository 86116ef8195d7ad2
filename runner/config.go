package runner

import (
	"time"

	"github.com/kbukum/conduit/validation"
)

const defaultCheckEvery = 1024

// Config bounds a run.
type Config struct {
	// MaxSteps aborts the run after this many driving steps. Zero means no limit.
	MaxSteps int64 `yaml:"max_steps,omitempty" mapstructure:"max_steps" validate:"gte=0"`
	// CheckEvery is how many steps pass between context checks.
	CheckEvery int `yaml:"check_every,omitempty" mapstructure:"check_every" validate:"gte=1"`
	// LogEvery logs progress at debug level every LogEvery elements. Zero disables it.
	LogEvery int64 `yaml:"log_every,omitempty" mapstructure:"log_every" validate:"gte=0"`
	// Timeout bounds the run's wall-clock time. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout,omitempty" mapstructure:"timeout" validate:"gte=0"`
}

// ApplyDefaults fills in zero values.
func (c *Config) ApplyDefaults() {
	if c.CheckEvery == 0 {
		c.CheckEvery = defaultCheckEvery
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
