package main

import (
	"math"

	"github.com/kbukum/conduit/config"
	"github.com/kbukum/conduit/observability"
	"github.com/kbukum/conduit/pipeline"
	"github.com/kbukum/conduit/runner"
	"github.com/kbukum/conduit/util"
	"github.com/kbukum/conduit/validation"
)

// Config is the full configuration of the conduit command.
//
//	name: conduit
//	logging:
//	  level: info
//	runner:
//	  max_steps: 0
//	  check_every: 1024
//	input:
//	  max_line_size: 1MB
//	telemetry:
//	  endpoint: localhost:4318
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Input                InputConfig          `yaml:"input" mapstructure:"input"`
	Runner               runner.Config        `yaml:"runner" mapstructure:"runner"`
	Telemetry            observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// InputConfig controls how input is read.
type InputConfig struct {
	// MaxLineSize is the longest accepted line, e.g. "64KB". Empty means 1MB.
	MaxLineSize string `yaml:"max_line_size" mapstructure:"max_line_size"`
}

// MaxLineBytes parses MaxLineSize.
func (c InputConfig) MaxLineBytes() (int, error) {
	n, err := util.ParseSize(c.MaxLineSize, pipeline.DefaultMaxLineSize)
	if err != nil {
		return 0, err
	}
	if err := validation.New().Range("input.max_line_size", n, 1, math.MaxInt32).Err(); err != nil {
		return 0, err
	}
	return int(n), nil
}

// ApplyDefaults fills in unset fields across all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "conduit"
	}
	c.ServiceConfig.ApplyDefaults()
	c.Runner.ApplyDefaults()

	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = c.Name
	}
	if c.Telemetry.ServiceVersion == "" {
		c.Telemetry.ServiceVersion = c.Version
	}
	if c.Telemetry.Environment == "" {
		c.Telemetry.Environment = c.Environment
	}
	c.Telemetry.ApplyDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Runner.Validate(); err != nil {
		return err
	}
	if _, err := c.Input.MaxLineBytes(); err != nil {
		return err
	}
	return validation.Validate(&c.Telemetry)
}
