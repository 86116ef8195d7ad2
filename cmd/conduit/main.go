// Command conduit counts lines, words and bytes of a file or stdin by
// driving a conduit pipeline.
//
//	conduit [flags] [file]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/conduit/config"
	"github.com/kbukum/conduit/errors"
	"github.com/kbukum/conduit/logger"
	"github.com/kbukum/conduit/observability"
	"github.com/kbukum/conduit/runner"
	"github.com/kbukum/conduit/validation"
	"github.com/kbukum/conduit/version"
)

const exitUsage = 64

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cliFlags struct {
	configFile  string
	jsonOutput  bool
	keepEmpty   bool
	showVersion bool
	runID       string
}

func newFlagSet(stderr io.Writer) (*pflag.FlagSet, *cliFlags) {
	f := &cliFlags{}
	fs := pflag.NewFlagSet("conduit", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: conduit [flags] [file]")
		fs.PrintDefaults()
	}

	fs.StringVar(&f.configFile, "config", "", "path to a YAML config file")
	fs.BoolVar(&f.jsonOutput, "json", false, "print results and errors as JSON")
	fs.BoolVar(&f.keepEmpty, "keep-empty", false, "count blank lines")
	fs.BoolVar(&f.showVersion, "version", false, "print the version and exit")
	fs.StringVar(&f.runID, "run-id", "", "UUID to tag the run with")

	fs.Int64("max-steps", 0, "abort after this many driving steps (0 = unlimited)")
	fs.Duration("timeout", 0, "abort after this long (0 = no timeout)")
	fs.String("log-level", "", "log level: trace, debug, info, warn, error, disabled")
	fs.String("log-format", "", "log format: console, json, pretty")
	fs.String("max-line-size", "", "longest accepted line, e.g. 64KB (default 1MB)")
	fs.String("otlp-endpoint", "", "OTLP HTTP endpoint (host:port) for traces and metrics")
	return fs, f
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, f := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return exitUsage
	}

	if f.showVersion {
		info := version.Get()
		if f.jsonOutput {
			_ = json.NewEncoder(stdout).Encode(info)
		} else {
			fmt.Fprintln(stdout, "conduit", info.String())
		}
		return 0
	}

	cfg, err := loadConfig(fs, f)
	if err != nil {
		return fail(stderr, f.jsonOutput, err)
	}

	log := logger.NewWithWriter(&cfg.Logging, cfg.Name, stderr)
	logger.SetGlobalLogger(log)
	logger.RegisterDefaults("runner", "pipeline")

	shutdown, err := observability.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fail(stderr, f.jsonOutput, errors.Internal(err))
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn("telemetry shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
	}()

	opts := []runner.Option{
		runner.WithConfig(cfg.Runner),
		runner.WithLogger(logger.Get("runner")),
		runner.WithName("wordcount"),
		runner.WithRunID(f.runID),
	}
	if cfg.Telemetry.Enabled() {
		metrics, err := observability.DefaultMetrics()
		if err != nil {
			return fail(stderr, f.jsonOutput, errors.Internal(err))
		}
		opts = append(opts, runner.WithMetrics(metrics))
	}

	in, closeInput, err := openInput(fs.Args(), stdin)
	if err != nil {
		return fail(stderr, f.jsonOutput, err)
	}
	defer closeInput()

	maxLine, err := cfg.Input.MaxLineBytes()
	if err != nil {
		return fail(stderr, f.jsonOutput, err)
	}

	var counts Counts
	var stats *runner.Stats
	err = runTask(ctx, log, func(ctx context.Context) error {
		var runErr error
		counts, stats, runErr = runner.Run(ctx, wordCount(in, maxLine, logger.Get("pipeline"), f.keepEmpty), tally(), opts...)
		if runErr != nil {
			return runErr
		}
		return counts.err
	})
	if err != nil {
		return fail(stderr, f.jsonOutput, err)
	}

	if f.jsonOutput {
		_ = json.NewEncoder(stdout).Encode(struct {
			Counts
			Stats *runner.Stats `json:"stats"`
		}{counts, stats})
	} else {
		fmt.Fprintf(stdout, "%d %d %d\n", counts.Lines, counts.Words, counts.Bytes)
	}
	return 0
}

func loadConfig(fs *pflag.FlagSet, f *cliFlags) (*Config, error) {
	if err := validation.New().OptionalUUID("run_id", f.runID).Err(); err != nil {
		return nil, err
	}

	opts := []config.LoaderOption{
		config.WithFlag("runner.max_steps", fs.Lookup("max-steps")),
		config.WithFlag("runner.timeout", fs.Lookup("timeout")),
		config.WithFlag("logging.level", fs.Lookup("log-level")),
		config.WithFlag("logging.format", fs.Lookup("log-format")),
		config.WithFlag("input.max_line_size", fs.Lookup("max-line-size")),
		config.WithFlag("telemetry.endpoint", fs.Lookup("otlp-endpoint")),
	}
	if f.configFile != "" {
		opts = append(opts, config.WithConfigFile(f.configFile))
	}

	cfg := &Config{}
	if err := config.LoadConfig("conduit", cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Version == "" {
		cfg.Version = version.Get().Short()
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openInput(args []string, stdin io.Reader) (io.Reader, func(), error) {
	if len(args) == 0 {
		return stdin, func() {}, nil
	}
	if err := validation.New().Custom(len(args) == 1, "file", "at most one input file is accepted").Err(); err != nil {
		return nil, nil, err
	}

	file, err := os.Open(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.NotFound("input file", args[0]).WithCause(err)
		}
		return nil, nil, errors.IO("open input", err)
	}
	return file, func() { _ = file.Close() }, nil
}

// fail reports err on stderr and returns its exit code.
func fail(stderr io.Writer, asJSON bool, err error) int {
	appErr := errors.From(err)
	if asJSON {
		_ = json.NewEncoder(stderr).Encode(appErr.ToReport())
	} else {
		fmt.Fprintf(stderr, "conduit: %s\n", appErr.Message)
	}
	return appErr.ExitCode
}
