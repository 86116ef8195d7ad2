// Package config loads program configuration with Viper.
//
// Values come from a YAML file, a .env file loaded through godotenv,
// environment variables carrying the program's prefix, and command-line
// flags bound through pflag, in increasing order of precedence.
//
// # Usage
//
//	var cfg Config
//	err := config.LoadConfig("conduit", &cfg,
//	    config.WithConfigFile(path),
//	    config.WithFlag("runner.max_steps", flags.Lookup("max-steps")),
//	)
//
// With the "conduit" name, CONDUIT_RUNNER_MAX_STEPS=100 sets
// runner.max_steps.
package config
