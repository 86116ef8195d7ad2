package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kbukum/conduit/errors"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver handles finding and resolving config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns the explicit paths from opts, searching standard
// locations for whichever one was not given.
func (cr *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = cr.firstExisting(configSearchPaths(name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = cr.firstExisting([]string{".env." + name, ".env"})
	}
	return resolved
}

func configSearchPaths(name string) []string {
	paths := []string{
		fmt.Sprintf("./%s.yml", name),
		fmt.Sprintf("./%s.yaml", name),
		fmt.Sprintf("./config/%s.yml", name),
		"./config.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, fmt.Sprintf("%s/.config/%s/config.yml", home, name))
	}
	return paths
}

func (cr *Resolver) firstExisting(paths []string) string {
	for _, path := range paths {
		if cr.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	Flags      []flagBinding
}

type flagBinding struct {
	key  string
	flag *pflag.Flag
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path. Unlike a searched path,
// an explicit file that does not exist is an error.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithFlag binds a single command-line flag to a config key such as
// "runner.max_steps". The flag wins over every other source when it was set.
func WithFlag(key string, flag *pflag.Flag) LoaderOption {
	return func(lc *LoaderConfig) {
		if flag != nil {
			lc.Flags = append(lc.Flags, flagBinding{key: key, flag: flag})
		}
	}
}

// WithFlags binds every flag in fs to the key of the same name with dashes
// turned into underscores, so --log-level sets "log_level".
func WithFlags(fs *pflag.FlagSet) LoaderOption {
	return func(lc *LoaderConfig) {
		fs.VisitAll(func(f *pflag.Flag) {
			lc.Flags = append(lc.Flags, flagBinding{key: strings.ReplaceAll(f.Name, "-", "_"), flag: f})
		})
	}
}

// LoadConfig loads configuration for name into cfg. Sources, lowest
// precedence first: the YAML config file, a .env file, NAME_* environment
// variables, then bound flags.
func LoadConfig(name string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	if lc.ConfigFile != "" && !lc.FileSystem.Exists(lc.ConfigFile) {
		return errors.NotFound("config file", lc.ConfigFile)
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(name, lc)

	return loadFromResolvedFiles(name, cfg, files, lc)
}

func loadFromResolvedFiles(name string, cfg interface{}, files ResolvedFiles, lc LoaderConfig) error {
	v := viper.New()

	if files.ConfigFile != "" {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrap(err, errors.ErrCodeInvalidFormat, "failed to read config file").
				WithDetail("file", files.ConfigFile)
		}
	}

	// .env only fills variables the process does not already have
	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			return errors.IO("load env file", err).WithDetail("file", files.EnvFile)
		}
	}

	if err := bindEnvVars(v, EnvPrefix(name)); err != nil {
		return errors.Internal(err)
	}

	for _, b := range lc.Flags {
		if err := v.BindPFlag(b.key, b.flag); err != nil {
			return errors.Internal(err).WithDetail("flag", b.flag.Name)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidFormat,
			fmt.Sprintf("failed to unmarshal config for %s", name))
	}
	return nil
}

// EnvPrefix returns the environment prefix for name: "conduit" gives "CONDUIT_".
func EnvPrefix(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_")) + "_"
}

// bindEnvVars binds each prefixed environment variable to every key it could
// stand for, so CONDUIT_RUNNER_MAX_STEPS reaches "runner.max_steps".
func bindEnvVars(v *viper.Viper, prefix string) error {
	for _, env := range os.Environ() {
		key, _, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
			continue
		}
		for _, variant := range generateEnvKeyVariants(strings.TrimPrefix(key, prefix)) {
			if err := v.BindEnv(variant, key); err != nil {
				return err
			}
		}
	}
	return nil
}

// generateEnvKeyVariants creates all possible key variants for environment variable binding.
// Examples:
//
//	RUNNER_MAX_STEPS -> [runner_max_steps, runner.max.steps, runner.max_steps, runner_max.steps, ...]
//	LOGGING_LEVEL    -> [logging_level, logging.level]
func generateEnvKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")

	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}

	// one dot at every split point
	for i := 1; i < len(parts); i++ {
		prefix := strings.Join(parts[:i], ".")
		suffix := strings.Join(parts[i:], "_")
		variants = append(variants, prefix+"."+suffix)

		prefix = strings.Join(parts[:i], "_")
		suffix = strings.Join(parts[i:], ".")
		variants = append(variants, prefix+"."+suffix)
	}

	return removeDuplicates(variants)
}

func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
