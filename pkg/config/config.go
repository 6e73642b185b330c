// Package config holds the settings for assertion checkers:
// how failures are logged and how much detail they carry.
// Settings come from defaults, an optional YAML file, and
// ASSERTS_* environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.asserts/pkg/env"
	"digital.vasic.asserts/pkg/logging"
)

// Log formats.
const (
	FormatNone    = "none"
	FormatConsole = "console"
	FormatJSON    = "json"
	// FormatBoth writes to the console and to the JSON log.
	FormatBoth = "both"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel   = "ASSERTS_LOG_LEVEL"
	EnvLogFormat  = "ASSERTS_LOG_FORMAT"
	EnvLogPath    = "ASSERTS_LOG_PATH"
	EnvFailureLog = "ASSERTS_FAILURE_LOG"
	EnvVerbose    = "ASSERTS_VERBOSE"
	EnvDetail     = "ASSERTS_DETAIL"
	EnvNoColor    = "ASSERTS_NO_COLOR"
)

// ErrInvalidConfig is returned by Validate and Load for
// settings that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds checker settings.
type Config struct {
	// LogLevel is the minimum level written: debug, info,
	// warn or error.
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the logger: none, console, json or
	// both.
	LogFormat string `yaml:"log_format"`

	// LogPath is the JSON log file. Empty means stdout.
	LogPath string `yaml:"log_path,omitempty"`

	// FailureLogPath receives one JSON line per failed
	// assertion when LogFormat is json.
	FailureLogPath string `yaml:"failure_log_path,omitempty"`

	// Verbose enables debug output.
	Verbose bool `yaml:"verbose"`

	// Detail appends operand dumps and diffs to failures.
	Detail bool `yaml:"detail"`

	// NoColor disables ANSI colors on the console.
	NoColor bool `yaml:"no_color"`
}

// Default returns a Config that logs nothing and reports
// failure detail.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: FormatNone,
		Detail:    true,
	}
}

// Load reads a YAML file over the defaults. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings with the ASSERTS_* variables
// visible to loader.
func (c *Config) ApplyEnv(loader env.Loader) error {
	if v := loader.Get(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := loader.Get(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := loader.Get(EnvLogPath); v != "" {
		c.LogPath = v
	}
	if v := loader.Get(EnvFailureLog); v != "" {
		c.FailureLogPath = v
	}

	flags := []struct {
		key string
		dst *bool
	}{
		{EnvVerbose, &c.Verbose},
		{EnvDetail, &c.Detail},
		{EnvNoColor, &c.NoColor},
	}
	for _, f := range flags {
		v, ok, err := loader.GetBool(f.key)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if ok {
			*f.dst = v
		}
	}

	return c.Validate()
}

// Validate checks the level and format names.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.format() {
	case FormatNone, FormatConsole, FormatJSON, FormatBoth:
		return nil
	default:
		return fmt.Errorf(
			"%w: unknown log format: %s", ErrInvalidConfig, c.LogFormat,
		)
	}
}

func (c *Config) format() string {
	f := strings.ToLower(strings.TrimSpace(c.LogFormat))
	if f == "" {
		return FormatNone
	}
	return f
}

// NewLogger builds the logger selected by LogFormat.
func (c *Config) NewLogger() (logging.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := logging.ParseLevel(c.LogLevel)
	verbose := c.Verbose || level == logging.LevelDebug

	console := func() logging.Logger {
		cl := logging.NewConsoleLoggerWriter(os.Stderr, verbose, c.NoColor)
		cl.SetLevel(level)
		return cl
	}
	jsonLogger := func() (*logging.JSONLogger, error) {
		return logging.NewJSONLogger(logging.LoggerConfig{
			OutputPath:  c.LogPath,
			FailurePath: c.FailureLogPath,
			Level:       level,
			Verbose:     verbose,
		})
	}

	switch c.format() {
	case FormatConsole:
		return console(), nil
	case FormatJSON:
		jl, err := jsonLogger()
		if err != nil {
			return nil, err
		}
		return jl, nil
	case FormatBoth:
		jl, err := jsonLogger()
		if err != nil {
			return nil, err
		}
		return logging.NewMultiLogger(console(), jl), nil
	default:
		return logging.NullLogger{}, nil
	}
}
