// Package config loads graphtrace settings. Sources are applied in order,
// each overriding the previous one: built-in defaults, an optional YAML
// file, an optional .env file, then GRAPHTRACE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

// Config is the full service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
	Trace  TraceConfig  `yaml:"trace"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`

	// RateLimit is requests per second across all clients; 0 disables it.
	RateLimit float64 `yaml:"rate_limit" validate:"gte=0"`
	Burst     int     `yaml:"burst" validate:"gte=0"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// StoreConfig selects and configures the snapshot backend.
type StoreConfig struct {
	Backend     string `yaml:"backend" validate:"oneof=memory badger postgres"`
	BadgerPath  string `yaml:"badger_path" validate:"required_if=Backend badger"`
	PostgresURL string `yaml:"postgres_url" validate:"required_if=Backend postgres"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// TraceConfig configures span export.
type TraceConfig struct {
	// Stdout writes finished spans as JSON to stderr.
	Stdout bool `yaml:"stdout"`
}

var validate = validator.New()

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8000",
			RateLimit:       50,
			Burst:           100,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Backend:    BackendMemory,
			BadgerPath: "data/graphtrace",
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Option adjusts how Load finds its sources.
type Option func(*loader)

type loader struct {
	envFile string
}

// WithEnvFile reads dotenv variables from path instead of ./.env.
func WithEnvFile(path string) Option {
	return func(l *loader) { l.envFile = path }
}

// Load builds the configuration. An empty path skips the YAML file; a
// missing .env file is ignored. Variables already set in the environment
// win over .env entries.
func Load(path string, opts ...Option) (*Config, error) {
	l := loader{envFile: ".env"}
	for _, opt := range opts {
		opt(&l)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", l.envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field rule.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	str := map[string]*string{
		"GRAPHTRACE_SERVER_ADDR":   &c.Server.Addr,
		"GRAPHTRACE_STORE_BACKEND": &c.Store.Backend,
		"GRAPHTRACE_BADGER_PATH":   &c.Store.BadgerPath,
		"GRAPHTRACE_POSTGRES_URL":  &c.Store.PostgresURL,
		"GRAPHTRACE_LOG_LEVEL":     &c.Log.Level,
		"GRAPHTRACE_LOG_FORMAT":    &c.Log.Format,
	}
	for key, dst := range str {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("GRAPHTRACE_RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: GRAPHTRACE_RATE_LIMIT: %w", err)
		}
		c.Server.RateLimit = f
	}
	if v, ok := os.LookupEnv("GRAPHTRACE_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: GRAPHTRACE_BURST: %w", err)
		}
		c.Server.Burst = n
	}
	if v, ok := os.LookupEnv("GRAPHTRACE_TRACE_STDOUT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: GRAPHTRACE_TRACE_STDOUT: %w", err)
		}
		c.Trace.Stdout = b
	}
	if v, ok := os.LookupEnv("GRAPHTRACE_SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: GRAPHTRACE_SHUTDOWN_TIMEOUT: %w", err)
		}
		c.Server.ShutdownTimeout = d
	}

	return nil
}
