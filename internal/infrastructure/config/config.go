package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/rpncalc/internal/logging"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "RPN"

// Output formats understood by the shell
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all application configuration.
type Config struct {
	Shell   ShellConfig   `toml:"shell" yaml:"shell"`
	Logging LogConfig     `toml:"logging" yaml:"logging"`
	Metrics MetricsConfig `toml:"metrics" yaml:"metrics"`
}

// ShellConfig holds REPL settings.
type ShellConfig struct {
	Prompt string `envconfig:"PROMPT" toml:"prompt" yaml:"prompt"`
	Output string `envconfig:"OUTPUT" toml:"output" yaml:"output"`
	Banner bool   `envconfig:"BANNER" toml:"banner" yaml:"banner"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" toml:"level" yaml:"level"`
	Development bool   `envconfig:"LOG_DEV" toml:"development" yaml:"development"`
}

// MetricsConfig holds the optional metrics endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr        string   `envconfig:"METRICS_ADDR" toml:"addr" yaml:"addr"`
	RateLimit   int      `envconfig:"METRICS_RPS" toml:"rate_limit" yaml:"rate_limit"`
	Burst       int      `envconfig:"METRICS_BURST" toml:"burst" yaml:"burst"`
	CORSOrigins []string `envconfig:"METRICS_CORS_ORIGINS" toml:"cors_origins" yaml:"cors_origins"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt: "> ",
			Output: OutputText,
			Banner: true,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
		Metrics: MetricsConfig{
			RateLimit: 10,
			Burst:     20,
		},
	}
}

// Load reads configuration from environment variables on top of defaults.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads the optional config file at path, then applies environment
// overrides. The file format is chosen by extension: .toml, .yaml or .yml.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate rejects settings the shell or logger cannot honor.
func (c *Config) Validate() error {
	switch c.Shell.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Shell.Output, OutputText, OutputJSON)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Metrics.RateLimit < 0 || c.Metrics.Burst < 0 {
		return fmt.Errorf("metrics rate limit and burst must not be negative")
	}
	return nil
}

// LoggerConfig converts the logging section for logging.New
func (c *Config) LoggerConfig() logging.Config {
	base := logging.DefaultConfig()
	if c.Logging.Development {
		base = logging.DevelopmentConfig()
	}
	base.Level = c.Logging.Level
	return base
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
