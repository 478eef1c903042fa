package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/thruflo/armstrong/internal/logging"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultLogLevel = "warn"
	DefaultMaxSpan  = 0
)

// Environment variables that override file values.
const (
	EnvLogLevel = "ARMSTRONG_LOG_LEVEL"
	EnvMaxSpan  = "ARMSTRONG_MAX_SPAN"
)

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Logging: Logging{Level: DefaultLogLevel},
		Scan:    Scan{MaxSpan: DefaultMaxSpan},
	}
}

// DefaultPath returns the config file location under basePath.
func DefaultPath(basePath string) string {
	return filepath.Join(basePath, ".armstrong", "config.yaml")
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads and parses the YAML file at path.
// If the file doesn't exist, returns default config.
// Applies defaults for any missing fields.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnv overrides cfg with any values set in the environment as seen
// through lookup, then revalidates.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvMaxSpan); ok && v != "" {
		span, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return ValidationError{Field: EnvMaxSpan, Message: "must be a non-negative integer"}
		}
		cfg.Scan.MaxSpan = span
	}
	return ValidateConfig(cfg)
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return ValidationError{Field: "logging.level", Message: "must be one of debug, info, warn, error"}
	}
	return nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
