// Package config loads and holds the ghgfocus configuration file.
//
// Configuration lives at ~/.ghgfocus/config.yaml and covers logging, output
// defaults, cache behavior, and user-defined coefficient scenarios. The
// loaded config is held globally for the CLI; the engine never reads it
// directly and receives everything it needs as explicit arguments.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rshade/ghgfocus/internal/logging"
)

// configDirName is the per-user configuration directory under $HOME.
const configDirName = ".ghgfocus"

// ConfigFileName is the configuration file name inside the config directory.
const ConfigFileName = "config.yaml"

// Output format names accepted by the CLI.
const (
	OutputFormatTable  = "table"
	OutputFormatJSON   = "json"
	OutputFormatNDJSON = "ndjson"
)

// ErrInvalidOutputFormat is returned when the configured default output
// format is not one of table, json, or ndjson.
var ErrInvalidOutputFormat = errors.New("output format must be table, json, or ndjson")

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
	// Format selects "console" or "json" log output.
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	// File directs logs to a file instead of stderr when set.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// ToLoggingConfig bridges the config section to the logging package.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := "stderr"
	if lc.File != "" {
		output = "file"
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// OutputConfig is the output section of the config file.
type OutputConfig struct {
	// DefaultFormat is the report format used when --output is not given.
	DefaultFormat string `yaml:"default_format,omitempty" json:"default_format,omitempty"`
}

// CacheConfig is the cache section of the config file.
type CacheConfig struct {
	// Enabled turns recompute memoization on.
	Enabled bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	// TTLSeconds is the entry lifetime; 0 means entries never expire.
	TTLSeconds int `yaml:"ttl_seconds,omitempty" json:"ttl_seconds,omitempty"`
}

// Config is the root of the configuration file.
type Config struct {
	Logging   LoggingConfig    `yaml:"logging,omitempty" json:"logging,omitempty"`
	Output    OutputConfig     `yaml:"output,omitempty" json:"output,omitempty"`
	Cache     CacheConfig      `yaml:"cache,omitempty" json:"cache,omitempty"`
	Scenarios []ScenarioConfig `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
}

// Validate checks the config for values the CLI cannot act on.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case "", OutputFormatTable, OutputFormatJSON, OutputFormatNDJSON:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	for _, sc := range c.Scenarios {
		if err := sc.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// globalConfig is the process-wide configuration, set once at CLI startup.
//
//nolint:gochecknoglobals // Intentionally global for application-wide access.
var globalConfig = &Config{}

// globalMu guards globalConfig.
//
//nolint:gochecknoglobals // Guards the global config state.
var globalMu sync.RWMutex

// GetGlobalConfig returns the process-wide configuration.
func GetGlobalConfig() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// SetGlobalConfig replaces the process-wide configuration.
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// GetLoggingConfig returns a copy of the global logging section.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

// GetDefaultOutputFormat returns the configured default output format,
// falling back to the table format.
func GetDefaultOutputFormat() string {
	if f := GetGlobalConfig().Output.DefaultFormat; f != "" {
		return f
	}
	return OutputFormatTable
}

// DefaultConfigPath returns ~/.ghgfocus/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName, ConfigFileName), nil
}

// Load reads and validates the config file at path. A missing file is not
// an error: it yields the zero config so ghgfocus works out of the box.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Config path is user-controlled by design.
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EnsureLogDir creates the directory for the configured log file.
func EnsureLogDir() error {
	file := GetGlobalConfig().Logging.File
	if file == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(file), 0750)
}

// Save writes cfg to path, creating the parent directory as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
