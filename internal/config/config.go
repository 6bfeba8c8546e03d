// Package config loads unitlite settings from defaults, an optional config
// file, a .env file and UNITLITE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Console ConsoleConfig `mapstructure:"console"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig controls where the last run is stored
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"`
}

// ConsoleConfig controls console reporting
type ConsoleConfig struct {
	Color       bool `mapstructure:"color"`
	Progress    bool `mapstructure:"progress"`
	PadFailures bool `mapstructure:"pad_failures"`
}

// HistoryConfig controls the run history database
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
}

// LoggingConfig controls diagnostics logging
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:    DefaultOutputDir,
			File:   DefaultOutputFile,
			Format: DefaultOutputFormat,
		},
		Console: ConsoleConfig{
			Color: true,
		},
		History: HistoryConfig{
			Driver: DefaultHistoryDriver,
			DSN:    DefaultHistoryDSN,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads configuration. configPath may be empty, in which case an
// optional .unitlite.yaml in the working directory is used. Variables from a
// .env file in the working directory are loaded into the environment first.
// The result is not validated; callers validate after applying flag overrides.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := New()
	v.SetDefault("output.dir", def.Output.Dir)
	v.SetDefault("output.file", def.Output.File)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("console.color", def.Console.Color)
	v.SetDefault("console.progress", def.Console.Progress)
	v.SetDefault("console.pad_failures", def.Console.PadFailures)
	v.SetDefault("history.enabled", def.History.Enabled)
	v.SetDefault("history.driver", def.History.Driver)
	v.SetDefault("history.dsn", def.History.DSN)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if !slices.Contains(SupportedFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format %q: must be one of %v", c.Output.Format, SupportedFormats)
	}
	if !slices.Contains(SupportedDrivers, c.History.Driver) {
		return fmt.Errorf("invalid history driver %q: must be one of %v", c.History.Driver, SupportedDrivers)
	}
	return nil
}

// GetOutputPath returns the absolute path of the stored last run, so every
// command reads and writes the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.Output.Dir, c.Output.File+"."+c.Output.Format)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
