package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. FEEDLINE_SORT=true
const EnvPrefix = "FEEDLINE"

// ConfigName is the base name searched for in the working and home directories
const ConfigName = ".feedline"

// Config holds all configuration for feedline
type Config struct {
	Color            string   `mapstructure:"color"`
	Verbosity        string   `mapstructure:"verbosity"`
	Sort             bool     `mapstructure:"sort"`
	Jobs             int      `mapstructure:"jobs"`
	Check            bool     `mapstructure:"check"`
	Format           string   `mapstructure:"format"`
	Exclude          []string `mapstructure:"exclude"`
	RespectGitignore bool     `mapstructure:"respect_gitignore"`
	LogLevel         string   `mapstructure:"log_level"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

var defaultConfig = Config{
	Color:            "auto",
	Verbosity:        "normal",
	Sort:             false,
	Jobs:             1,
	Check:            false,
	Format:           "text",
	Exclude:          []string{},
	RespectGitignore: false,
	LogLevel:         "warn",
}

// Default returns a copy of the built-in defaults
func Default() *Config {
	c := defaultConfig
	c.Exclude = append([]string{}, defaultConfig.Exclude...)
	return &c
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// File, when set, is read instead of searching; it must exist.
	File string
	// SearchPaths overrides the default search locations ("." and "$HOME").
	SearchPaths []string
}

// LoadConfig loads configuration from defaults, an optional config file and
// FEEDLINE_* environment variables, in increasing precedence.
func LoadConfig(opts LoadOptions) (*Config, error) {
	v := viper.New()
	defaults := Default()

	v.SetDefault("color", defaults.Color)
	v.SetDefault("verbosity", defaults.Verbosity)
	v.SetDefault("sort", defaults.Sort)
	v.SetDefault("jobs", defaults.Jobs)
	v.SetDefault("check", defaults.Check)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("respect_gitignore", defaults.RespectGitignore)
	v.SetDefault("log_level", defaults.LogLevel)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if filepath.Ext(opts.File) == "" {
			v.SetConfigType("yaml")
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		paths := opts.SearchPaths
		if len(paths) == 0 {
			paths = []string{".", "$HOME"}
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
		if err := ValidateFile(used); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.File = used

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks values that may also arrive through the environment,
// which bypasses schema validation.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Color) {
	case "always", "never", "auto":
	default:
		return fmt.Errorf("invalid color %q (expected always, never or auto)", c.Color)
	}
	switch strings.ToLower(c.Verbosity) {
	case "quiet", "normal", "verbose":
	default:
		return fmt.Errorf("invalid verbosity %q (expected quiet, normal or verbose)", c.Verbosity)
	}
	switch strings.ToLower(c.Format) {
	case "text", "json", "yaml", "markdown":
	default:
		return fmt.Errorf("invalid format %q (expected text, json, yaml or markdown)", c.Format)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("invalid jobs %d (must be >= 0)", c.Jobs)
	}
	return nil
}
