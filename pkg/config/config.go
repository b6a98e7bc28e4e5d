// Package config provides the tool-level settings for initpkg: network
// timeouts, log level and output format. Settings live in a YAML file inside
// the application directory and fall back to sensible defaults when the file
// is absent. The repository URL and the installed set are not settings; they
// belong to the persistent state (pkg/state).
package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/gopu-inc/initpkg/pkg/fsutil"
	"gopkg.in/yaml.v3"
)

// Config represents the tool configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// HTTPTimeout bounds every index and artifact request.
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// OutputFormat is text or json.
	OutputFormat string `yaml:"output_format"`
}

// Default configuration values.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// YAMLIndent is the number of spaces used for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			HTTPTimeout:  DefaultHTTPTimeout,
			LogLevel:     "info",
			OutputFormat: "text",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// default configuration; a malformed one is an error.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig saves configuration to a file, atomically via temp file + rename.
func (c *Config) SaveConfig(path string) error {
	if err := fsutil.EnsureFileDir(path); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	tempPath := path + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(err, "failed to create config file")
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(err, "failed to encode config")
	}

	_ = encoder.Close()
	if err := file.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(err, "failed to close config file")
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(err, "failed to replace config file")
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Settings.HTTPTimeout < 0 {
		return errors.Wrap(errors.ErrConfigParse, "http_timeout cannot be negative")
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Settings.OutputFormat] {
		return errors.Wrapf(errors.ErrConfigParse, "invalid output format %q", c.Settings.OutputFormat)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Settings.LogLevel)] {
		return errors.Wrapf(errors.ErrConfigParse, "invalid log level %q", c.Settings.LogLevel)
	}
	return nil
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Settings.HTTPTimeout == 0 {
		c.Settings.HTTPTimeout = defaults.Settings.HTTPTimeout
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
}
