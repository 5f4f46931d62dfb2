// Package config loads the configuration of the memds command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
)

const (
	APP_NAME = "memds"

	CONFIG_FILE_NAME    = "config.yaml"
	CONFIG_FILE_RELPATH = APP_NAME + "/" + CONFIG_FILE_NAME

	DEFAULT_LOG_LEVEL = "info"
	DEFAULT_FORMAT    = TEXT_FORMAT
	DEFAULT_COLOR     = AUTO_COLOR

	TEXT_FORMAT = "text"
	JSON_FORMAT = "json"

	AUTO_COLOR   = "auto"
	ALWAYS_COLOR = "always"
	NEVER_COLOR  = "never"
)

var (
	FORMATS      = []string{TEXT_FORMAT, JSON_FORMAT}
	COLOR_MODES  = []string{AUTO_COLOR, ALWAYS_COLOR, NEVER_COLOR}
	ErrNotLoaded = errors.New("configuration not loaded")
)

type Config struct {
	LogLevel string `yaml:"log-level"`
	Format   string `yaml:"format"`
	Color    string `yaml:"color"`

	//path of the file the configuration has been loaded from, empty if the defaults are used.
	Path string `yaml:"-"`
}

func Default() Config {
	return Config{
		LogLevel: DEFAULT_LOG_LEVEL,
		Format:   DEFAULT_FORMAT,
		Color:    DEFAULT_COLOR,
	}
}

// Load searches for the configuration file in the XDG config directories and loads it,
// the default configuration is returned if there is no such file.
func Load() (Config, error) {
	path, err := xdg.SearchConfigFile(CONFIG_FILE_RELPATH)
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads the configuration from a YAML file, missing fields are set to their default value.
func LoadFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s does not exist", ErrNotLoaded, path)
		}
		return Config{}, err
	}

	config, err := Parse(content)
	if err != nil {
		return Config{}, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	config.Path = path
	return config, nil
}

// Parse parses and validates a YAML configuration.
func Parse(content []byte) (Config, error) {
	config := Default()

	if err := yaml.UnmarshalWithOptions(content, &config, yaml.DisallowUnknownField()); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if _, err := c.ZerologLevel(); err != nil || c.LogLevel == "" {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if !slices.Contains(FORMATS, c.Format) {
		return fmt.Errorf("invalid format %q, valid formats are %v", c.Format, FORMATS)
	}
	if !slices.Contains(COLOR_MODES, c.Color) {
		return fmt.Errorf("invalid color mode %q, valid modes are %v", c.Color, COLOR_MODES)
	}
	return nil
}

func (c Config) ZerologLevel() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}

// Colorize reports whether the text output should be colorized.
func (c Config) Colorize() bool {
	switch c.Color {
	case ALWAYS_COLOR:
		return true
	case NEVER_COLOR:
		return false
	default:
		return SHOULD_COLORIZE
	}
}
