package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {

	t.Run("all fields", func(t *testing.T) {
		config, err := Parse([]byte("log-level: debug\nformat: json\ncolor: never\n"))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, Config{LogLevel: "debug", Format: JSON_FORMAT, Color: NEVER_COLOR}, config)

		level, err := config.ZerologLevel()
		assert.NoError(t, err)
		assert.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("missing fields have their default value", func(t *testing.T) {
		config, err := Parse([]byte("format: json\n"))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, DEFAULT_LOG_LEVEL, config.LogLevel)
		assert.Equal(t, JSON_FORMAT, config.Format)
		assert.Equal(t, DEFAULT_COLOR, config.Color)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := Parse([]byte("format: xml\n"))
		assert.ErrorContains(t, err, "invalid format")
	})

	t.Run("invalid color mode", func(t *testing.T) {
		_, err := Parse([]byte("color: sometimes\n"))
		assert.ErrorContains(t, err, "invalid color mode")
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := Parse([]byte("log-level: loud\n"))
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse([]byte("colour: never\n"))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(dir, CONFIG_FILE_NAME)
		require.NoError(t, os.WriteFile(path, []byte("log-level: warn\n"), 0o600))

		config, err := LoadFile(path)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "warn", config.LogLevel)
		assert.Equal(t, path, config.Path)
	})

	t.Run("non existing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
		assert.ErrorIs(t, err, ErrNotLoaded)
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o600))

		_, err := LoadFile(path)
		assert.ErrorContains(t, err, path)
	})
}

func TestColorize(t *testing.T) {
	defer readColorEnv(os.LookupEnv)

	env := func(vars map[string]string) func(string) (string, bool) {
		return func(name string) (string, bool) {
			v, ok := vars[name]
			return v, ok
		}
	}

	readColorEnv(env(map[string]string{"TERM": "xterm-256color"}))
	assert.True(t, SHOULD_COLORIZE)
	assert.True(t, Config{Color: AUTO_COLOR}.Colorize())
	assert.False(t, Config{Color: NEVER_COLOR}.Colorize())

	readColorEnv(env(map[string]string{"TERM": "xterm-256color", "NO_COLOR": "1"}))
	assert.False(t, SHOULD_COLORIZE)
	assert.False(t, Config{Color: AUTO_COLOR}.Colorize())
	assert.True(t, Config{Color: ALWAYS_COLOR}.Colorize())

	readColorEnv(env(map[string]string{"FORCE_COLOR": "true"}))
	assert.True(t, SHOULD_COLORIZE)

	readColorEnv(env(map[string]string{"FORCE_COLOR": "0", "TERM": "dumb"}))
	assert.False(t, SHOULD_COLORIZE)
}
