package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file overriding the engine url and timings
		path := writeConfig(t, `
log-level: debug
server:
  url: http://engine:9000
animation:
  step-interval: 300ms
  relocation-duration: 200ms
session:
  queue-capacity: 2
`)

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: values come from the file, the rest from defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "http://engine:9000", conf.Server.URL)
		assert.Equal(t, 10*time.Second, conf.Server.RequestTimeout)
		assert.Equal(t, 300*time.Millisecond, conf.Animation.StepInterval)
		assert.Equal(t, 200*time.Millisecond, conf.Animation.RelocationDuration)
		assert.Equal(t, 2, conf.Session.QueueCapacity)
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
		require.NoError(t, err)

		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 600*time.Millisecond, conf.Animation.StepInterval)
		assert.Equal(t, 500*time.Millisecond, conf.Animation.RelocationDuration)
		assert.Equal(t, 4, conf.Session.QueueCapacity)
	})

	t.Run("Malformed file is an error", func(t *testing.T) {
		// Given: a config file with a typo in a duration
		path := writeConfig(t, `
server:
  url: http://engine:9000
animation:
  step-interval: 6OOms
`)

		// When: loading it
		conf, err := Load(path)

		// Then: the typo is reported instead of replaced by the default
		require.Error(t, err)
		assert.Nil(t, conf)
	})

	t.Run("Broken yaml is an error", func(t *testing.T) {
		path := writeConfig(t, "server: [url: http://engine:9000\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Relocation must fit in a step", func(t *testing.T) {
		path := writeConfig(t, `
animation:
  step-interval: 100ms
  relocation-duration: 100ms
`)

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("MustLoad panics on invalid config", func(t *testing.T) {
		path := writeConfig(t, `
animation:
  step-interval: 1ms
  relocation-duration: 2ms
`)

		assert.Panics(t, func() { MustLoad(path) })
	})
}
