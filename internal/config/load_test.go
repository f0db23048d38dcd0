package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	Load("")

	assert.Equal(t, "2s", viper.GetString("warmup"))
	assert.Equal(t, "5s", viper.GetString("measure"))
	assert.Equal(t, 100, viper.GetInt("samples"))
	assert.Equal(t, 8192, viper.GetInt("max_digits"))
	assert.Equal(t, []string{"naive", "karatsuba", "fft"}, viper.GetStringSlice("algorithms"))
	assert.Equal(t, "sqlite", viper.GetString("store.type"))
	assert.Equal(t, "mulbench.png", viper.GetString("chart.output"))
	assert.InDelta(t, 10.0, viper.GetFloat64("threshold"), 1e-9)
	assert.Equal(t, 0, viper.GetInt("metrics_port"))
}

func TestLoadConfigFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 25\nstore:\n  type: postgres\n"), 0644))

	Load(path)

	assert.Equal(t, 25, viper.GetInt("samples"))
	assert.Equal(t, "postgres", viper.GetString("store.type"))
	// Unset keys keep their defaults.
	assert.Equal(t, "5s", viper.GetString("measure"))
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Setenv("MULBENCH_SAMPLES", "7")
	Load("")

	assert.Equal(t, 7, viper.GetInt("samples"))
}
