package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes configuration from .env, an optional config file and
// MULBENCH_* environment variables, in that order of discovery.
func Load(cfgFile string) {
	// .env is optional; missing files are fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("MULBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults() {
	// Harness defaults follow the reference measurement setup: 2s
	// warmup, 5s measurement, 100 samples, sizes 1..8192.
	viper.SetDefault("warmup", "2s")
	viper.SetDefault("measure", "5s")
	viper.SetDefault("samples", 100)
	viper.SetDefault("max_digits", 8192)
	viper.SetDefault("algorithms", []string{"naive", "karatsuba", "fft"})

	viper.SetDefault("store.type", "sqlite")
	viper.SetDefault("store.dsn", "")

	viper.SetDefault("chart.output", "mulbench.png")
	viper.SetDefault("chart.width", 1024)
	viper.SetDefault("chart.height", 768)

	viper.SetDefault("threshold", 10.0)
	viper.SetDefault("metrics_port", 0)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
}
