package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mulbench/internal/benchmark"
	"mulbench/internal/config"
	"mulbench/internal/store"
	"mulbench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mulbench",
	Short: "Benchmark big-integer multiplication algorithms",
	Long: `mulbench measures naive, Karatsuba and FFT big-integer
multiplication across operand sizes, tracks results over time, and
renders log-log performance charts.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initRoot)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "copy logs to a file")
	rootCmd.PersistentFlags().String("store", "", "history backend: sqlite or postgres")
	rootCmd.PersistentFlags().String("dsn", "", "backend location (file path for sqlite, DSN for postgres)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("store.type", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("store.dsn", rootCmd.PersistentFlags().Lookup("dsn"))
}

func initRoot() {
	config.Load(cfgFile)
	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
}

// openStore opens the configured history backend.
func openStore() (store.Store, error) {
	return store.New(store.Config{
		Type:             viper.GetString("store.type"),
		ConnectionString: viper.GetString("store.dsn"),
	})
}

// resolveRun loads a run from a JSON export, a stored run id, or the
// latest stored run, in that order of preference.
func resolveRun(jsonPath string, runID int64) (*benchmark.Run, error) {
	if jsonPath != "" {
		return benchmark.LoadJSON(jsonPath)
	}

	s, err := openStore()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if runID > 0 {
		return s.LoadRun(runID)
	}
	run, err := s.LoadLatest()
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("no stored runs; execute 'mulbench run' first")
	}
	return run, nil
}
