package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initOutput string

// askOne is swapped out in tests.
var askOne = survey.AskOne

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a config file",
	Long: `Walks through the benchmark settings and writes them to a config
file. Existing files are only overwritten after confirmation.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "config.yaml", "path of the config file to write")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOutput); err == nil {
		overwrite := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("%s already exists. Overwrite?", initOutput),
		}
		if err := askOne(prompt, &overwrite); err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted, existing config left untouched.")
			return nil
		}
	}

	maxDigits := ""
	if err := askOne(&survey.Select{
		Message: "Largest operand size to benchmark (digits):",
		Options: []string{"1024", "4096", "8192", "16384"},
		Default: "8192",
	}, &maxDigits); err != nil {
		return err
	}

	warmup := ""
	if err := askOne(&survey.Input{
		Message: "Warmup time per size:",
		Default: "2s",
	}, &warmup); err != nil {
		return err
	}
	if _, err := time.ParseDuration(warmup); err != nil {
		return fmt.Errorf("invalid warmup duration %q: %w", warmup, err)
	}

	measure := ""
	if err := askOne(&survey.Input{
		Message: "Measurement time per size:",
		Default: "5s",
	}, &measure); err != nil {
		return err
	}
	if _, err := time.ParseDuration(measure); err != nil {
		return fmt.Errorf("invalid measure duration %q: %w", measure, err)
	}

	backend := ""
	if err := askOne(&survey.Select{
		Message: "Where should runs be stored?",
		Options: []string{"sqlite", "postgres"},
		Default: "sqlite",
	}, &backend); err != nil {
		return err
	}

	dsn := ""
	if backend == "postgres" {
		if err := askOne(&survey.Input{
			Message: "Postgres connection string:",
		}, &dsn); err != nil {
			return err
		}
	}

	chartOutput := ""
	if err := askOne(&survey.Input{
		Message: "Default chart output file:",
		Default: "mulbench.png",
	}, &chartOutput); err != nil {
		return err
	}

	digits, err := strconv.Atoi(maxDigits)
	if err != nil {
		return fmt.Errorf("invalid digit count %q", maxDigits)
	}

	viper.Set("max_digits", digits)
	viper.Set("warmup", warmup)
	viper.Set("measure", measure)
	viper.Set("store.type", backend)
	viper.Set("store.dsn", dsn)
	viper.Set("chart.output", chartOutput)

	if err := viper.WriteConfigAs(initOutput); err != nil {
		return fmt.Errorf("writing %s: %w", initOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", initOutput)
	return nil
}
