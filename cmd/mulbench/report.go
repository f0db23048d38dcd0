package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mulbench/internal/ui"
)

var (
	reportJSON  string
	reportRunID int64
	reportRaw   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a markdown summary of a run",
	Long: `Builds a markdown report of a run, including crossover analysis
between the algorithms, and pretty-prints it for the terminal. Use
--raw to get plain markdown for pasting elsewhere.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportJSON, "json", "", "read the run from a JSON export instead of the store")
	reportCmd.Flags().Int64Var(&reportRunID, "run", 0, "stored run id (default: latest)")
	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "print plain markdown without terminal styling")
}

func runReport(cmd *cobra.Command, args []string) error {
	run, err := resolveRun(reportJSON, reportRunID)
	if err != nil {
		return err
	}

	md := ui.BuildReport(run)
	if reportRaw {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	rendered, err := ui.RenderMarkdown(md)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
