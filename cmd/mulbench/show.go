package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mulbench/internal/ui"
)

var showJSON string

var showCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Print the full timing table of a run",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var runID int64
		if len(args) == 1 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run id %q", args[0])
			}
			runID = id
		}

		run, err := resolveRun(showJSON, runID)
		if err != nil {
			return err
		}
		ui.RenderRun(cmd.OutOrStdout(), run)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showJSON, "json", "", "read the run from a JSON export instead of the store")
}
