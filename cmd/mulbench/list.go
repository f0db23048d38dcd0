package main

import (
	"github.com/spf13/cobra"

	"mulbench/internal/ui"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored benchmark runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		summaries, err := s.ListRuns(listLimit)
		if err != nil {
			return err
		}
		ui.RenderRunList(cmd.OutOrStdout(), summaries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "maximum number of runs to list")
}
