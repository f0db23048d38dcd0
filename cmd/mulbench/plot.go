package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mulbench/internal/plot"
)

var (
	plotOutput string
	plotJSON   string
	plotRunID  int64
	plotTitle  string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render a run as a log-log chart",
	Long: `Renders the timing curves of a run as a line chart with a log2
x-axis (operand size) and a logarithmic y-axis (microseconds per
multiplication). Reads the latest stored run unless --run or --json is
given.`,
	RunE: runPlotCmd,
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "output path, .png or .svg (default from config)")
	plotCmd.Flags().StringVar(&plotJSON, "json", "", "read the run from a JSON export instead of the store")
	plotCmd.Flags().Int64Var(&plotRunID, "run", 0, "stored run id (default: latest)")
	plotCmd.Flags().StringVar(&plotTitle, "title", "", "chart title")
}

func runPlotCmd(cmd *cobra.Command, args []string) error {
	run, err := resolveRun(plotJSON, plotRunID)
	if err != nil {
		return err
	}

	output := plotOutput
	if output == "" {
		output = viper.GetString("chart.output")
	}

	opts := chartOptions()
	if plotTitle != "" {
		opts.Title = plotTitle
	}

	if err := plot.RenderFile(run, output, opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s\n", output)
	return nil
}
