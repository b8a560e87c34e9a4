package main

import (
	"github.com/aretw0/clif/internal/cli"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive demo pools",
	Long: `Starts the demo: a root pool with a calculator and a notebook pool.
Type "help" in any pool for its commands and "exit-all" to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.JSON, _ = cmd.Flags().GetBool("json")
		if cmd.Flags().Changed("prompt") {
			opts.Overrides["prompt"], _ = cmd.Flags().GetString("prompt")
		}
		if cmd.Flags().Changed("metrics-addr") {
			opts.Overrides["metrics_addr"], _ = cmd.Flags().GetString("metrics-addr")
		}
		if cmd.Flags().Changed("no-banner") {
			noBanner, _ := cmd.Flags().GetBool("no-banner")
			opts.Overrides["banner"] = !noBanner
		}
		return cli.RunDemo(opts)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().String("prompt", "", "Prompt shown before each line on a terminal")
	demoCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
	demoCmd.Flags().Bool("no-banner", false, "Do not print the start-up banner")
	demoCmd.Flags().Bool("json", false, "Read JSON-Lines input (one string or {\"line\": ...} per line)")

	// 'demo' is what a bare "clif" runs.
	rootCmd.RunE = demoCmd.RunE
	rootCmd.Flags().AddFlagSet(demoCmd.Flags())
}
