package main

import (
	"fmt"
	"os"

	"github.com/aretw0/clif/internal/cli"
	"github.com/aretw0/clif/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clif",
	Short: "clif runs nested command pools in a line-oriented shell",
	Long: `clif is a small engine for interactive command-line programs built from
stacked command pools. Each pool contributes commands; the pool on top of the
stack receives input.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runOptions reads the persistent flags shared by the commands that run pools.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.RunOptions{
		ConfigPath:     path,
		ConfigRequired: cmd.Flags().Changed("config"),
		Debug:          debug,
		Overrides:      map[string]any{},
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the clif config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
