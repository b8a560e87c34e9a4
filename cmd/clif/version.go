package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/clif"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of clif",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "clif version %s\n", strings.TrimSpace(clif.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
