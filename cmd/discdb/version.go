package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/discdb/pkg/discdb"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "discdb %s (client %s)\n", version, discdb.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
