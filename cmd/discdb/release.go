package main

import "github.com/spf13/cobra"

var releaseCmd = &cobra.Command{
	Use:   "release <item-slug> <release-slug>",
	Short: "Show a release with its discs and titles",
	Long: `Show a release of a media item, including discs and titles.

Examples:
  discdb release the-matrix-1999 2018-4k
  discdb release --json the-matrix-1999 2018-4k`,
	Args: cobra.ExactArgs(2),
	RunE: runReleaseCmd,
}

func init() {
	rootCmd.AddCommand(releaseCmd)
}

func runReleaseCmd(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	rel, err := e.client.GetReleaseBySlug(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), rel)
	}
	printRelease(cmd.OutOrStdout(), rel)
	return nil
}
