package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/discdb/pkg/discdb"
)

var imageCmd = &cobra.Command{
	Use:   "image-url [flags] <path>",
	Short: "Build a catalog image URL",
	Long: `Build the URL of a catalog image from an image path, optionally resized.

Examples:
  discdb image-url the-matrix-1999/cover.jpg
  discdb image-url --width 300 the-matrix-1999/cover.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runImageCmd,
}

func init() {
	rootCmd.AddCommand(imageCmd)
	imageCmd.Flags().Int("width", 0, "Resize to width")
	imageCmd.Flags().Int("height", 0, "Resize to height")
}

func runImageCmd(cmd *cobra.Command, args []string) error {
	var opts discdb.ImageOptions
	opts.Width, _ = cmd.Flags().GetInt("width")
	opts.Height, _ = cmd.Flags().GetInt("height")

	e, err := setup(cmd)
	if err != nil {
		return err
	}

	u, err := e.client.ImageURL(args[0], opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]string{"url": u})
	}
	fmt.Fprintln(cmd.OutOrStdout(), u)
	return nil
}
