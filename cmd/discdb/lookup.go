package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [flags] <hash>...",
	Short: "Look up media items by disc content hash",
	Long: `Look up media items by disc content hash.

Each hash lists every media item whose release contains a disc with
that hash. With --first, a single hash returns only the first match.

Examples:
  discdb lookup 3E2A9C0D5B1F4A7E
  discdb lookup --first 3E2A9C0D5B1F4A7E
  discdb lookup --json HASH1 HASH2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookupCmd,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Bool("first", false, "Return only the first media item (single hash)")
}

func runLookupCmd(cmd *cobra.Command, args []string) error {
	first, _ := cmd.Flags().GetBool("first")
	if first && len(args) != 1 {
		return errors.New("--first takes exactly one hash")
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if first {
		item, err := e.client.GetMediaItemByDiscHash(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(out, item)
		}
		printMediaItem(out, item)
		return nil
	}

	results, err := e.client.GetMediaItemsByDiscHashes(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}
	if jsonOutput {
		return printJSON(out, results)
	}

	for i, hash := range args {
		if i > 0 {
			fmt.Fprintln(out)
		}
		items := results[hash]
		fmt.Fprintf(out, "%s: %d media item(s)\n", hash, len(items))
		for j := range items {
			printMediaItem(out, &items[j])
		}
	}
	return nil
}
