package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/discdb/internal/scan"
	"github.com/vmunix/discdb/pkg/discdb"
)

var hashCmd = &cobra.Command{
	Use:   "hash [flags] <disc-dir>",
	Short: "Compute the content hash of a disc backup",
	Long: `Compute the content hash of a Blu-ray or DVD backup directory.

Examples:
  discdb hash /media/rips/THE_MATRIX
  discdb hash --files /media/rips/THE_MATRIX/BDMV`,
	Args: cobra.ExactArgs(1),
	RunE: runHashCmd,
}

func init() {
	rootCmd.AddCommand(hashCmd)
	hashCmd.Flags().Bool("files", false, "List the files that went into the hash")
}

type hashOutput struct {
	Path   string                `json:"path"`
	Format discdb.DiscFormat     `json:"format"`
	Hash   string                `json:"hash"`
	Files  []discdb.HashFileInfo `json:"files,omitempty"`
}

func runHashCmd(cmd *cobra.Command, args []string) error {
	showFiles, _ := cmd.Flags().GetBool("files")

	e, err := setup(cmd)
	if err != nil {
		return err
	}

	disc, err := scan.Scan(args[0])
	if err != nil {
		return err
	}

	hash, err := e.client.Hash(cmd.Context(), disc.Files)
	if err != nil {
		return fmt.Errorf("hash failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		res := hashOutput{Path: disc.Root, Format: disc.Format, Hash: hash}
		if showFiles {
			res.Files = discdb.BuildHashRequest(disc.Files).Files
		}
		return printJSON(out, res)
	}

	fmt.Fprintln(out, hash)
	if showFiles {
		var total int64
		for _, f := range discdb.BuildHashRequest(disc.Files).Files {
			fmt.Fprintf(out, "  %3d  %-16s %10s  %s\n", f.Index, f.Name, humanize.IBytes(uint64(f.Size)), f.CreationTime)
			total += f.Size
		}
		fmt.Fprintf(out, "  %d files, %s (%s)\n", len(disc.Files), humanize.IBytes(uint64(total)), disc.Format)
	}
	return nil
}
