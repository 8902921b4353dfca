package main

import (
	"github.com/spf13/cobra"

	"github.com/vmunix/discdb/pkg/discdb"
)

var externalCmd = &cobra.Command{
	Use:   "external [flags]",
	Short: "Look up a media item by TMDB, IMDB or TVDB id",
	Long: `Look up a media item by external id. Any id that is given must match.

Examples:
  discdb external --imdb tt0133093
  discdb external --tmdb 603 --json`,
	Args: cobra.NoArgs,
	RunE: runExternalCmd,
}

func init() {
	rootCmd.AddCommand(externalCmd)
	externalCmd.Flags().String("tmdb", "", "TMDB id")
	externalCmd.Flags().String("imdb", "", "IMDB id (tt...)")
	externalCmd.Flags().String("tvdb", "", "TVDB id")
}

func runExternalCmd(cmd *cobra.Command, args []string) error {
	var q discdb.ExternalIDQuery
	q.TMDB, _ = cmd.Flags().GetString("tmdb")
	q.IMDB, _ = cmd.Flags().GetString("imdb")
	q.TVDB, _ = cmd.Flags().GetString("tvdb")

	e, err := setup(cmd)
	if err != nil {
		return err
	}

	item, err := e.client.GetMediaItemByExternalIDs(cmd.Context(), q)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), item)
	}
	printMediaItem(cmd.OutOrStdout(), item)
	return nil
}
