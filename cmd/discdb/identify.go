package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/discdb/internal/identify"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [flags] <disc-dir>...",
	Short: "Hash disc backups and match them to catalog items",
	Long: `Hash one or more disc backup directories, look the hashes up and rank
the matching media items against the directory name.

Examples:
  discdb identify /media/rips/THE_MATRIX_1999
  discdb identify --hint "The Matrix" /media/rips/DISC1
  discdb identify --json /media/rips/*`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIdentifyCmd,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
	identifyCmd.Flags().String("hint", "", "Title hint used instead of the directory name")
	identifyCmd.Flags().IntP("concurrency", "c", 0, "Directories processed at once (overrides config)")
}

type candidateOutput struct {
	Slug       string  `json:"slug"`
	Title      string  `json:"title"`
	Year       int     `json:"year"`
	Type       string  `json:"type"`
	Score      float64 `json:"score"`
	Confidence string  `json:"confidence"`
}

type identifyOutput struct {
	Path       string            `json:"path"`
	Format     string            `json:"format,omitempty"`
	Hash       string            `json:"hash,omitempty"`
	Best       *candidateOutput  `json:"best,omitempty"`
	Candidates []candidateOutput `json:"candidates,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func runIdentifyCmd(cmd *cobra.Command, args []string) error {
	hint, _ := cmd.Flags().GetString("hint")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	if concurrency <= 0 {
		concurrency = e.cfg.Identify.Concurrency
	}

	id := identify.New(e.client, e.log,
		identify.WithConcurrency(concurrency),
		identify.WithMinConfidence(e.cfg.MinConfidence()))

	results, err := id.IdentifyAll(cmd.Context(), args, hint)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		outputs := make([]identifyOutput, len(results))
		for i, r := range results {
			outputs[i] = toIdentifyOutput(r)
		}
		return printJSON(out, outputs)
	}

	failed := 0
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if r.Err != nil {
			failed++
		}
		printIdentifyResult(out, r)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d directories failed", failed, len(results))
	}
	return nil
}

func toIdentifyOutput(r identify.Result) identifyOutput {
	o := identifyOutput{Path: r.Path, Format: string(r.Format), Hash: r.Hash}
	if r.Err != nil {
		o.Error = r.Err.Error()
		return o
	}
	for _, c := range r.Candidates {
		o.Candidates = append(o.Candidates, candidateOutput{
			Slug:       c.Item.Slug,
			Title:      c.Item.Title,
			Year:       c.Item.Year,
			Type:       string(c.Item.Type),
			Score:      c.Score,
			Confidence: c.Confidence.String(),
		})
	}
	if r.Best != nil {
		best := o.Candidates[0]
		o.Best = &best
	}
	return o
}

func printIdentifyResult(w io.Writer, r identify.Result) {
	fmt.Fprintf(w, "%s\n", r.Path)
	if r.Err != nil {
		fmt.Fprintf(w, "  error: %v\n", r.Err)
		return
	}
	fmt.Fprintf(w, "  %s  %s\n", r.Format, r.Hash)

	if len(r.Candidates) == 0 {
		fmt.Fprintln(w, "  no catalog match")
		return
	}
	if r.Best != nil {
		fmt.Fprintf(w, "  match: %s (%d)  %s\n", r.Best.Item.Title, r.Best.Item.Year, r.Best.Item.Slug)
	} else {
		fmt.Fprintln(w, "  no confident match")
	}

	fmt.Fprintf(w, "  %2s │ %-36s │ %5s │ %s\n", "#", "TITLE", "SCORE", "CONFIDENCE")
	for i, c := range r.Candidates {
		title := fmt.Sprintf("%s (%d)", c.Item.Title, c.Item.Year)
		fmt.Fprintf(w, "  %2d │ %-36s │ %5.2f │ %s\n", i+1, truncate(title, 36), c.Score, c.Confidence)
	}
}
