// Package identify matches disc backups on disk to catalog media items.
package identify

//go:generate mockgen -destination=mocks/catalog.go -package=mocks github.com/vmunix/discdb/internal/identify Catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/discdb/internal/scan"
	"github.com/vmunix/discdb/pkg/discdb"
	"github.com/vmunix/discdb/pkg/match"
)

// Catalog is the subset of the catalog client used for identification.
type Catalog interface {
	Hash(ctx context.Context, files []discdb.HashFile) (string, error)
	GetMediaItemsByDiscHashes(ctx context.Context, hashes []string) (map[string][]discdb.MediaItem, error)
}

// Result is the outcome of identifying one disc directory.
type Result struct {
	Path       string
	Label      string
	Format     discdb.DiscFormat
	Hash       string
	Candidates []match.Candidate
	// Best is the top candidate when it reaches the minimum confidence.
	Best *match.Candidate
	// Err is set by IdentifyAll when this path failed.
	Err error
}

// Identifier scans disc directories, hashes them and ranks catalog matches.
type Identifier struct {
	catalog       Catalog
	log           *slog.Logger
	concurrency   int
	minConfidence match.Confidence
}

// Option configures an Identifier.
type Option func(*Identifier)

// WithConcurrency sets how many directories IdentifyAll processes at once.
func WithConcurrency(n int) Option {
	return func(i *Identifier) {
		if n > 0 {
			i.concurrency = n
		}
	}
}

// WithMinConfidence sets the confidence a candidate needs to become Best.
func WithMinConfidence(c match.Confidence) Option {
	return func(i *Identifier) {
		i.minConfidence = c
	}
}

// New creates an Identifier.
func New(catalog Catalog, log *slog.Logger, opts ...Option) *Identifier {
	if log == nil {
		log = slog.Default()
	}
	i := &Identifier{
		catalog:       catalog,
		log:           log.With("component", "identify"),
		concurrency:   4,
		minConfidence: match.ConfidenceMedium,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Identify scans root, computes its content hash and looks it up. hint
// overrides the title hint taken from the directory name.
func (i *Identifier) Identify(ctx context.Context, root, hint string) (*Result, error) {
	start := time.Now()

	disc, err := scan.Scan(root)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	hash, err := i.catalog.Hash(ctx, disc.Files)
	if err != nil {
		return nil, fmt.Errorf("hash %s: %w", root, err)
	}

	results, err := i.catalog.GetMediaItemsByDiscHashes(ctx, []string{hash})
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", hash, err)
	}

	title, year := match.TitleFromVolumeLabel(disc.Label)
	if hint != "" {
		title, year = match.TitleFromVolumeLabel(hint)
	}

	candidates := match.Rank(title, year, results[hash])
	res := &Result{
		Path:       root,
		Label:      disc.Label,
		Format:     disc.Format,
		Hash:       hash,
		Candidates: candidates,
		Best:       match.Best(candidates, i.minConfidence),
	}

	i.log.Debug("identified disc",
		"path", root,
		"hash", hash,
		"files", len(disc.Files),
		"candidates", len(candidates),
		"matched", res.Best != nil,
		"duration_ms", time.Since(start).Milliseconds())

	return res, nil
}

// IdentifyAll identifies several directories concurrently. Results keep the
// order of roots. A failing directory records its error in Result.Err and
// does not stop the others; only context cancellation aborts the batch.
func (i *Identifier) IdentifyAll(ctx context.Context, roots []string, hint string) ([]Result, error) {
	results := make([]Result, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)

	for idx, root := range roots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := i.Identify(ctx, root, hint)
			if err != nil {
				i.log.Warn("identification failed", "path", root, "error", err)
				results[idx] = Result{Path: root, Err: err}
				return nil
			}
			results[idx] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
