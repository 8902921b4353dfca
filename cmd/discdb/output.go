package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"

	"github.com/vmunix/discdb/pkg/discdb"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// formatSize renders a title size, preferring the catalog's display size.
func formatSize(t discdb.Title) string {
	if t.Size > 0 {
		return humanize.IBytes(uint64(t.Size))
	}
	if t.DisplaySize != "" {
		return t.DisplaySize
	}
	return "-"
}

// describeItem returns what a title contains, e.g. "Episode S1E2: Pilot".
func describeItem(item *discdb.TitleItem) string {
	if item == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(string(item.Type))
	if item.Season != nil || item.Episode != nil {
		fmt.Fprintf(&b, " S%sE%s", deref(item.Season), deref(item.Episode))
	}
	if item.Title != "" {
		b.WriteString(": ")
		b.WriteString(item.Title)
	}
	return b.String()
}

func printMediaItem(w io.Writer, item *discdb.MediaItem) {
	fmt.Fprintf(w, "%s (%d) [%s]  %s\n", item.Title, item.Year, item.Type, item.Slug)
	if ids := item.ExternalIDs; ids != nil {
		var parts []string
		if ids.TMDB != 0 {
			parts = append(parts, fmt.Sprintf("tmdb:%d", ids.TMDB))
		}
		if ids.IMDB != nil {
			parts = append(parts, "imdb:"+*ids.IMDB)
		}
		if ids.TVDB != nil {
			parts = append(parts, "tvdb:"+*ids.TVDB)
		}
		if len(parts) > 0 {
			fmt.Fprintf(w, "  ids: %s\n", strings.Join(parts, " "))
		}
	}
	for _, rel := range item.Releases {
		fmt.Fprintf(w, "  release %s: %s (%d, %s, region %s)\n",
			rel.Slug, rel.Title, rel.Year, rel.Locale, orDash(rel.RegionCode))
		for _, d := range rel.Discs {
			fmt.Fprintf(w, "    disc %d: %s [%s] %s\n", d.Index, d.Name, d.Format, deref(d.ContentHash))
		}
	}
}

func printRelease(w io.Writer, rel *discdb.Release) {
	if rel.MediaItem != nil {
		fmt.Fprintf(w, "%s (%d) [%s]\n", rel.MediaItem.Title, rel.MediaItem.Year, rel.MediaItem.Type)
	}
	fmt.Fprintf(w, "Release: %s (%s)\n", rel.Title, rel.Slug)
	fmt.Fprintf(w, "  Year: %d  Locale: %s  Region: %s\n", rel.Year, rel.Locale, orDash(rel.RegionCode))
	if rel.Boxset != nil {
		fmt.Fprintf(w, "  Boxset: %s\n", deref(rel.Boxset.Title))
	}

	for _, d := range rel.Discs {
		fmt.Fprintf(w, "\nDisc %d: %s [%s]\n", d.Index, d.Name, d.Format)
		if d.ContentHash != nil {
			fmt.Fprintf(w, "  Hash: %s\n", *d.ContentHash)
		}
		if len(d.Titles) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %3s │ %-12s │ %8s │ %10s │ %s\n", "#", "SOURCE", "LENGTH", "SIZE", "CONTENT")
		for _, t := range d.Titles {
			fmt.Fprintf(w, "  %3d │ %-12s │ %8s │ %10s │ %s\n",
				t.Index, truncate(t.SourceFile, 12), orDash(t.Duration), formatSize(t), describeItem(t.Item))
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
