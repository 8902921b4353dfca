// Package scan reads the file layout of a disc backup directory and turns it
// into hash input for the catalog.
package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vmunix/discdb/pkg/discdb"
)

var (
	// ErrUnknownLayout is returned when a directory is neither a Blu-ray nor a DVD backup.
	ErrUnknownLayout = errors.New("no BDMV/STREAM or VIDEO_TS directory found")

	// ErrNoFiles is returned when the stream directory holds no files.
	ErrNoFiles = errors.New("no disc files found")
)

// Disc is a scanned disc backup.
type Disc struct {
	Root string
	// Label is the directory name, used as a title hint.
	Label string
	// Format is DVD or Blu-ray; UHD discs share the Blu-ray layout and are
	// reported as Blu-ray.
	Format discdb.DiscFormat
	Files  []discdb.HashFile
}

// Scan detects the layout under root and lists its stream files in name order.
// root may be the disc directory or its BDMV/VIDEO_TS directory.
func Scan(root string) (*Disc, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", root)
	}

	dir, format, err := detectLayout(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", root, err)
	}

	files, err := listFiles(dir, format)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoFiles)
	}

	return &Disc{
		Root:   root,
		Label:  volumeLabel(root),
		Format: format,
		Files:  files,
	}, nil
}

func detectLayout(root string) (string, discdb.DiscFormat, error) {
	candidates := []struct {
		path   string
		format discdb.DiscFormat
	}{
		{filepath.Join(root, "BDMV", "STREAM"), discdb.DiscFormatBluray},
		{filepath.Join(root, "STREAM"), discdb.DiscFormatBluray},
		{filepath.Join(root, "VIDEO_TS"), discdb.DiscFormatDVD},
	}
	for _, c := range candidates {
		if isDir(c.path) {
			return c.path, c.format, nil
		}
	}
	if strings.EqualFold(filepath.Base(root), "VIDEO_TS") {
		return root, discdb.DiscFormatDVD, nil
	}
	return "", "", ErrUnknownLayout
}

func listFiles(dir string, format discdb.DiscFormat) ([]discdb.HashFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	// ReadDir sorts by file name, which fixes each file's hash index.
	files := make([]discdb.HashFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if format == discdb.DiscFormatBluray && !IsStreamFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		files = append(files, discdb.FromFileInfo(info))
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})
	return files, nil
}

// IsStreamFile reports whether name is a Blu-ray transport stream file.
func IsStreamFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".m2ts")
}

// volumeLabel returns the disc directory name, skipping BDMV/VIDEO_TS.
func volumeLabel(root string) string {
	clean := filepath.Clean(root)
	base := filepath.Base(clean)
	switch strings.ToUpper(base) {
	case "BDMV", "VIDEO_TS":
		return filepath.Base(filepath.Dir(clean))
	}
	return base
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
