package discdb

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"
)

// ErrNoHashFiles is returned when Hash is called without files.
var ErrNoHashFiles = errors.New("no files to hash")

// isoTime is the ISO-8601 UTC layout expected by the hash endpoint.
const isoTime = "2006-01-02T15:04:05.000Z"

type hashFileKind int

const (
	kindLocalFile hashFileKind = iota + 1
	kindFileRecord
)

// HashFile describes one disc file for content hashing. It is either a local
// file, whose index is its 1-based position in the request, or an explicit
// record carrying its own index. Build values with LocalFile, FromFileInfo
// or FileRecord.
type HashFile struct {
	kind  hashFileKind
	index int
	name  string
	size  int64
	// modification time for local files, creation time for records
	time time.Time
}

// LocalFile describes a file on disk. Its creation time is approximated by
// the modification time, which is all most platforms expose.
func LocalFile(name string, size int64, modTime time.Time) HashFile {
	return HashFile{kind: kindLocalFile, name: name, size: size, time: modTime}
}

// FromFileInfo describes a file on disk from its fs.FileInfo.
func FromFileInfo(info fs.FileInfo) HashFile {
	return LocalFile(info.Name(), info.Size(), info.ModTime())
}

// FileRecord describes a file by explicit metadata.
func FileRecord(index int, name string, size int64, created time.Time) HashFile {
	return HashFile{kind: kindFileRecord, index: index, name: name, size: size, time: created}
}

// Name returns the file name.
func (f HashFile) Name() string { return f.name }

// Size returns the file size in bytes.
func (f HashFile) Size() int64 { return f.size }

// HashFileInfo is one entry of a hash request. Field names are part of the
// wire format.
type HashFileInfo struct {
	Index        int    `json:"Index"`
	Name         string `json:"Name"`
	Size         int64  `json:"Size"`
	CreationTime string `json:"CreationTime"`
}

// HashRequest is the body of the hash endpoint.
type HashRequest struct {
	Files []HashFileInfo `json:"Files"`
}

// BuildHashRequest converts files into a hash request, keeping input order.
func BuildHashRequest(files []HashFile) HashRequest {
	infos := make([]HashFileInfo, 0, len(files))
	for i, f := range files {
		info := HashFileInfo{
			Name:         f.name,
			Size:         f.size,
			CreationTime: f.time.UTC().Format(isoTime),
		}
		switch f.kind {
		case kindFileRecord:
			info.Index = f.index
		default:
			info.Index = i + 1
		}
		infos = append(infos, info)
	}
	return HashRequest{Files: infos}
}

type hashResponse struct {
	Hash string `json:"hash"`
	Data *struct {
		Hash string `json:"hash"`
	} `json:"data,omitempty"`
}

// Hash asks the server to compute the content hash of a disc from its file
// metadata.
func (c *Client) Hash(ctx context.Context, files []HashFile) (string, error) {
	if len(files) == 0 {
		return "", ErrNoHashFiles
	}

	start := time.Now()
	var resp hashResponse
	if err := c.fetch(ctx, http.MethodPost, "/api/hash", BuildHashRequest(files), &resp); err != nil {
		return "", err
	}

	hash := resp.Hash
	if hash == "" && resp.Data != nil {
		hash = resp.Data.Hash
	}
	if hash == "" {
		return "", fmt.Errorf("hash response missing hash")
	}

	if c.log != nil {
		c.log.Debug("computed content hash", "files", len(files), "hash", hash, "duration_ms", time.Since(start).Milliseconds())
	}
	return hash, nil
}
