package discdb

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2023, 11, 14, 22, 13, 20, 123_000_000, time.UTC)

func TestBuildHashRequest(t *testing.T) {
	created := time.UnixMilli(1_600_000_000_000)

	req := BuildHashRequest([]HashFile{
		LocalFile("00000.m2ts", 100, time.UnixMilli(1_700_000_000_123)),
		FileRecord(5, "00001.m2ts", 200, created),
	})

	assert.Equal(t, []HashFileInfo{
		{Index: 1, Name: "00000.m2ts", Size: 100, CreationTime: "2023-11-14T22:13:20.123Z"},
		{Index: 5, Name: "00001.m2ts", Size: 200, CreationTime: "2020-09-13T12:26:40.000Z"},
	}, req.Files)
}

func TestBuildHashRequest_LocalIndexIsPosition(t *testing.T) {
	req := BuildHashRequest([]HashFile{
		FileRecord(7, "a", 1, testTime),
		LocalFile("b", 2, testTime),
		LocalFile("c", 3, testTime),
	})

	require.Len(t, req.Files, 3)
	assert.Equal(t, 7, req.Files[0].Index)
	assert.Equal(t, 2, req.Files[1].Index)
	assert.Equal(t, 3, req.Files[2].Index)
}

func TestBuildHashRequest_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	req := BuildHashRequest([]HashFile{LocalFile("a", 1, time.Date(2024, 1, 2, 1, 30, 0, 0, loc))})

	assert.Equal(t, "2024-01-02T00:30:00.000Z", req.Files[0].CreationTime)
}

func TestBuildHashRequest_WireFormat(t *testing.T) {
	req := BuildHashRequest([]HashFile{LocalFile("00000.m2ts", 100, testTime)})

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"Files":[{"Index":1,"Name":"00000.m2ts","Size":100,"CreationTime":"2023-11-14T22:13:20.123Z"}]}`,
		string(data))
}

func TestFromFileInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "00001.m2ts")
	require.NoError(t, os.WriteFile(path, []byte("stream"), 0644))
	require.NoError(t, os.Chtimes(path, testTime, testTime))

	info, err := os.Stat(path)
	require.NoError(t, err)

	f := FromFileInfo(info)
	assert.Equal(t, "00001.m2ts", f.Name())
	assert.Equal(t, int64(6), f.Size())

	req := BuildHashRequest([]HashFile{f})
	assert.Equal(t, "2023-11-14T22:13:20.123Z", req.Files[0].CreationTime)
}

func TestClient_Hash(t *testing.T) {
	server := mockDiscDB(t, map[string]http.HandlerFunc{
		"/api/hash": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "discdbapi/"+Version, r.Header.Get("User-Agent"))

			var body HashRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			assert.Len(t, body.Files, 2)
			writeJSON(w, map[string]string{"hash": "3B0C5CF1AD1E0E3B"})
		},
	})

	client := New(WithOrigin(server.URL))
	hash, err := client.Hash(context.Background(), []HashFile{
		LocalFile("00000.m2ts", 100, testTime),
		LocalFile("00001.m2ts", 200, testTime),
	})

	require.NoError(t, err)
	assert.Equal(t, "3B0C5CF1AD1E0E3B", hash)
}

func TestClient_Hash_DataEnvelope(t *testing.T) {
	server := mockDiscDB(t, map[string]http.HandlerFunc{
		"/api/hash": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]any{"data": map[string]string{"hash": "ABCDEF"}})
		},
	})

	client := New(WithOrigin(server.URL))
	hash, err := client.Hash(context.Background(), []HashFile{LocalFile("a", 1, testTime)})

	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", hash)
}

func TestClient_Hash_MissingHash(t *testing.T) {
	server := mockDiscDB(t, map[string]http.HandlerFunc{
		"/api/hash": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]string{})
		},
	})

	client := New(WithOrigin(server.URL))
	_, err := client.Hash(context.Background(), []HashFile{LocalFile("a", 1, testTime)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing hash")
}

func TestClient_Hash_NoFiles(t *testing.T) {
	client := New(WithOrigin("http://127.0.0.1:0"))
	_, err := client.Hash(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoHashFiles)
}
