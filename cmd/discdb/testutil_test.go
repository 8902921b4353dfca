package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// catalogServer fakes the catalog: GraphQL answers are keyed by operation
// name, /api/hash returns hash.
type catalogServer struct {
	t       *testing.T
	server  *httptest.Server
	answers map[string]any
	hash    string

	mu    sync.Mutex
	calls []string
}

func (s *catalogServer) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *catalogServer) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func newCatalogServer(t *testing.T) *catalogServer {
	t.Helper()
	s := &catalogServer{t: t, answers: map[string]any{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OperationName string `json:"operationName"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.record(req.OperationName)
		answer, ok := s.answers[req.OperationName]
		if !ok {
			http.Error(w, "unexpected operation", http.StatusBadRequest)
			return
		}
		writeJSON(w, map[string]any{"data": answer})
	})
	mux.HandleFunc("/api/hash", func(w http.ResponseWriter, r *http.Request) {
		s.record("hash")
		writeJSON(w, map[string]string{"hash": s.hash})
	})
	s.server = httptest.NewServer(mux)
	t.Cleanup(s.server.Close)
	return s
}

// nodes wraps media items the way the catalog returns them.
func nodes(items ...map[string]any) map[string]any {
	if items == nil {
		items = []map[string]any{}
	}
	return map[string]any{"mediaItems": map[string]any{"nodes": items}}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// runCLI executes the root command with args and returns stdout. Flags are
// reset first since cobra keeps parsed values between runs.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "discdb.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[log]\nlevel = \"error\"\n"), 0644))
	t.Setenv("DISCDB_CONFIG", cfgPath)

	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// makeBluray creates a minimal Blu-ray backup directory.
func makeBluray(t *testing.T, label string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), label)
	stream := filepath.Join(root, "BDMV", "STREAM")
	require.NoError(t, os.MkdirAll(stream, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(stream, "00000.m2ts"), make([]byte, 2048), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(stream, "00001.m2ts"), make([]byte, 1024), 0644))
	return root
}

func matrixNode() map[string]any {
	return map[string]any{
		"title": "The Matrix",
		"year":  1999,
		"slug":  "the-matrix-1999",
		"type":  "Movie",
		"externalids": map[string]any{
			"tmdb": 603,
			"imdb": "tt0133093",
		},
		"releases": []map[string]any{{
			"slug":       "2018-4k",
			"title":      "The Matrix 4K",
			"year":       2018,
			"locale":     "en-us",
			"regionCode": "A",
			"discs": []map[string]any{{
				"index":       1,
				"name":        "Feature",
				"format":      "UHD",
				"slug":        "feature",
				"contentHash": "ABC123",
				"titles": []map[string]any{{
					"index":       0,
					"duration":    "2:16:17",
					"displaySize": "60.1 GB",
					"sourceFile":  "00800.m2ts",
					"size":        64532877312,
					"item":        map[string]any{"title": "The Matrix", "type": "MainMovie"},
				}},
			}},
		}},
	}
}
