//go:build integration

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopu-inc/initpkg/pkg/model"
	"github.com/stretchr/testify/require"
)

// repoFixture describes one package served by the test repository.
type repoFixture struct {
	record  model.PackageRecord
	content string
}

// startRepoServer serves a repository layout ({base}/index.json and
// {base}/packages/{name}/...) from the given fixtures.
func startRepoServer(t *testing.T, fixtures []repoFixture) *httptest.Server {
	t.Helper()

	idx := make(map[string]model.PackageRecord, len(fixtures))
	for _, f := range fixtures {
		idx[f.record.Name] = f.record
	}
	indexData, err := json.Marshal(idx)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/index.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(indexData)
	})
	for _, f := range fixtures {
		f := f
		metadata, err := json.Marshal(f.record)
		require.NoError(t, err)
		mux.HandleFunc("/packages/"+f.record.Name+"/main.init", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(f.content))
		})
		mux.HandleFunc("/packages/"+f.record.Name+"/package.json", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(metadata)
		})
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// setupHome points the application at a fresh temporary home and records
// the served repository URL in the state file.
func setupHome(t *testing.T, repoURL string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("INITPKG_HOME", home)

	runCLI(t, "repo", repoURL)
	return home
}

// runCLI executes the root command with the given arguments, failing the
// test on error.
func runCLI(t *testing.T, args ...string) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
}

// runCLIErr executes the root command and returns its error.
func runCLIErr(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

// captureStdout runs fn while capturing everything written to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func packageDir(home, name string) string {
	return filepath.Join(home, "packages", name)
}
