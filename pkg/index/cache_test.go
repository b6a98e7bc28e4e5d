package index

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIndexJSON = `{
  "http-utils": {"name": "http-utils", "version": "1.2.0", "dependencies": ["string-helpers"]},
  "string-helpers": {"version": "0.9.1"}
}`

func newIndexServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/index.json" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchSuccessWritesCache(t *testing.T) {
	srv := newIndexServer(t, http.StatusOK, testIndexJSON)
	cacheFile := filepath.Join(t.TempDir(), "cache", "index.json")
	cache := NewCache(cacheFile, 5*time.Second)

	idx := cache.Fetch(context.Background(), srv.URL)

	require.Len(t, idx, 2)
	assert.Equal(t, "1.2.0", idx["http-utils"].Version)
	assert.Equal(t, []string{"string-helpers"}, idx["http-utils"].Dependencies)

	// The raw payload was cached verbatim.
	data, err := os.ReadFile(cacheFile)
	require.NoError(t, err)
	assert.Equal(t, testIndexJSON, string(data))
}

func TestFetchNormalizesRecordNames(t *testing.T) {
	srv := newIndexServer(t, http.StatusOK, testIndexJSON)
	cache := NewCache(filepath.Join(t.TempDir(), "index.json"), 5*time.Second)

	idx := cache.Fetch(context.Background(), srv.URL)

	// string-helpers omits its name field; the key fills it in.
	assert.Equal(t, "string-helpers", idx["string-helpers"].Name)
}

func TestFetchFallsBackToCache(t *testing.T) {
	cacheFile := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(cacheFile, []byte(testIndexJSON), 0o644))

	// Server is gone: the cached copy answers.
	srv := newIndexServer(t, http.StatusOK, testIndexJSON)
	srv.Close()

	cache := NewCache(cacheFile, time.Second)
	idx := cache.Fetch(context.Background(), srv.URL)

	require.Len(t, idx, 2)
	assert.Equal(t, "1.2.0", idx["http-utils"].Version)
}

func TestFetchNoNetworkNoCacheIsEmpty(t *testing.T) {
	srv := newIndexServer(t, http.StatusOK, testIndexJSON)
	srv.Close()

	cache := NewCache(filepath.Join(t.TempDir(), "index.json"), time.Second)
	idx := cache.Fetch(context.Background(), srv.URL)

	assert.Empty(t, idx)
}

func TestFetchServerErrorFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom"},
		{name: "not found", status: http.StatusNotFound, body: ""},
		{name: "malformed payload", status: http.StatusOK, body: "{broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newIndexServer(t, tt.status, tt.body)
			cacheFile := filepath.Join(t.TempDir(), "index.json")
			require.NoError(t, os.WriteFile(cacheFile, []byte(testIndexJSON), 0o644))

			cache := NewCache(cacheFile, time.Second)
			idx := cache.Fetch(context.Background(), srv.URL)

			assert.Len(t, idx, 2)
		})
	}
}

func TestFetchFailureDoesNotClobberCache(t *testing.T) {
	srv := newIndexServer(t, http.StatusOK, "{broken")
	cacheFile := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(cacheFile, []byte(testIndexJSON), 0o644))

	cache := NewCache(cacheFile, time.Second)
	cache.Fetch(context.Background(), srv.URL)

	data, err := os.ReadFile(cacheFile)
	require.NoError(t, err)
	assert.Equal(t, testIndexJSON, string(data))
}

func TestInvalidate(t *testing.T) {
	cacheFile := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(cacheFile, []byte(testIndexJSON), 0o644))

	cache := NewCache(cacheFile, time.Second)
	require.NoError(t, cache.Invalidate())

	_, err := os.Stat(cacheFile)
	assert.True(t, os.IsNotExist(err))

	// Invalidating an already-missing cache is fine.
	assert.NoError(t, cache.Invalidate())
}

func TestCachedWithoutFile(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "index.json"), time.Second)
	_, err := cache.Cached()
	assert.True(t, os.IsNotExist(err))
}
