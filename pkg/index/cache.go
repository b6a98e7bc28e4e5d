// Package index owns the remote package index: fetching it over HTTP,
// caching the last good copy on disk, and falling back to that copy when the
// network is unavailable. The index is treated as ephemeral and cheap to
// refetch; correctness comes from the installer re-checking installed state,
// not from freshness guarantees here.
package index

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/gopu-inc/initpkg/pkg/fsutil"
	"github.com/gopu-inc/initpkg/pkg/model"
)

const userAgent = "initpkg/1.0"

// Cache fetches the remote index and keeps the last successful payload in a
// local cache file. Presence of the cache file alone makes it authoritative
// until explicitly invalidated; no TTL is enforced.
type Cache struct {
	client    *http.Client
	cacheFile string
}

// NewCache creates an index cache backed by the given cache file path.
func NewCache(cacheFile string, timeout time.Duration) *Cache {
	return &Cache{
		client: &http.Client{
			Timeout: timeout,
		},
		cacheFile: cacheFile,
	}
}

// Fetch retrieves {repositoryURL}/index.json. On success the raw payload
// overwrites the cache file and the parsed mapping is returned. On any
// failure (network error, non-200 response, malformed payload) it degrades:
// first to the cached copy if one exists, then to an empty index. Errors
// never escape this boundary.
func (c *Cache) Fetch(ctx context.Context, repositoryURL string) model.Index {
	idx, raw, err := c.fetchRemote(ctx, repositoryURL)
	if err == nil {
		if writeErr := c.writeCache(raw); writeErr != nil {
			logger.Warnf("could not update index cache: %v", writeErr)
		}
		return idx
	}

	logger.Warnf("could not fetch online index: %v", err)

	cached, cacheErr := c.Cached()
	if cacheErr != nil {
		if !os.IsNotExist(cacheErr) {
			logger.Debugf("index cache unusable: %v", cacheErr)
		}
		return model.Index{}
	}
	logger.Infof("using cached package index")
	return cached
}

// Cached reads the index from the cache file without touching the network.
func (c *Cache) Cached() (model.Index, error) {
	data, err := os.ReadFile(c.cacheFile)
	if err != nil {
		return nil, err
	}
	return parseIndex(data)
}

// Invalidate deletes the cache file if present; subsequent fetches must go
// to the network.
func (c *Cache) Invalidate() error {
	if err := os.Remove(c.cacheFile); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove index cache")
	}
	return nil
}

func (c *Cache) fetchRemote(ctx context.Context, repositoryURL string) (model.Index, []byte, error) {
	indexURL, err := buildIndexURL(repositoryURL)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, http.NoBody)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrIndexUnavailable, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, errors.Wrapf(errors.ErrIndexUnavailable, "unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read response body")
	}

	idx, err := parseIndex(data)
	if err != nil {
		return nil, nil, err
	}
	return idx, data, nil
}

func (c *Cache) writeCache(raw []byte) error {
	if err := fsutil.EnsureFileDir(c.cacheFile); err != nil {
		return err
	}
	return os.WriteFile(c.cacheFile, raw, fsutil.FileModeDefault)
}

// parseIndex decodes the index mapping and normalizes each record's name to
// its key, which keeps the name/key invariant even for sloppy indexes.
func parseIndex(data []byte) (model.Index, error) {
	var idx model.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, errors.Wrap(errors.ErrIndexParse, err.Error())
	}
	for name, record := range idx {
		if record.Name == "" {
			record.Name = name
			idx[name] = record
		}
	}
	return idx, nil
}

func buildIndexURL(repositoryURL string) (string, error) {
	parsed, err := url.Parse(repositoryURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid repository URL")
	}
	parsed.Path, err = url.JoinPath(parsed.Path, "index.json")
	if err != nil {
		return "", fmt.Errorf("failed to build index URL: %w", err)
	}
	return parsed.String(), nil
}
