// Package fetch retrieves a single package's artifact from the remote
// repository: the required main.init content plus its optional package.json
// metadata. The fetcher writes nothing to disk; placing files is the
// installer's job, which keeps the no-write-until-success discipline in one
// place.
package fetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/gopu-inc/initpkg/pkg/model"
)

const (
	userAgent = "initpkg/1.0"

	// MainFileName is the required primary content file of every package.
	MainFileName = "main.init"
	// MetadataFileName is the optional per-package metadata file.
	MetadataFileName = "package.json"
)

// Fetcher downloads package artifacts over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates an artifact fetcher with the given request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchPackage retrieves {repo}/packages/{name}/main.init (required) and,
// best-effort, {repo}/packages/{name}/package.json. When the metadata fetch
// fails the fallback record from the index stands in. A failed content fetch
// is terminal for this package in this invocation; no retries are performed.
func (f *Fetcher) FetchPackage(ctx context.Context, repositoryURL, name string, fallback model.PackageRecord) (*model.Artifact, error) {
	content, err := f.get(ctx, repositoryURL, name, MainFileName)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrArtifactFetch, "%s: %v", name, err)
	}

	metadata := fallback
	metadata.Name = name
	if raw, err := f.get(ctx, repositoryURL, name, MetadataFileName); err != nil {
		logger.Debugf("no package.json for %s, using index metadata: %v", name, err)
	} else {
		var record model.PackageRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			logger.Debugf("malformed package.json for %s, using index metadata: %v", name, err)
		} else {
			if record.Name == "" {
				record.Name = name
			}
			metadata = record
		}
	}

	return &model.Artifact{
		Name:     name,
		Content:  content,
		Metadata: metadata,
	}, nil
}

func (f *Fetcher) get(ctx context.Context, repositoryURL, name, file string) ([]byte, error) {
	target, err := buildPackageURL(repositoryURL, name, file)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(errors.ErrArtifactFetch, "unexpected status code %d for %s", resp.StatusCode, target)
	}

	return io.ReadAll(resp.Body)
}

func buildPackageURL(repositoryURL, name, file string) (string, error) {
	parsed, err := url.Parse(repositoryURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid repository URL")
	}
	parsed.Path, err = url.JoinPath(parsed.Path, "packages", name, file)
	if err != nil {
		return "", errors.Wrap(err, "failed to build package URL")
	}
	return parsed.String(), nil
}
