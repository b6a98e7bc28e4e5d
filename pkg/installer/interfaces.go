//go:generate mockgen -destination=./mocks/installer.go -package=mocks . IndexSource,ArtifactFetcher,HookRunner

package installer

import (
	"context"

	"github.com/gopu-inc/initpkg/pkg/hooks"
	"github.com/gopu-inc/initpkg/pkg/model"
)

// IndexSource is the subset of the index cache used by the installer. The
// installer never mutates the index; it is read-only input per invocation.
type IndexSource interface {
	// Fetch returns the package index for the repository, degrading to a
	// cached or empty index on failure.
	Fetch(ctx context.Context, repositoryURL string) model.Index

	// Invalidate drops the local index cache.
	Invalidate() error
}

// ArtifactFetcher retrieves a single package's content and metadata.
type ArtifactFetcher interface {
	FetchPackage(ctx context.Context, repositoryURL, name string, fallback model.PackageRecord) (*model.Artifact, error)
}

// HookRunner executes per-package lifecycle scripts.
type HookRunner interface {
	RunDir(packageDir string, hookType hooks.HookType, hctx hooks.Context) error
}
