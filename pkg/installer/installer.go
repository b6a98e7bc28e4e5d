// Package installer drives package installation: it reconciles requested
// names against the remote index and the installed set, fetches artifacts,
// records results in the persistent state and walks declared dependencies
// depth first.
package installer

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/gopu-inc/initpkg/pkg/env"
	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/gopu-inc/initpkg/pkg/fetch"
	"github.com/gopu-inc/initpkg/pkg/fsutil"
	"github.com/gopu-inc/initpkg/pkg/hooks"
	"github.com/gopu-inc/initpkg/pkg/model"
	"github.com/gopu-inc/initpkg/pkg/state"
)

// Installer ties the index cache, the artifact fetcher and the state store
// together. One Installer serves one invocation; it is not safe for
// concurrent use.
type Installer struct {
	env     *env.Environment
	store   *state.Store
	index   IndexSource
	fetcher ArtifactFetcher
	hooks   HookRunner
}

// New constructs an installer from its collaborators. hooks may be nil to
// disable lifecycle scripts.
func New(environment *env.Environment, store *state.Store, index IndexSource, fetcher ArtifactFetcher, hookRunner HookRunner) *Installer {
	return &Installer{
		env:     environment,
		store:   store,
		index:   index,
		fetcher: fetcher,
		hooks:   hookRunner,
	}
}

// Install fetches the index once and installs every requested package plus
// its transitive dependencies. A failure is local to its package: siblings
// are still attempted, and the combined error is returned at the end.
func (inst *Installer) Install(ctx context.Context, names []string) error {
	idx := inst.index.Fetch(ctx, inst.store.Repository())
	if len(idx) == 0 {
		return errors.Wrap(errors.ErrIndexUnavailable, "cannot connect to package repository")
	}

	var errs []error
	for _, name := range names {
		if err := inst.installOne(ctx, name, idx, map[string]bool{}); err != nil {
			logger.Errorf("failed to install %s: %v", name, err)
			errs = append(errs, errors.Wrapf(err, "install %s", name))
		}
	}
	return stderrors.Join(errs...)
}

// installOne runs the per-package state machine. The installed set is the
// sole de-duplication mechanism and is rechecked for every dependency before
// recursing. visiting guards the active dependency chain against cycles.
func (inst *Installer) installOne(ctx context.Context, name string, idx model.Index, visiting map[string]bool) error {
	if inst.store.IsInstalled(name) {
		logger.Infof("package '%s' is already installed", name)
		return nil
	}
	if visiting[name] {
		return errors.Wrapf(errors.ErrDependencyCycle, "involving package %q", name)
	}

	record, ok := idx[name]
	if !ok {
		return errors.ErrPackageNotFound(name, idx.Names())
	}

	logger.Infof("installing %s v%s...", name, record.Version)

	artifact, err := inst.fetcher.FetchPackage(ctx, inst.store.Repository(), name, record)
	if err != nil {
		// Terminal for this package; its dependencies are not attempted.
		return err
	}

	if err := inst.writePackage(artifact); err != nil {
		return err
	}

	pkgDir := inst.env.PackageDir(name)
	inst.store.Add(name, model.InstalledEntry{
		Version:     artifact.Metadata.Version,
		Path:        pkgDir,
		Source:      model.SourceGithub,
		InstalledAt: time.Now().UTC().Format(time.RFC3339),
	})
	// Saved per package, not batched: a crash mid-run keeps prior successes.
	if err := inst.store.Save(); err != nil {
		return err
	}
	logger.Successf("%s v%s installed", name, artifact.Metadata.Version)

	inst.runHook(pkgDir, hooks.PostInstall, artifact.Metadata.Version, name)

	visiting[name] = true
	defer delete(visiting, name)

	var errs []error
	for _, dep := range artifact.Metadata.Dependencies {
		if err := inst.installOne(ctx, dep, idx, visiting); err != nil {
			logger.Errorf("failed to install dependency %s of %s: %v", dep, name, err)
			errs = append(errs, errors.Wrapf(err, "dependency %s", dep))
		}
	}
	return stderrors.Join(errs...)
}

// writePackage materializes a fetched artifact on disk. Files are staged in
// a hidden temp directory and moved into place with a rename, so a failed
// install never leaves a partial package directory behind.
func (inst *Installer) writePackage(artifact *model.Artifact) (err error) {
	if err := fsutil.EnsureDir(inst.env.PackagesDir); err != nil {
		return errors.Wrap(err, "failed to create packages directory")
	}

	staging, err := os.MkdirTemp(inst.env.PackagesDir, ".staging-"+artifact.Name+"-")
	if err != nil {
		return errors.Wrap(err, "failed to create staging directory")
	}
	defer func() {
		if err != nil {
			_ = os.RemoveAll(staging)
		}
	}()

	if err := os.WriteFile(
		filepath.Join(staging, fetch.MainFileName), artifact.Content, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(err, "failed to write main.init")
	}

	meta, err := json.MarshalIndent(artifact.Metadata, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal package metadata")
	}
	if err := os.WriteFile(
		filepath.Join(staging, fetch.MetadataFileName), meta, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(err, "failed to write package.json")
	}

	target := inst.env.PackageDir(artifact.Name)
	// Replace, don't merge: stale leftovers from older installs go away.
	if err := os.RemoveAll(target); err != nil {
		return errors.Wrapf(err, "failed to remove stale directory %s", target)
	}
	if err := os.Rename(staging, target); err != nil {
		return errors.Wrapf(err, "failed to move package into place at %s", target)
	}
	return nil
}

// runHook executes a lifecycle script, reporting failure without failing
// the surrounding operation.
func (inst *Installer) runHook(pkgDir string, hookType hooks.HookType, version, name string) {
	if inst.hooks == nil {
		return
	}
	hctx := hooks.Context{
		PackageName:    name,
		PackageVersion: version,
		PackagePath:    pkgDir,
	}
	if err := inst.hooks.RunDir(pkgDir, hookType, hctx); err != nil {
		logger.Warnf("%s hook for %s failed: %v", hookType, name, err)
	}
}
