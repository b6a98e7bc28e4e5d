package installer

import (
	"context"
	stderrors "errors"
	"time"

	version "github.com/hashicorp/go-version"

	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/gopu-inc/initpkg/pkg/hooks"
	"github.com/gopu-inc/initpkg/pkg/model"
)

// Update refreshes the index cache and reinstalls every github-sourced
// package whose advertised version is newer than the installed one. Local
// packages are never touched. It returns the names that were updated.
func (inst *Installer) Update(ctx context.Context) ([]string, error) {
	if err := inst.index.Invalidate(); err != nil {
		logger.Warnf("could not invalidate index cache: %v", err)
	}
	idx := inst.index.Fetch(ctx, inst.store.Repository())
	if len(idx) == 0 {
		return nil, errors.Wrap(errors.ErrIndexUnavailable, "cannot connect to package repository")
	}

	var updated []string
	var errs []error
	for _, name := range inst.store.InstalledNames() {
		entry, _ := inst.store.Get(name)
		if entry.Source != model.SourceGithub {
			continue
		}

		record, ok := idx[name]
		if !ok {
			logger.Warnf("installed package %s is no longer in the index", name)
			continue
		}
		if !isNewer(record, entry.Version) {
			continue
		}

		logger.Infof("updating %s %s -> %s", name, entry.Version, record.Version)
		if err := inst.updateOne(ctx, name, record, entry, idx); err != nil {
			errs = append(errs, errors.Wrapf(err, "update %s", name))
			continue
		}
		updated = append(updated, name)
	}
	return updated, stderrors.Join(errs...)
}

// updateOne replaces one installed package with the version the index
// advertises. The new artifact is fetched and staged before the installed
// copy is touched: a fetch or write failure leaves the old version intact
// on disk and in the installed set.
func (inst *Installer) updateOne(ctx context.Context, name string, record model.PackageRecord, entry model.InstalledEntry, idx model.Index) error {
	artifact, err := inst.fetcher.FetchPackage(ctx, inst.store.Repository(), name, record)
	if err != nil {
		return err
	}

	oldDir := entry.Path
	if oldDir == "" {
		oldDir = inst.env.PackageDir(name)
	}
	inst.runHook(oldDir, hooks.PreRemove, entry.Version, name)

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
	if err := inst.store.Save(); err != nil {
		return err
	}
	logger.Successf("%s updated to v%s", name, artifact.Metadata.Version)

	inst.runHook(pkgDir, hooks.PostInstall, artifact.Metadata.Version, name)

	// A new version may declare new dependencies; install any that are
	// missing. Already-installed ones are skipped by installOne.
	var errs []error
	for _, dep := range artifact.Metadata.Dependencies {
		if err := inst.installOne(ctx, dep, idx, map[string]bool{name: true}); err != nil {
			logger.Errorf("failed to install dependency %s of %s: %v", dep, name, err)
			errs = append(errs, errors.Wrapf(err, "dependency %s", dep))
		}
	}
	return stderrors.Join(errs...)
}

// isNewer reports whether the index record advertises a newer version than
// the installed one. When either side does not parse as a version, plain
// inequality decides, so packages with free-form versions still update on
// any change.
func isNewer(record model.PackageRecord, installedVersion string) bool {
	cv := record.GetVersion()
	iv, err := version.NewVersion(installedVersion)
	if cv == nil || err != nil {
		return record.Version != installedVersion
	}
	return cv.GreaterThan(iv)
}
