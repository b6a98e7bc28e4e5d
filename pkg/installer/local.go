package installer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/gopu-inc/initpkg/pkg/archive"
	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/gopu-inc/initpkg/pkg/fetch"
	"github.com/gopu-inc/initpkg/pkg/fsutil"
	"github.com/gopu-inc/initpkg/pkg/hooks"
	"github.com/gopu-inc/initpkg/pkg/model"
)

// InstallLocal installs a package from a directory or archive on the local
// machine. No network access and no dependency resolution happen here;
// local packages are leaves by construction. The whole source tree is copied
// destructively over any existing directory of the same name. It returns the
// installed package name.
func (inst *Installer) InstallLocal(ctx context.Context, sourcePath string) (string, error) {
	sourceDir := sourcePath
	if archive.IsArchive(sourcePath) {
		tmpDir, err := os.MkdirTemp("", "initpkg-local-*")
		if err != nil {
			return "", errors.Wrap(err, "failed to create extraction directory")
		}
		defer func() { _ = os.RemoveAll(tmpDir) }()

		if err := archive.Extract(ctx, sourcePath, tmpDir); err != nil {
			return "", err
		}
		sourceDir = tmpDir
	}

	if _, err := os.Stat(filepath.Join(sourceDir, fetch.MainFileName)); err != nil {
		return "", errors.Wrapf(errors.ErrMissingMainFile, "%s", sourcePath)
	}

	name := localPackageName(sourcePath, sourceDir)
	target := inst.env.PackageDir(name)

	if err := fsutil.EnsureDir(inst.env.PackagesDir); err != nil {
		return "", errors.Wrap(err, "failed to create packages directory")
	}
	if err := fsutil.CopyDir(sourceDir, target); err != nil {
		return "", err
	}

	inst.store.Add(name, model.InstalledEntry{
		Version:     model.DefaultLocalVersion,
		Path:        target,
		Source:      model.SourceLocal,
		InstalledAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err := inst.store.Save(); err != nil {
		return "", err
	}
	logger.Successf("package '%s' installed", name)

	inst.runHook(target, hooks.PostInstall, model.DefaultLocalVersion, name)
	return name, nil
}

// localPackageName derives the package name: the metadata record inside the
// source wins, then the source directory or archive file name.
func localPackageName(sourcePath, sourceDir string) string {
	if data, err := os.ReadFile(filepath.Join(sourceDir, fetch.MetadataFileName)); err == nil {
		var record model.PackageRecord
		if err := json.Unmarshal(data, &record); err == nil && record.Name != "" {
			return record.Name
		}
	}

	base := filepath.Base(sourcePath)
	if archive.IsArchive(sourcePath) {
		for _, suffix := range []string{".tar.gz", ".tgz", ".zip"} {
			if strings.HasSuffix(strings.ToLower(base), suffix) {
				base = base[:len(base)-len(suffix)]
				break
			}
		}
	}
	return base
}
