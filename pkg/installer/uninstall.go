package installer

import (
	stderrors "errors"
	"os"

	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/gopu-inc/initpkg/pkg/hooks"
)

// Uninstall removes the named packages: their on-disk directories and their
// entries in the installed set. Unknown names are reported no-ops. No
// dependent-package awareness exists; removing a package others depend on
// is permitted and unchecked.
func (inst *Installer) Uninstall(names []string) error {
	var errs []error
	for _, name := range names {
		if err := inst.uninstallOne(name); err != nil {
			logger.Errorf("failed to uninstall %s: %v", name, err)
			errs = append(errs, errors.Wrapf(err, "uninstall %s", name))
		}
	}
	return stderrors.Join(errs...)
}

func (inst *Installer) uninstallOne(name string) error {
	entry, ok := inst.store.Get(name)
	if !ok {
		logger.Warnf("package '%s' is not installed", name)
		return nil
	}

	pkgDir := entry.Path
	if pkgDir == "" {
		pkgDir = inst.env.PackageDir(name)
	}

	inst.runHook(pkgDir, hooks.PreRemove, entry.Version, name)

	if err := os.RemoveAll(pkgDir); err != nil {
		return errors.Wrapf(err, "failed to remove package directory %s", pkgDir)
	}

	inst.store.Remove(name)
	if err := inst.store.Save(); err != nil {
		return err
	}
	logger.Successf("%s uninstalled", name)
	return nil
}
