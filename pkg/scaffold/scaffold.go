// Package scaffold generates the boilerplate files of a new INITLANG
// package: a main.init with a hello function and a package.json metadata
// record.
package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/gopu-inc/initpkg/pkg/fsutil"
	"github.com/gopu-inc/initpkg/pkg/model"
)

const mainTemplate = `# Package %[1]s

init.log("Package %[1]s loaded!")

fi hello() {
    init.ger("Hello from %[1]s!")
}

let version ==> "%[2]s"
`

// Create writes the boilerplate for a new package named name under dir.
// An existing main.init is left alone so re-running create never destroys
// work in progress; package.json is always rewritten. It returns the
// package directory.
func Create(dir, name, version string) (string, error) {
	if version == "" {
		version = model.DefaultLocalVersion
	}

	pkgDir := filepath.Join(dir, name)
	if err := fsutil.EnsureDir(pkgDir); err != nil {
		return "", errors.Wrapf(err, "failed to create package directory %s", pkgDir)
	}

	mainFile := filepath.Join(pkgDir, "main.init")
	if _, err := os.Stat(mainFile); os.IsNotExist(err) {
		content := fmt.Sprintf(mainTemplate, name, version)
		if err := os.WriteFile(mainFile, []byte(content), fsutil.FileModeDefault); err != nil {
			return "", errors.Wrap(err, "failed to write main.init")
		}
	}

	record := model.PackageRecord{
		Name:        name,
		Version:     version,
		Description: fmt.Sprintf("Package %s for INITLANG", name),
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal package metadata")
	}
	if err := os.WriteFile(filepath.Join(pkgDir, "package.json"), data, fsutil.FileModeDefault); err != nil {
		return "", errors.Wrap(err, "failed to write package.json")
	}

	return pkgDir, nil
}
