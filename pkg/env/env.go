// Package env resolves the on-disk layout of the initpkg application
// directory. Every component receives an explicit Environment instead of
// reaching for process-wide path constants, so tests can point the whole
// tool at a throwaway directory.
package env

import (
	"os"
	"path/filepath"

	"github.com/gopu-inc/initpkg/pkg/fsutil"
)

const (
	// AppDirName is the name of the per-user application directory.
	AppDirName = ".initlang"

	// HomeEnvVar overrides the application directory location when set.
	HomeEnvVar = "INITPKG_HOME"

	packagesDirName = "packages"
	cacheDirName    = "cache"
	stateFileName   = "packages.json"
	configFileName  = "config.yaml"
	indexCacheName  = "index.json"
)

// Environment holds the resolved paths for one initpkg invocation.
type Environment struct {
	// BaseDir is the application directory, e.g. ~/.initlang.
	BaseDir string
	// PackagesDir holds one subdirectory per installed package.
	PackagesDir string
	// CacheDir holds the cached remote index.
	CacheDir string
	// StateFile is the persisted repository URL + installed set.
	StateFile string
	// ConfigFile is the optional YAML tool configuration.
	ConfigFile string
}

// New resolves the default environment: $INITPKG_HOME if set, otherwise
// ~/.initlang.
func New() (*Environment, error) {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return NewAt(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewAt(filepath.Join(home, AppDirName)), nil
}

// NewAt builds an environment rooted at the given base directory.
func NewAt(baseDir string) *Environment {
	return &Environment{
		BaseDir:     baseDir,
		PackagesDir: filepath.Join(baseDir, packagesDirName),
		CacheDir:    filepath.Join(baseDir, cacheDirName),
		StateFile:   filepath.Join(baseDir, stateFileName),
		ConfigFile:  filepath.Join(baseDir, configFileName),
	}
}

// PackageDir returns the installation directory for a named package.
func (e *Environment) PackageDir(name string) string {
	return filepath.Join(e.PackagesDir, name)
}

// IndexCacheFile returns the path of the cached remote index.
func (e *Environment) IndexCacheFile() string {
	return filepath.Join(e.CacheDir, indexCacheName)
}

// EnsureDirs creates the application directory tree. Failure here is the one
// unrecoverable error class: nothing else can proceed without it.
func (e *Environment) EnsureDirs() error {
	for _, dir := range []string{e.BaseDir, e.PackagesDir, e.CacheDir} {
		if err := fsutil.EnsureDir(dir); err != nil {
			return err
		}
	}
	return nil
}
