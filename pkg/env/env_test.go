package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAt(t *testing.T) {
	e := NewAt("/tmp/initlang-test")

	assert.Equal(t, "/tmp/initlang-test", e.BaseDir)
	assert.Equal(t, filepath.Join("/tmp/initlang-test", "packages"), e.PackagesDir)
	assert.Equal(t, filepath.Join("/tmp/initlang-test", "cache"), e.CacheDir)
	assert.Equal(t, filepath.Join("/tmp/initlang-test", "packages.json"), e.StateFile)
	assert.Equal(t, filepath.Join("/tmp/initlang-test", "cache", "index.json"), e.IndexCacheFile())
	assert.Equal(t, filepath.Join("/tmp/initlang-test", "packages", "http-utils"), e.PackageDir("http-utils"))
}

func TestNewHonorsEnvOverride(t *testing.T) {
	override := t.TempDir()
	t.Setenv(HomeEnvVar, override)

	e, err := New()
	require.NoError(t, err)
	assert.Equal(t, override, e.BaseDir)
}

func TestNewDefaultsToHome(t *testing.T) {
	t.Setenv(HomeEnvVar, "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	e, err := New()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, AppDirName), e.BaseDir)
}

func TestEnsureDirs(t *testing.T) {
	e := NewAt(filepath.Join(t.TempDir(), "home"))
	require.NoError(t, e.EnsureDirs())

	for _, dir := range []string{e.BaseDir, e.PackagesDir, e.CacheDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
