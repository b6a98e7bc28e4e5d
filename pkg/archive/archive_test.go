package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsArchive(t *testing.T) {
	assert.True(t, IsArchive("pkg-1.0.0.tar.gz"))
	assert.True(t, IsArchive("pkg.TGZ"))
	assert.True(t, IsArchive("pkg.zip"))
	assert.False(t, IsArchive("pkg"))
	assert.False(t, IsArchive("main.init"))
}

func TestPackExtractRoundTrip(t *testing.T) {
	ctx := context.Background()

	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "main.init"), []byte("init.log(\"hi\")\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "package.json"), []byte(`{"name":"demo","version":"1.0.0"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "lib", "util.init"), []byte("fi util() {}\n"), 0o644))

	archivePath := filepath.Join(t.TempDir(), "demo-1.0.0.tar.gz")
	require.NoError(t, Pack(ctx, src, archivePath))

	info, err := os.Stat(archivePath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	dest := filepath.Join(t.TempDir(), "out")
	require.NoError(t, Extract(ctx, archivePath, dest))

	data, err := os.ReadFile(filepath.Join(dest, "main.init"))
	require.NoError(t, err)
	assert.Equal(t, "init.log(\"hi\")\n", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "lib", "util.init"))
	require.NoError(t, err)
	assert.Equal(t, "fi util() {}\n", string(data))
}

func TestExtractReplacesDestination(t *testing.T) {
	ctx := context.Background()

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "main.init"), []byte("new"), 0o644))
	archivePath := filepath.Join(t.TempDir(), "pkg.tar.gz")
	require.NoError(t, Pack(ctx, src, archivePath))

	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "stale.init"), []byte("old"), 0o644))

	require.NoError(t, Extract(ctx, archivePath, dest))

	_, err := os.Stat(filepath.Join(dest, "stale.init"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dest, "main.init"))
	assert.NoError(t, err)
}

func TestPackMissingSource(t *testing.T) {
	err := Pack(context.Background(), filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "out.tar.gz"))
	assert.Error(t, err)
}

func TestExtractBadArchive(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.tar.gz")
	require.NoError(t, os.WriteFile(bad, []byte("not an archive"), 0o644))

	err := Extract(context.Background(), bad, filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)
}
