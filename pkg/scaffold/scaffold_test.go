package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopu-inc/initpkg/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	dir := t.TempDir()

	pkgDir, err := Create(dir, "greeter", "2.0.0")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "greeter"), pkgDir)

	main, err := os.ReadFile(filepath.Join(pkgDir, "main.init"))
	require.NoError(t, err)
	assert.Contains(t, string(main), "# Package greeter")
	assert.Contains(t, string(main), `let version ==> "2.0.0"`)

	data, err := os.ReadFile(filepath.Join(pkgDir, "package.json"))
	require.NoError(t, err)
	var record model.PackageRecord
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "greeter", record.Name)
	assert.Equal(t, "2.0.0", record.Version)
	assert.Equal(t, "Package greeter for INITLANG", record.Description)
}

func TestCreateDefaultVersion(t *testing.T) {
	pkgDir, err := Create(t.TempDir(), "greeter", "")
	require.NoError(t, err)

	main, err := os.ReadFile(filepath.Join(pkgDir, "main.init"))
	require.NoError(t, err)
	assert.Contains(t, string(main), `let version ==> "1.0.0"`)
}

func TestCreatePreservesExistingMainFile(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "greeter")
	require.NoError(t, os.MkdirAll(pkgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "main.init"), []byte("# my work\n"), 0o644))

	_, err := Create(dir, "greeter", "1.0.0")
	require.NoError(t, err)

	main, err := os.ReadFile(filepath.Join(pkgDir, "main.init"))
	require.NoError(t, err)
	assert.Equal(t, "# my work\n", string(main))
}
