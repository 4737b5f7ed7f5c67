package utils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibhu0810/db/pkg/utils"
)

func TestEnsureDirCreatesNestedDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "client", "public", "templates")
	require.NoError(t, utils.EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// A second call on an existing directory is a no-op.
	assert.NoError(t, utils.EnsureDir(dir))
}

func TestEnsureDirFailsOnRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	err := utils.EnsureDir(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	assert.False(t, utils.FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, utils.FileExists(path))
}

func TestArchiveExistingCopiesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "domains-template.xlsx")
	archiveDir := filepath.Join(dir, "archive")
	content := []byte("previous template bytes")
	require.NoError(t, os.WriteFile(path, content, 0644))

	archivedPath, err := utils.ArchiveExisting(path, archiveDir)
	require.NoError(t, err)
	require.NotEmpty(t, archivedPath)

	// The original is untouched and the copy carries the same bytes.
	original, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, original)

	archived, err := os.ReadFile(archivedPath)
	require.NoError(t, err)
	assert.Equal(t, content, archived)

	// The archive name keeps the base name and extension around the uuid.
	base := filepath.Base(archivedPath)
	assert.True(t, strings.HasPrefix(base, "domains-template_"), base)
	assert.True(t, strings.HasSuffix(base, ".xlsx"), base)
}

func TestArchiveExistingNoopWhenMissing(t *testing.T) {
	dir := t.TempDir()
	archivedPath, err := utils.ArchiveExisting(filepath.Join(dir, "missing.xlsx"), filepath.Join(dir, "archive"))
	require.NoError(t, err)
	assert.Empty(t, archivedPath)
}

func TestArchiveExistingUniqueNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "domains-template.csv")
	archiveDir := filepath.Join(dir, "archive")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	first, err := utils.ArchiveExisting(path, archiveDir)
	require.NoError(t, err)
	second, err := utils.ArchiveExisting(path, archiveDir)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "successive archives must not collide")
}
