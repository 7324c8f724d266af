package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

func TestListVersions(t *testing.T) {
	root := t.TempDir()
	writeVersionFile(t, root, "1.20.1", `{"id":"1.20.1","mainClass":"Main"}`)
	writeVersionFile(t, root, "1.19.4", `{"id":"1.19.4","mainClass":"Main"}`)
	// Directory without a descriptor is not a version.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "versions", "broken"), 0o755))

	names, err := NewVersionDirAdapter().ListVersions(root)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"1.20.1", "1.19.4"}, names)
}

func TestListVersionsMissingRoot(t *testing.T) {
	_, err := NewVersionDirAdapter().ListVersions(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestOSFilesystemExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.jar")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fs := NewOSFilesystemAdapter()
	require.True(t, fs.Exists(path))
	require.False(t, fs.Exists(filepath.Join(dir, "b.jar")))
}
