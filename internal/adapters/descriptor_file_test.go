package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

func writeVersionFile(t *testing.T, root string, name string, content string) {
	t.Helper()
	dir := filepath.Join(root, "versions", name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o644))
}

func TestLoadVersion(t *testing.T) {
	root := t.TempDir()
	writeVersionFile(t, root, "1.20.1", `{"id":"1.20.1","mainClass":"Main","assets":"5"}`)

	desc, err := NewDescriptorFileAdapter().LoadVersion(root, "1.20.1")
	require.NoError(t, err)
	require.Equal(t, "1.20.1", desc.ID)
	require.Equal(t, "Main", desc.MainClass)
	require.Equal(t, "5", desc.Assets)
}

func TestLoadVersionNotFound(t *testing.T) {
	_, err := NewDescriptorFileAdapter().LoadVersion(t.TempDir(), "1.20.1")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestLoadVersionParseError(t *testing.T) {
	root := t.TempDir()
	writeVersionFile(t, root, "1.20.1", `{"id": `)

	_, err := NewDescriptorFileAdapter().LoadVersion(root, "1.20.1")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
