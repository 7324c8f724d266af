// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDescriptor marshals a descriptor value into the standard
// versions/<id>/<id>.json location under root.
func WriteDescriptor(t *testing.T, root string, id string, descriptor any) {
	t.Helper()
	dir := filepath.Join(root, "versions", id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	data, err := json.Marshal(descriptor)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), data, 0o644))
}

// TouchLibrary creates an empty jar at the standard libraries location
// for a group/artifact/version triple, with an optional classifier
// suffix, and returns its path.
func TouchLibrary(t *testing.T, root string, group string, artifact string, version string, classifier string) string {
	t.Helper()
	groupPath := filepath.Join(strings.Split(group, ".")...)
	dir := filepath.Join(root, "libraries", groupPath, artifact, version)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	name := artifact + "-" + version
	if classifier != "" {
		name += "-" + classifier
	}
	path := filepath.Join(dir, name+".jar")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}
