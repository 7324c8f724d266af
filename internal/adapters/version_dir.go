package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// VersionDirAdapter enumerates installed versions by scanning the
// versions directory for subdirectories holding a descriptor file.
type VersionDirAdapter struct{}

func NewVersionDirAdapter() VersionDirAdapter {
	return VersionDirAdapter{}
}

func (a VersionDirAdapter) ListVersions(rootDir string) ([]string, error) {
	versionsDir := filepath.Join(rootDir, "versions")
	entries, err := os.ReadDir(versionsDir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("versions directory not found").
			WithCause(err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		descriptor := filepath.Join(versionsDir, name, name+".json")
		if _, err := os.Stat(descriptor); err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
