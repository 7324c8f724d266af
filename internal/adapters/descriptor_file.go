package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mclauncher/internal/types"
)

// DescriptorFileAdapter loads version descriptors from the standard
// versions/<name>/<name>.json layout under the game root.
type DescriptorFileAdapter struct{}

func NewDescriptorFileAdapter() DescriptorFileAdapter {
	return DescriptorFileAdapter{}
}

func (a DescriptorFileAdapter) LoadVersion(rootDir string, versionName string) (types.Descriptor, error) {
	path := filepath.Join(rootDir, "versions", versionName, versionName+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Descriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("version descriptor not found").
			WithCause(err)
	}
	var desc types.Descriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return types.Descriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse version descriptor").
			WithCause(err)
	}
	return desc, nil
}
