package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"mclauncher/internal/types"
)

// ProfileFileAdapter loads named launch configurations from a yaml
// profiles file.
type ProfileFileAdapter struct{}

func NewProfileFileAdapter() ProfileFileAdapter {
	return ProfileFileAdapter{}
}

func (a ProfileFileAdapter) LoadProfiles(path string) (types.ProfilesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ProfilesFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("profiles file not found").
			WithCause(err)
	}
	var profiles types.ProfilesFile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return types.ProfilesFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse profiles yaml").
			WithCause(err)
	}
	return profiles, nil
}
