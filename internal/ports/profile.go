package ports

import "mclauncher/internal/types"

// ProfilePort loads named launch configurations.
type ProfilePort interface {
	LoadProfiles(path string) (types.ProfilesFile, error)
}
