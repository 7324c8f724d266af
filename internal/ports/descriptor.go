package ports

import "mclauncher/internal/types"

// DescriptorPort loads version descriptors from the game root.
type DescriptorPort interface {
	// LoadVersion reads and parses versions/<name>/<name>.json under the
	// given root directory.
	LoadVersion(rootDir string, versionName string) (types.Descriptor, error)
}

// VersionListPort enumerates installed versions under a game root.
type VersionListPort interface {
	// ListVersions returns the names of version directories that contain
	// a descriptor file. Order is unspecified.
	ListVersions(rootDir string) ([]string, error)
}
