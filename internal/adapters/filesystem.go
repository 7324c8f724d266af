package adapters

import "os"

// OSFilesystemAdapter answers existence checks against the real
// filesystem.
type OSFilesystemAdapter struct{}

func NewOSFilesystemAdapter() OSFilesystemAdapter {
	return OSFilesystemAdapter{}
}

func (a OSFilesystemAdapter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
