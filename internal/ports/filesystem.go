package ports

// FilesystemPort answers artifact existence checks during classpath
// resolution. The core performs no other filesystem access.
type FilesystemPort interface {
	Exists(path string) bool
}
