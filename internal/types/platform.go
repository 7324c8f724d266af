package types

import "runtime"

// Platform identifies the operating system and architecture one
// resolution run targets. It is passed explicitly into every resolution
// call instead of living in package-level state, so cross-platform
// behavior is fully deterministic under test.
type Platform struct {
	// Name is the descriptor-schema platform name: "windows", "linux"
	// or "osx".
	Name string

	// Arch is the descriptor-schema architecture name: "x86_64" or "x86".
	Arch string
}

// ArchCode returns the numeric code substituted for the ${arch}
// placeholder inside native classifier templates.
func (p Platform) ArchCode() string {
	if p.Arch == "x86_64" {
		return "64"
	}
	return "32"
}

// PathListSeparator returns the classpath entry separator for the
// platform the process will run on.
func (p Platform) PathListSeparator() string {
	if p.Name == "windows" {
		return ";"
	}
	return ":"
}

// CurrentPlatform maps the running Go toolchain target onto the
// descriptor-schema platform names.
func CurrentPlatform() Platform {
	name := "linux"
	switch runtime.GOOS {
	case "windows":
		name = "windows"
	case "darwin":
		name = "osx"
	}
	arch := "x86"
	if runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64" {
		arch = "x86_64"
	}
	return Platform{Name: name, Arch: arch}
}
