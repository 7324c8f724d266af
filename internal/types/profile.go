package types

// Profile is one named launch configuration from a profiles file. Zero
// fields fall back to the request value or the built-in default.
type Profile struct {
	// Version is the version identifier this profile launches.
	Version string `yaml:"version,omitempty"`

	// PlayerName is the display name used for the launch.
	PlayerName string `yaml:"player_name,omitempty"`

	// JavaPath overrides the interpreter executable.
	JavaPath string `yaml:"java_path,omitempty"`

	// MemoryMB overrides the fixed JVM heap size in megabytes.
	MemoryMB int `yaml:"memory_mb,omitempty"`

	// UseSystemMemory lets the JVM pick its own heap sizing.
	UseSystemMemory bool `yaml:"use_system_memory,omitempty"`
}

// ProfilesFile is the top-level structure of a profiles.yaml file.
type ProfilesFile struct {
	// SchemaVersion identifies the file format version.
	SchemaVersion string `yaml:"schema_version"`

	// Profiles maps profile names to launch configurations.
	Profiles map[string]Profile `yaml:"profiles"`
}
