package types

// Launcher identity reported to the game through JVM properties and the
// ${version_type} placeholder.
const (
	LauncherBrand   = "mclauncher"
	LauncherVersion = "0.1.0"
)

// Fixed offline identity. Session issuance is out of scope, so every
// launch uses the same zero identity and token.
const (
	OfflineUUID        = "00000000-0000-0000-0000-000000000000"
	OfflineAccessToken = "00000000000000000000000000000000"
	OfflineUserType    = "legacy"
)

// RuntimeContext carries the fixed substitution values for one launch
// resolution. It is built once per launch request and never mutated
// afterwards; concurrent resolution runs each get their own value.
type RuntimeContext struct {
	// PlayerName is the display name substituted for ${auth_player_name}.
	PlayerName string

	// VersionName is the version identifier substituted for
	// ${version_name}.
	VersionName string

	// RootDir is the game root directory (the ".minecraft" tree).
	RootDir string

	// AssetsDir is the assets root directory.
	AssetsDir string

	// AssetsIndex is the assets index identifier from the descriptor.
	AssetsIndex string
}

// ResolvedLaunch is the output of one resolution run: the ordered
// classpath, the fully substituted game arguments, and the entries that
// were skipped along the way. It is produced once and handed to the
// process launcher.
type ResolvedLaunch struct {
	// Classpath is the ordered dependency search path. The primary client
	// jar is always first.
	Classpath []string

	// GameArgs is the substituted game argument list, one discrete
	// argument per element.
	GameArgs []string

	// Skipped records every dependency entry that contributed no
	// classpath entry, with the reason it was dropped. The core never
	// logs these itself; outer layers decide what to report.
	Skipped []SkipDiagnostic
}

// SkipDiagnostic explains why one dependency entry was dropped during
// classpath resolution.
type SkipDiagnostic struct {
	Coordinate string
	Reason     SkipReason
}

// Command is a fully assembled process invocation. Arguments are kept as
// discrete tokens; they are never joined into a single string and
// re-split.
type Command struct {
	Executable string
	Args       []string
	Env        map[string]string
}

// LaunchOptions are the interpreter options for one launch.
type LaunchOptions struct {
	// JavaPath is the interpreter executable invoked for the launch.
	JavaPath string

	// MemoryMB fixes the JVM heap size. Ignored when UseSystemMemory is
	// set or the value is not positive.
	MemoryMB int

	// UseSystemMemory lets the JVM pick its own heap sizing.
	UseSystemMemory bool
}

// ProcessHandle identifies a launched process.
type ProcessHandle struct {
	PID int
}
