package app

import "mclauncher/internal/types"

type ResolveRequest struct {
	RootDir         string
	Version         string
	PlayerName      string
	Profile         string
	ProfilesPath    string
	JavaPath        string
	MemoryMB        int
	UseSystemMemory bool
	OSName          string
	Arch            string
}

type ResolveResult struct {
	Command   types.Command
	Classpath []string
	GameArgs  []string
	Skipped   []types.SkipDiagnostic
}

type LaunchRequest struct {
	RootDir         string
	Version         string
	PlayerName      string
	Profile         string
	ProfilesPath    string
	JavaPath        string
	MemoryMB        int
	UseSystemMemory bool
}

type LaunchResult struct {
	PID     int
	Command types.Command
	Skipped []types.SkipDiagnostic
}

type InspectRequest struct {
	RootDir string
	Version string
	OSName  string
	Arch    string
}

type InspectResult struct {
	Version       string
	MainClass     string
	AssetsIndex   string
	ArgumentShape types.ArgumentShape
	LibraryCount  int
	Included      int
	Skipped       []types.SkipDiagnostic
}

type VersionsRequest struct {
	RootDir string
}

type VersionsResult struct {
	Versions []string
}
