package app

import (
	"strings"

	"mclauncher/internal/types"
)

const (
	DefaultRootDir    = ".minecraft"
	DefaultJavaPath   = "java"
	DefaultMemoryMB   = 4096
	DefaultPlayerName = "Player"
)

// applyResolveDefaults fills every empty request field with the built-in
// default. Explicit request values always win.
func applyResolveDefaults(req ResolveRequest) ResolveRequest {
	if strings.TrimSpace(req.RootDir) == "" {
		req.RootDir = DefaultRootDir
	}
	if strings.TrimSpace(req.JavaPath) == "" {
		req.JavaPath = DefaultJavaPath
	}
	if req.MemoryMB <= 0 {
		req.MemoryMB = DefaultMemoryMB
	}
	if strings.TrimSpace(req.PlayerName) == "" {
		req.PlayerName = DefaultPlayerName
	}
	return req
}

// applyProfile fills empty request fields from a named profile. Request
// values set explicitly (flags) take precedence over the profile.
func applyProfile(req ResolveRequest, profile types.Profile) ResolveRequest {
	if strings.TrimSpace(req.Version) == "" {
		req.Version = profile.Version
	}
	if strings.TrimSpace(req.PlayerName) == "" {
		req.PlayerName = profile.PlayerName
	}
	if strings.TrimSpace(req.JavaPath) == "" {
		req.JavaPath = profile.JavaPath
	}
	if req.MemoryMB <= 0 {
		req.MemoryMB = profile.MemoryMB
	}
	if profile.UseSystemMemory {
		req.UseSystemMemory = true
	}
	return req
}

// platformFor returns the target platform for a request: the current
// platform with any explicit OS or architecture override applied.
func platformFor(osName string, arch string) types.Platform {
	platform := types.CurrentPlatform()
	if strings.TrimSpace(osName) != "" {
		platform.Name = osName
	}
	if strings.TrimSpace(arch) != "" {
		platform.Arch = arch
	}
	return platform
}
