package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mclauncher/internal/types"
)

func TestApplyResolveDefaults(t *testing.T) {
	tests := []struct {
		name     string
		req      ResolveRequest
		expected ResolveRequest
	}{
		{
			name: "empty request gets all defaults",
			req:  ResolveRequest{},
			expected: ResolveRequest{
				RootDir:    DefaultRootDir,
				JavaPath:   DefaultJavaPath,
				MemoryMB:   DefaultMemoryMB,
				PlayerName: DefaultPlayerName,
			},
		},
		{
			name: "explicit values override defaults",
			req: ResolveRequest{
				RootDir:    "/games/mc",
				JavaPath:   "/opt/jdk/bin/java",
				MemoryMB:   8192,
				PlayerName: "Steve",
			},
			expected: ResolveRequest{
				RootDir:    "/games/mc",
				JavaPath:   "/opt/jdk/bin/java",
				MemoryMB:   8192,
				PlayerName: "Steve",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := applyResolveDefaults(tc.req)
			assert.Equal(t, tc.expected.RootDir, result.RootDir)
			assert.Equal(t, tc.expected.JavaPath, result.JavaPath)
			assert.Equal(t, tc.expected.MemoryMB, result.MemoryMB)
			assert.Equal(t, tc.expected.PlayerName, result.PlayerName)
		})
	}
}

func TestApplyProfileFillsOnlyEmptyFields(t *testing.T) {
	profile := types.Profile{
		Version:    "1.20.1",
		PlayerName: "FromProfile",
		JavaPath:   "/profile/java",
		MemoryMB:   1024,
	}

	req := applyProfile(ResolveRequest{PlayerName: "Explicit"}, profile)
	assert.Equal(t, "1.20.1", req.Version)
	assert.Equal(t, "Explicit", req.PlayerName)
	assert.Equal(t, "/profile/java", req.JavaPath)
	assert.Equal(t, 1024, req.MemoryMB)
}

func TestPlatformForOverrides(t *testing.T) {
	platform := platformFor("windows", "x86")
	assert.Equal(t, "windows", platform.Name)
	assert.Equal(t, "x86", platform.Arch)

	current := platformFor("", "")
	assert.Equal(t, types.CurrentPlatform(), current)
}
