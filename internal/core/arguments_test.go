package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"mclauncher/internal/types"
)

func testRuntimeContext() types.RuntimeContext {
	return types.RuntimeContext{
		PlayerName:  "Player123",
		VersionName: "1.20.1",
		RootDir:     ".minecraft",
		AssetsDir:   ".minecraft/assets",
		AssetsIndex: "5",
	}
}

func TestComposeArgumentsLegacy(t *testing.T) {
	desc := types.Descriptor{
		MinecraftArguments: "--username ${auth_player_name} --version ${version_name}",
	}
	args := ComposeArguments(desc, testRuntimeContext())
	want := []string{"--username", "Player123", "--version", "1.20.1"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Fatalf("unexpected arguments (-want +got):\n%s", diff)
	}
}

func TestComposeArgumentsSubstitutionIdempotent(t *testing.T) {
	desc := types.Descriptor{MinecraftArguments: "--username ${auth_player_name}"}
	ctx := testRuntimeContext()

	args := ComposeArguments(desc, ctx)
	require.Equal(t, []string{"--username", "Player123"}, args)

	// Feeding the substituted output back through produces no change.
	again := ComposeArguments(types.Descriptor{MinecraftArguments: strings.Join(args, " ")}, ctx)
	require.Equal(t, args, again)
}

func TestComposeArgumentsLegacyPrecedesStructured(t *testing.T) {
	desc := types.Descriptor{
		MinecraftArguments: "--a ${version_name}",
		Arguments: &types.Arguments{
			Game: []types.ArgumentToken{
				{Value: "--b", IsString: true},
			},
		},
	}
	args := ComposeArguments(desc, testRuntimeContext())
	require.Equal(t, []string{"--a", "1.20.1", "--b"}, args)
}

func TestComposeArgumentsIgnoresObjectTokens(t *testing.T) {
	desc := types.Descriptor{
		Arguments: &types.Arguments{
			Game: []types.ArgumentToken{
				{Value: "--demo", IsString: true},
				{IsString: false},
				{Value: "--width", IsString: true},
			},
		},
	}
	args := ComposeArguments(desc, testRuntimeContext())
	require.Equal(t, []string{"--demo", "--width"}, args)
}

func TestComposeArgumentsUnknownPlaceholderPassesThrough(t *testing.T) {
	desc := types.Descriptor{MinecraftArguments: "--flag ${quickPlayPath}"}
	args := ComposeArguments(desc, testRuntimeContext())
	require.Equal(t, []string{"--flag", "${quickPlayPath}"}, args)
}

func TestComposeArgumentsFixedIdentity(t *testing.T) {
	desc := types.Descriptor{
		MinecraftArguments: "--uuid ${auth_uuid} --accessToken ${auth_access_token} --userType ${user_type}",
	}
	args := ComposeArguments(desc, testRuntimeContext())
	want := []string{
		"--uuid", types.OfflineUUID,
		"--accessToken", types.OfflineAccessToken,
		"--userType", types.OfflineUserType,
	}
	require.Equal(t, want, args)
}

func TestComposeArgumentsVersionTypeKeepsSpaces(t *testing.T) {
	desc := types.Descriptor{
		Arguments: &types.Arguments{
			Game: []types.ArgumentToken{
				{Value: "--versionType", IsString: true},
				{Value: "${version_type}", IsString: true},
			},
		},
	}
	args := ComposeArguments(desc, testRuntimeContext())
	require.Len(t, args, 2)
	// A substituted value with embedded spaces stays one argument.
	require.Equal(t, types.LauncherBrand+" "+types.LauncherVersion, args[1])
}

func TestArgumentShapeOf(t *testing.T) {
	structured := &types.Arguments{Game: []types.ArgumentToken{{Value: "--a", IsString: true}}}

	tests := []struct {
		name     string
		desc     types.Descriptor
		expected types.ArgumentShape
	}{
		{"none", types.Descriptor{}, types.ArgumentShapeNone},
		{"legacy", types.Descriptor{MinecraftArguments: "--a"}, types.ArgumentShapeLegacy},
		{"structured", types.Descriptor{Arguments: structured}, types.ArgumentShapeStructured},
		{"both", types.Descriptor{MinecraftArguments: "--a", Arguments: structured}, types.ArgumentShapeBoth},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ArgumentShapeOf(tc.desc))
		})
	}
}
