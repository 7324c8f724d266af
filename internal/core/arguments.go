package core

import (
	"strings"

	"mclauncher/internal/types"
)

// substitution is one placeholder-to-value mapping. The table is ordered
// so a substitution pass is deterministic; placeholders never contain
// other placeholders, so a single literal pass is a fixed point.
type substitution struct {
	placeholder string
	value       string
}

// substitutionTable builds the fixed placeholder table for one runtime
// context. Identity values are the offline constants: session issuance
// is out of scope.
func substitutionTable(ctx types.RuntimeContext) []substitution {
	return []substitution{
		{"${auth_player_name}", ctx.PlayerName},
		{"${version_name}", ctx.VersionName},
		{"${game_directory}", ctx.RootDir},
		{"${assets_root}", ctx.AssetsDir},
		{"${assets_index_name}", ctx.AssetsIndex},
		{"${auth_uuid}", types.OfflineUUID},
		{"${auth_access_token}", types.OfflineAccessToken},
		{"${user_type}", types.OfflineUserType},
		{"${version_type}", types.LauncherBrand + " " + types.LauncherVersion},
	}
}

// ComposeArguments produces the substituted game argument list for one
// descriptor, one discrete argument per element.
//
// The legacy template is tokenized on whitespace before substitution, so
// substituted values containing spaces survive as single arguments.
// Structured string tokens follow in declared order, each kept whole;
// object tokens are ignored. When both template forms are present the
// legacy tokens come first. Placeholders not in the fixed table pass
// through verbatim.
func ComposeArguments(desc types.Descriptor, ctx types.RuntimeContext) []string {
	tokens := strings.Fields(desc.MinecraftArguments)
	if desc.Arguments != nil {
		for _, tok := range desc.Arguments.Game {
			if !tok.IsString {
				continue
			}
			tokens = append(tokens, tok.Value)
		}
	}

	table := substitutionTable(ctx)
	args := make([]string, 0, len(tokens))
	for _, token := range tokens {
		for _, sub := range table {
			token = strings.ReplaceAll(token, sub.placeholder, sub.value)
		}
		if token == "" {
			continue
		}
		args = append(args, token)
	}
	return args
}

// ArgumentShapeOf classifies which template forms a descriptor carries.
func ArgumentShapeOf(desc types.Descriptor) types.ArgumentShape {
	legacy := strings.TrimSpace(desc.MinecraftArguments) != ""
	structured := desc.Arguments != nil && len(desc.Arguments.Game) > 0
	switch {
	case legacy && structured:
		return types.ArgumentShapeBoth
	case legacy:
		return types.ArgumentShapeLegacy
	case structured:
		return types.ArgumentShapeStructured
	default:
		return types.ArgumentShapeNone
	}
}
