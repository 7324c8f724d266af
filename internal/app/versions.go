package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"mclauncher/internal/core"
)

// ListVersions returns the installed versions under the game root,
// newest first.
func (s Service) ListVersions(ctx context.Context, req VersionsRequest) (VersionsResult, error) {
	rootDir := req.RootDir
	if strings.TrimSpace(rootDir) == "" {
		rootDir = DefaultRootDir
	}
	names, err := s.Versions.ListVersions(rootDir)
	if err != nil {
		return VersionsResult{}, err
	}
	core.SortVersionIDs(names)
	log.Ctx(ctx).Debug().Int("versions", len(names)).Msg("versions listed")
	return VersionsResult{Versions: names}, nil
}
