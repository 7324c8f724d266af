package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mclauncher/internal/core"
)

// Inspect summarizes a descriptor for the target platform: entry point,
// argument shape, and which libraries resolution would include or skip.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	rootDir := req.RootDir
	if strings.TrimSpace(rootDir) == "" {
		rootDir = DefaultRootDir
	}
	if strings.TrimSpace(req.Version) == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("version is required")
	}

	desc, err := s.Descriptors.LoadVersion(rootDir, req.Version)
	if err != nil {
		return InspectResult{}, err
	}

	platform := platformFor(req.OSName, req.Arch)
	resolver := core.NewClasspathResolver(s.Filesystem)
	resolved, err := resolver.Resolve(ctx, desc, platform, rootDir)
	if err != nil {
		return InspectResult{}, err
	}

	return InspectResult{
		Version:       desc.ID,
		MainClass:     desc.MainClass,
		AssetsIndex:   desc.Assets,
		ArgumentShape: core.ArgumentShapeOf(desc),
		LibraryCount:  len(desc.Libraries),
		Included:      len(resolved.Classpath) - 1,
		Skipped:       resolved.Skipped,
	}, nil
}
