package core

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"mclauncher/internal/ports"
	"mclauncher/internal/shared"
	"mclauncher/internal/types"
)

// ClasspathResolver turns a descriptor's dependency list into the ordered
// on-disk classpath. The filesystem port is its only side channel; every
// access is a read-only existence check.
type ClasspathResolver struct {
	FS ports.FilesystemPort
}

func NewClasspathResolver(fs ports.FilesystemPort) ClasspathResolver {
	return ClasspathResolver{FS: fs}
}

// Resolve produces the ordered classpath for one version. The primary
// client jar is always first, followed by one entry per included library
// whose artifact exists on disk. Libraries that contribute nothing are
// recorded in the returned diagnostics instead of aborting the run; only
// a missing version id or main class is fatal.
func (r ClasspathResolver) Resolve(ctx context.Context, desc types.Descriptor, platform types.Platform, rootDir string) (types.ResolvedLaunch, error) {
	if err := ValidateDescriptor(ctx, desc); err != nil {
		return types.ResolvedLaunch{}, err
	}

	resolved := types.ResolvedLaunch{
		Classpath: []string{
			filepath.Join(rootDir, "versions", desc.ID, desc.ID+".jar"),
		},
	}

	for _, lib := range desc.Libraries {
		if !ShouldInclude(lib.Rules, platform) {
			resolved.Skipped = append(resolved.Skipped, types.SkipDiagnostic{
				Coordinate: lib.Name,
				Reason:     types.SkipReasonExcludedByRule,
			})
			continue
		}
		path, reason := r.artifactPath(lib, platform, rootDir)
		if path == "" {
			resolved.Skipped = append(resolved.Skipped, types.SkipDiagnostic{
				Coordinate: lib.Name,
				Reason:     reason,
			})
			continue
		}
		resolved.Classpath = append(resolved.Classpath, path)
	}

	log.Ctx(ctx).Debug().
		Str("version", desc.ID).
		Int("classpath", len(resolved.Classpath)).
		Int("skipped", len(resolved.Skipped)).
		Msg("classpath resolved")
	return resolved, nil
}

// artifactPath locates the on-disk artifact for one included library.
// When the library carries a native classifier for the target platform,
// the native variant is preferred, but only if that file exists; missing
// natives fall back to the plain jar. An empty path means the library
// contributed nothing, with the reason as second return.
func (r ClasspathResolver) artifactPath(lib types.Library, platform types.Platform, rootDir string) (string, types.SkipReason) {
	group, artifact, version, ok := shared.SplitCoordinate(lib.Name)
	if !ok {
		return "", types.SkipReasonMalformedCoordinate
	}

	baseDir := filepath.Join(rootDir, "libraries", shared.GroupPath(group), artifact, version)
	stem := artifact + "-" + version

	if classifier, ok := lib.Natives[platform.Name]; ok {
		classifier = strings.ReplaceAll(classifier, "${arch}", platform.ArchCode())
		nativePath := filepath.Join(baseDir, stem+"-"+classifier+".jar")
		if r.FS.Exists(nativePath) {
			return nativePath, ""
		}
	}

	jarPath := filepath.Join(baseDir, stem+".jar")
	if r.FS.Exists(jarPath) {
		return jarPath, ""
	}
	return "", types.SkipReasonArtifactMissing
}
