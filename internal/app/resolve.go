package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mclauncher/internal/core"
	"mclauncher/internal/types"
)

// Resolve runs the full resolution pipeline without launching: load the
// descriptor, resolve the classpath, compose the game arguments, and
// assemble the command. Fatal errors from any stage propagate unchanged;
// per-library drops come back as diagnostics.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	req, err := s.prepareRequest(req)
	if err != nil {
		return ResolveResult{}, err
	}

	desc, err := s.Descriptors.LoadVersion(req.RootDir, req.Version)
	if err != nil {
		return ResolveResult{}, err
	}

	platform := platformFor(req.OSName, req.Arch)
	runtimeCtx := types.RuntimeContext{
		PlayerName:  req.PlayerName,
		VersionName: req.Version,
		RootDir:     req.RootDir,
		AssetsDir:   filepath.Join(req.RootDir, "assets"),
		AssetsIndex: desc.Assets,
	}

	resolver := core.NewClasspathResolver(s.Filesystem)
	resolved, err := resolver.Resolve(ctx, desc, platform, req.RootDir)
	if err != nil {
		return ResolveResult{}, err
	}
	resolved.GameArgs = core.ComposeArguments(desc, runtimeCtx)

	for _, skip := range resolved.Skipped {
		log.Ctx(ctx).Warn().
			Str("coordinate", skip.Coordinate).
			Str("reason", string(skip.Reason)).
			Msg("library skipped")
	}

	command := core.BuildCommand(desc, resolved, runtimeCtx, types.LaunchOptions{
		JavaPath:        req.JavaPath,
		MemoryMB:        req.MemoryMB,
		UseSystemMemory: req.UseSystemMemory,
	}, platform)

	return ResolveResult{
		Command:   command,
		Classpath: resolved.Classpath,
		GameArgs:  resolved.GameArgs,
		Skipped:   resolved.Skipped,
	}, nil
}

// prepareRequest applies the named profile (when requested) and the
// built-in defaults, then checks the fields the pipeline cannot do
// without.
func (s Service) prepareRequest(req ResolveRequest) (ResolveRequest, error) {
	if strings.TrimSpace(req.Profile) != "" {
		rootDir := req.RootDir
		if strings.TrimSpace(rootDir) == "" {
			rootDir = DefaultRootDir
		}
		path := req.ProfilesPath
		if strings.TrimSpace(path) == "" {
			path = filepath.Join(rootDir, "profiles.yaml")
		}
		profiles, err := s.Profiles.LoadProfiles(path)
		if err != nil {
			return ResolveRequest{}, err
		}
		profile, ok := profiles.Profiles[req.Profile]
		if !ok {
			return ResolveRequest{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("profile not found: " + req.Profile)
		}
		req = applyProfile(req, profile)
	}
	req = applyResolveDefaults(req)
	if strings.TrimSpace(req.Version) == "" {
		return ResolveRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("version is required")
	}
	return req, nil
}
