package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Launch resolves a version and hands the assembled command to the
// process launcher. The resolved command is returned alongside the PID
// so callers can report what was actually started.
func (s Service) Launch(ctx context.Context, req LaunchRequest) (LaunchResult, error) {
	resolved, err := s.Resolve(ctx, ResolveRequest{
		RootDir:         req.RootDir,
		Version:         req.Version,
		PlayerName:      req.PlayerName,
		Profile:         req.Profile,
		ProfilesPath:    req.ProfilesPath,
		JavaPath:        req.JavaPath,
		MemoryMB:        req.MemoryMB,
		UseSystemMemory: req.UseSystemMemory,
	})
	if err != nil {
		return LaunchResult{}, err
	}

	handle, err := s.Launcher.Launch(ctx, resolved.Command)
	if err != nil {
		return LaunchResult{}, err
	}

	log.Ctx(ctx).Info().Int("pid", handle.PID).Str("version", req.Version).Msg("launch complete")
	return LaunchResult{
		PID:     handle.PID,
		Command: resolved.Command,
		Skipped: resolved.Skipped,
	}, nil
}
