package ports

import (
	"context"

	"mclauncher/internal/types"
)

// LauncherPort spawns the assembled process. Supervision and
// cancellation belong to the launcher, not the resolution core.
type LauncherPort interface {
	Launch(ctx context.Context, command types.Command) (types.ProcessHandle, error)
}
