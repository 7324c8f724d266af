package adapters

import (
	"context"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mclauncher/internal/types"
)

// ExecLauncherAdapter spawns the assembled command with os/exec. The
// child inherits the launcher's stdio and keeps running after Launch
// returns; supervision is the caller's concern.
type ExecLauncherAdapter struct{}

func NewExecLauncherAdapter() ExecLauncherAdapter {
	return ExecLauncherAdapter{}
}

func (a ExecLauncherAdapter) Launch(ctx context.Context, command types.Command) (types.ProcessHandle, error) {
	proc := exec.CommandContext(ctx, command.Executable, command.Args...)
	proc.Stdin = os.Stdin
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr
	if len(command.Env) > 0 {
		env := os.Environ()
		for key, value := range command.Env {
			env = append(env, key+"="+value)
		}
		proc.Env = env
	}
	if err := proc.Start(); err != nil {
		return types.ProcessHandle{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to start process").
			WithCause(err)
	}
	log.Ctx(ctx).Info().Int("pid", proc.Process.Pid).Str("executable", command.Executable).Msg("process started")
	return types.ProcessHandle{PID: proc.Process.Pid}, nil
}
