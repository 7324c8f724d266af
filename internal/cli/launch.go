package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mclauncher/internal/app"
)

type launchOptions struct {
	RootDir         string
	Version         string
	PlayerName      string
	Profile         string
	ProfilesPath    string
	JavaPath        string
	MemoryMB        int
	UseSystemMemory bool
}

func newLaunchCommand() *cobra.Command {
	opts := launchOptions{}
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Resolve a version and start the game process",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLaunch(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.RootDir, "root", "", "Game root directory")
	cmd.Flags().StringVar(&opts.Version, "version-id", "", "Version to launch")
	cmd.Flags().StringVar(&opts.PlayerName, "player", "", "Player display name")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Named launch profile")
	cmd.Flags().StringVar(&opts.ProfilesPath, "profiles-file", "", "Profiles file path")
	cmd.Flags().StringVar(&opts.JavaPath, "java", "", "Java executable path")
	cmd.Flags().IntVar(&opts.MemoryMB, "memory", 0, "JVM heap size in MB")
	cmd.Flags().BoolVar(&opts.UseSystemMemory, "system-memory", false, "Let the JVM pick heap sizing")

	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("version_id", cmd.Flags().Lookup("version-id"))
	_ = viper.BindPFlag("player", cmd.Flags().Lookup("player"))
	_ = viper.BindPFlag("profile", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("profiles_file", cmd.Flags().Lookup("profiles-file"))
	_ = viper.BindPFlag("java", cmd.Flags().Lookup("java"))
	_ = viper.BindPFlag("memory", cmd.Flags().Lookup("memory"))
	_ = viper.BindPFlag("system_memory", cmd.Flags().Lookup("system-memory"))

	return cmd
}

func runLaunch(ctx context.Context, cmd *cobra.Command, opts launchOptions) error {
	service := newAppService()
	result, err := service.Launch(ctx, app.LaunchRequest{
		RootDir:         resolveString(cmd, opts.RootDir, "root", "root"),
		Version:         resolveString(cmd, opts.Version, "version_id", "version-id"),
		PlayerName:      resolveString(cmd, opts.PlayerName, "player", "player"),
		Profile:         resolveString(cmd, opts.Profile, "profile", "profile"),
		ProfilesPath:    resolveString(cmd, opts.ProfilesPath, "profiles_file", "profiles-file"),
		JavaPath:        resolveString(cmd, opts.JavaPath, "java", "java"),
		MemoryMB:        resolveInt(cmd, opts.MemoryMB, "memory", "memory"),
		UseSystemMemory: resolveBool(cmd, opts.UseSystemMemory, "system_memory", "system-memory"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("launched with PID: %d\n", result.PID)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
