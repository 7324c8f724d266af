package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mclauncher/internal/app"
)

type resolveOptions struct {
	RootDir         string
	Version         string
	PlayerName      string
	Profile         string
	ProfilesPath    string
	JavaPath        string
	MemoryMB        int
	UseSystemMemory bool
	OSName          string
	Arch            string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a version to its launch command without starting it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.RootDir, "root", "", "Game root directory")
	cmd.Flags().StringVar(&opts.Version, "version-id", "", "Version to resolve")
	cmd.Flags().StringVar(&opts.PlayerName, "player", "", "Player display name")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Named launch profile")
	cmd.Flags().StringVar(&opts.ProfilesPath, "profiles-file", "", "Profiles file path")
	cmd.Flags().StringVar(&opts.JavaPath, "java", "", "Java executable path")
	cmd.Flags().IntVar(&opts.MemoryMB, "memory", 0, "JVM heap size in MB")
	cmd.Flags().BoolVar(&opts.UseSystemMemory, "system-memory", false, "Let the JVM pick heap sizing")
	cmd.Flags().StringVar(&opts.OSName, "os", "", "Target OS name override")
	cmd.Flags().StringVar(&opts.Arch, "arch", "", "Target architecture override")

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

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		RootDir:         resolveString(cmd, opts.RootDir, "root", "root"),
		Version:         resolveString(cmd, opts.Version, "version_id", "version-id"),
		PlayerName:      resolveString(cmd, opts.PlayerName, "player", "player"),
		Profile:         resolveString(cmd, opts.Profile, "profile", "profile"),
		ProfilesPath:    resolveString(cmd, opts.ProfilesPath, "profiles_file", "profiles-file"),
		JavaPath:        resolveString(cmd, opts.JavaPath, "java", "java"),
		MemoryMB:        resolveInt(cmd, opts.MemoryMB, "memory", "memory"),
		UseSystemMemory: resolveBool(cmd, opts.UseSystemMemory, "system_memory", "system-memory"),
		OSName:          opts.OSName,
		Arch:            opts.Arch,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Command.Executable)
	for _, arg := range result.Command.Args {
		fmt.Printf("  %s\n", arg)
	}
	if len(result.Skipped) > 0 {
		fmt.Println("skipped libraries:")
		for _, skip := range result.Skipped {
			fmt.Printf("- %s (%s)\n", skip.Coordinate, skip.Reason)
		}
	}
	return nil
}
