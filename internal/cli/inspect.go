package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mclauncher/internal/app"
)

type inspectOptions struct {
	RootDir string
	Version string
	OSName  string
	Arch    string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a version descriptor for the target platform",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.RootDir, "root", "", "Game root directory")
	cmd.Flags().StringVar(&opts.Version, "version-id", "", "Version to inspect")
	cmd.Flags().StringVar(&opts.OSName, "os", "", "Target OS name override")
	cmd.Flags().StringVar(&opts.Arch, "arch", "", "Target architecture override")
	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("version_id", cmd.Flags().Lookup("version-id"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		RootDir: resolveString(cmd, opts.RootDir, "root", "root"),
		Version: resolveString(cmd, opts.Version, "version_id", "version-id"),
		OSName:  opts.OSName,
		Arch:    opts.Arch,
	})
	if err != nil {
		return err
	}

	fmt.Printf("version: %s\n", result.Version)
	fmt.Printf("main class: %s\n", result.MainClass)
	fmt.Printf("assets index: %s\n", result.AssetsIndex)
	fmt.Printf("argument shape: %s\n", result.ArgumentShape)
	fmt.Printf("libraries: %d declared, %d on classpath\n", result.LibraryCount, result.Included)
	for _, skip := range result.Skipped {
		fmt.Printf("- skipped %s (%s)\n", skip.Coordinate, skip.Reason)
	}
	return nil
}
