package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mclauncher/internal/app"
)

type versionsOptions struct {
	RootDir string
}

func newVersionsCommand() *cobra.Command {
	opts := versionsOptions{}
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List installed versions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersions(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.RootDir, "root", "", "Game root directory")
	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	return cmd
}

func runVersions(ctx context.Context, cmd *cobra.Command, opts versionsOptions) error {
	service := newAppService()
	result, err := service.ListVersions(ctx, app.VersionsRequest{
		RootDir: resolveString(cmd, opts.RootDir, "root", "root"),
	})
	if err != nil {
		return err
	}
	for _, name := range result.Versions {
		fmt.Println(name)
	}
	return nil
}
