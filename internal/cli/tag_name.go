package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bloom-vcpkg/internal/app"
)

type tagNameOptions struct {
	Workspace string
	ROSDistro string
	Inc       string
	OutputDir string
}

func newTagNameCommand() *cobra.Command {
	opts := tagNameOptions{}
	cmd := &cobra.Command{
		Use:   "tag-name",
		Short: "Print the release tag of every package in the workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTagName(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Workspace, "workspace", ".", "Repository holding the packages")
	cmd.Flags().StringVar(&opts.ROSDistro, "ros-distro", "", "ROS distribution")
	cmd.Flags().StringVar(&opts.Inc, "inc", app.DefaultInc, "Release increment")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Also write tags.txt to this directory")
	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))
	_ = viper.BindPFlag("ros_distro", cmd.Flags().Lookup("ros-distro"))
	_ = viper.BindPFlag("inc", cmd.Flags().Lookup("inc"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runTagName(ctx context.Context, cmd *cobra.Command, opts tagNameOptions) error {
	service := newAppService()
	result, err := service.TagNames(ctx, app.TagNameRequest{
		Workspace: resolveString(cmd, opts.Workspace, "workspace", "workspace"),
		ROSDistro: resolveString(cmd, opts.ROSDistro, "ros_distro", "ros-distro"),
		Inc:       resolveString(cmd, opts.Inc, "inc", "inc"),
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	for _, tag := range result.Tags {
		fmt.Fprintln(cmd.OutOrStdout(), tag.TagName)
	}
	return nil
}
