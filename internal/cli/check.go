package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bloom-vcpkg/internal/app"
)

type checkOptions struct {
	Target targetOptions
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check required tools and that every rosdep key resolves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}
	addTargetFlags(cmd, &opts.Target)
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	result, err := service.Check(ctx, app.CheckRequest{
		Target: resolveTarget(cmd, opts.Target),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "checked %d packages, %d rosdep keys resolvable\n", len(result.Packages), result.Keys)
	return nil
}
