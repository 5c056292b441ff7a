package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bloom-vcpkg/internal/app"
)

type generateOptions struct {
	Target       targetOptions
	ReleaseIndex releaseIndexOptions
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and commit vcpkg ports for every package in the workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}
	addTargetFlags(cmd, &opts.Target)
	addReleaseIndexFlags(cmd, &opts.ReleaseIndex)
	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	service := newAppService()
	result, err := service.Generate(ctx, app.GenerateRequest{
		Target:       resolveTarget(cmd, opts.Target),
		ReleaseIndex: resolveReleaseIndex(cmd, opts.ReleaseIndex),
	})
	if err != nil {
		return err
	}
	for _, port := range result.Ports {
		fmt.Fprintf(cmd.OutOrStdout(), "generated %s for %s (%s)\n", port.Port, port.OSVersion, port.TagName)
	}
	return nil
}
