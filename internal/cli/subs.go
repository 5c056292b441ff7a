package cli

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"bloom-vcpkg/internal/app"
)

type subsOptions struct {
	Target       targetOptions
	ReleaseIndex releaseIndexOptions
	OutputDir    string
}

func newSubsCommand() *cobra.Command {
	opts := subsOptions{}
	cmd := &cobra.Command{
		Use:   "subs",
		Short: "Print the substitutions generate would render, without touching git",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSubs(cmd.Context(), cmd, opts)
		},
	}
	addTargetFlags(cmd, &opts.Target)
	addReleaseIndexFlags(cmd, &opts.ReleaseIndex)
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Also write substitutions.yaml to this directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runSubs(ctx context.Context, cmd *cobra.Command, opts subsOptions) error {
	service := newAppService()
	result, err := service.Subs(ctx, app.SubsRequest{
		Target:       resolveTarget(cmd, opts.Target),
		ReleaseIndex: resolveReleaseIndex(cmd, opts.ReleaseIndex),
		OutputDir:    resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(result.Entries); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode substitutions").
			WithCause(err)
	}
	return encoder.Close()
}
