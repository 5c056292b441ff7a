package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"bloom-vcpkg/internal/core"
	"bloom-vcpkg/internal/types"
)

// TagNames returns the release tag of every workspace package. Tags only
// depend on package.xml, the distribution and the increment.
func (s Service) TagNames(ctx context.Context, req TagNameRequest) (TagNameResult, error) {
	workspace := strings.TrimSpace(req.Workspace)
	if workspace == "" {
		return TagNameResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace directory is required")
	}
	distro := strings.TrimSpace(req.ROSDistro)
	if err := requireDistro(distro); err != nil {
		return TagNameResult{}, err
	}
	inc := strings.TrimSpace(req.Inc)
	if inc == "" {
		inc = DefaultInc
	}
	pkgs, err := core.NewPackageCollector(s.Workspace, s.Manifest).Collect(ctx, []string{workspace})
	if err != nil {
		return TagNameResult{}, err
	}
	var result TagNameResult
	for _, pkg := range pkgs {
		if err := core.ValidateReleaseVersion(pkg.Version, inc); err != nil {
			return TagNameResult{}, err
		}
		subs := types.Substitutions{
			Package:      core.PortName(pkg.Name),
			Version:      pkg.Version,
			Inc:          inc,
			Distribution: distro,
		}
		tag, err := core.SynthesizeTagName(core.PackageManager, subs.TagFields())
		if err != nil {
			return TagNameResult{}, err
		}
		result.Tags = append(result.Tags, types.TagNameEntry{Package: pkg.Name, TagName: tag})
	}
	if out := strings.TrimSpace(req.OutputDir); out != "" {
		if err := s.NewOutput(out).WriteTagNames(result.Tags); err != nil {
			return TagNameResult{}, err
		}
	}
	return result, nil
}
