package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

// PackageCollector finds and validates every package of the workspace
// roots.
type PackageCollector struct {
	Workspace ports.WorkspacePort
	Manifest  ports.PackageManifestPort
	Validator PackageValidator
}

func NewPackageCollector(workspace ports.WorkspacePort, manifest ports.PackageManifestPort) PackageCollector {
	return PackageCollector{
		Workspace: workspace,
		Manifest:  manifest,
		Validator: NewPackageValidator(),
	}
}

func (c PackageCollector) Collect(ctx context.Context, roots []string) ([]types.Package, error) {
	if len(roots) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no workspace roots provided")
	}
	var paths []string
	for _, root := range roots {
		found, err := c.Workspace.FindPackageXML(root)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no package.xml found in workspace")
	}
	pkgs, err := c.Manifest.ParsePackages(paths)
	if err != nil {
		return nil, err
	}
	seen := map[string]string{}
	for _, pkg := range pkgs {
		if err := c.Validator.ValidatePackage(ctx, pkg); err != nil {
			return nil, err
		}
		if previous, ok := seen[pkg.Name]; ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("package %q is declared by both %s and %s", pkg.Name, previous, pkg.Path))
		}
		seen[pkg.Name] = pkg.Path
	}
	log.Ctx(ctx).Debug().Int("packages", len(pkgs)).Msg("workspace packages collected")
	return pkgs, nil
}
