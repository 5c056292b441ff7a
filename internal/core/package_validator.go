package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bloom-vcpkg/internal/types"
)

type PackageValidator struct{}

func NewPackageValidator() PackageValidator {
	return PackageValidator{}
}

// ValidatePackage checks the package.xml fields every generated port
// depends on.
func (v PackageValidator) ValidatePackage(ctx context.Context, pkg types.Package) error {
	if strings.TrimSpace(pkg.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package.xml %s has no name", pkg.Path))
	}
	if err := ValidatePackageVersion(pkg.Name, pkg.Version); err != nil {
		return err
	}
	if len(pkg.Maintainers) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package %q has no maintainer", pkg.Name))
	}
	for _, maintainer := range pkg.Maintainers {
		if strings.TrimSpace(maintainer.Name) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package %q has a maintainer without a name", pkg.Name))
		}
	}
	if NormalizeText(pkg.Description) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package %q has an empty description", pkg.Name))
	}
	log.Ctx(ctx).Debug().Str("package", pkg.Name).Msg("package validated")
	return nil
}
