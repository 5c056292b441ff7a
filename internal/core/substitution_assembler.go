package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bloom-vcpkg/internal/policies"
	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

// PackageManager is the generator's package manager and the prefix of
// every tag it synthesizes.
const PackageManager = "vcpkg"

type AssembleInput struct {
	Package      types.Package
	OSName       string
	OSVersion    string
	Distribution string
	Inc          string
	Resolved     types.ResolvedDependencyMap
	// Changelog entries must already carry their releaser.
	Changelog []types.ChangelogEntry
}

type SubstitutionAssembler struct {
	ReleaseIndex ports.ReleaseIndexPort
	BuildTypes   policies.BuildTypePolicy
}

func NewSubstitutionAssembler(index ports.ReleaseIndexPort, buildTypes policies.BuildTypePolicy) SubstitutionAssembler {
	return SubstitutionAssembler{
		ReleaseIndex: index,
		BuildTypes:   buildTypes,
	}
}

// Assemble derives the substitutions for one package and platform version
// together with the releaser history recorded by its changelog. Nothing is
// returned unless every step succeeds.
func (a SubstitutionAssembler) Assemble(ctx context.Context, in AssembleInput) (types.Substitutions, types.ReleaserHistory, error) {
	pkg := in.Package
	if !a.BuildTypes.Supports(pkg.BuildType) {
		return types.Substitutions{}, nil, NewError(KindUnsupportedBuildType, errbuilder.CodeFailedPrecondition,
			fmt.Sprintf("build type %q of package %q is not supported (supported: %s)",
				pkg.BuildType, pkg.Name, strings.Join(a.BuildTypes.Supported(), ", ")))
	}
	if err := ValidateReleaseVersion(pkg.Version, in.Inc); err != nil {
		return types.Substitutions{}, nil, err
	}

	subs := types.Substitutions{
		Name:         pkg.Name,
		Package:      PortName(pkg.Name),
		Version:      pkg.Version,
		Inc:          in.Inc,
		Distribution: in.Distribution,
		OSName:       in.OSName,
		OSVersion:    in.OSVersion,
		BuildType:    pkg.BuildType,
		Maintainers:  append([]types.Person(nil), pkg.Maintainers...),
		Homepage:     pkg.Homepage(),
		Licenses:     append([]string(nil), pkg.Licenses...),
	}
	if len(pkg.Maintainers) > 0 {
		subs.Maintainer = pkg.Maintainers[0]
	}
	subs.Description = FormatDescription(pkg.Description)

	var err error
	if subs.Depends, err = flattenScope(pkg.Name, "run", pkg.RunDepends(), in.Resolved); err != nil {
		return types.Substitutions{}, nil, err
	}
	if subs.BuildDepends, err = flattenScope(pkg.Name, "build", pkg.AllBuildDepends(), in.Resolved); err != nil {
		return types.Substitutions{}, nil, err
	}
	if subs.TestDepends, err = flattenScope(pkg.Name, "test", pkg.TestDepends, in.Resolved); err != nil {
		return types.Substitutions{}, nil, err
	}

	coords, err := ResolveReleaseCoordinates(ctx, pkg.Name, in.Distribution, a.ReleaseIndex)
	if err != nil {
		return types.Substitutions{}, nil, err
	}
	subs.GitSource = coords.GitSource
	subs.UserName = coords.UserName
	subs.RepoName = coords.RepoName

	tagName, err := SynthesizeTagName(PackageManager, subs.TagFields())
	if err != nil {
		return types.Substitutions{}, nil, err
	}
	subs.TagName = tagName
	assert.NotEmpty(ctx, subs.Package, "package must be set")
	assert.NotEmpty(ctx, subs.TagName, "tag_name must be set")

	subs.Changelogs = ChangelogTuples(in.Changelog)
	history := ReleaserHistoryFromChangelog(subs.Changelogs)

	log.Ctx(ctx).Debug().
		Str("package", subs.Package).
		Str("os_version", subs.OSVersion).
		Str("tag", subs.TagName).
		Int("depends", len(subs.Depends)).
		Int("changelogs", len(subs.Changelogs)).
		Msg("substitutions assembled")
	return subs, history, nil
}

// flattenScope is FlattenDependencies with the package and scope named in
// the error.
func flattenScope(packageName string, scope string, depends []types.Dependency, resolved types.ResolvedDependencyMap) ([]string, error) {
	names, err := FlattenDependencies(depends, resolved)
	if err != nil {
		return nil, WrapError(KindUnresolvedDependency, errbuilder.CodeNotFound,
			fmt.Sprintf("package %q %s dependencies: %s", packageName, scope, messageOf(err)), err)
	}
	return names, nil
}

func messageOf(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
