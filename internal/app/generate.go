package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"bloom-vcpkg/internal/adapters"
	"bloom-vcpkg/internal/core"
	"bloom-vcpkg/internal/policies"
	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

type assembledPackage struct {
	Subs        types.Substitutions
	History     types.ReleaserHistory
	HistoryPath string
	PortDir     string
}

// Generate writes the vcpkg port of every workspace package for every
// platform version and commits each result. The first failure stops the
// run; files written before it stay in place.
func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	if err := CheckCapabilities(s.LookPath); err != nil {
		return GenerateResult{}, err
	}
	ws, err := s.loadWorkspace(ctx, req.Target)
	if err != nil {
		return GenerateResult{}, err
	}
	if err := requireDistro(ws.Target.ROSDistro); err != nil {
		return GenerateResult{}, err
	}
	if err := core.CheckAllKeysResolvable(ctx, ws.Resolver, ws.Packages, ws.Target.OSName, ws.Target.OSVersions); err != nil {
		return GenerateResult{}, err
	}

	assembler := core.NewSubstitutionAssembler(s.NewReleaseIndex(req.ReleaseIndex), policies.VcpkgBuildTypes())
	vcs := s.NewVCS(ws.Target.Workspace)
	var result GenerateResult
	for _, pkg := range ws.Packages {
		for _, osVersion := range ws.Target.OSVersions {
			port, err := s.generatePackage(ctx, ws, assembler, vcs, pkg, osVersion)
			if err != nil {
				return result, err
			}
			result.Ports = append(result.Ports, port)
		}
	}
	return result, nil
}

func (s Service) generatePackage(ctx context.Context, ws loadedWorkspace, assembler core.SubstitutionAssembler, vcs ports.VCSPort, pkg types.Package, osVersion string) (GeneratedPort, error) {
	log.Ctx(ctx).Info().Str("package", pkg.Name).Msgf("Generating %s for %s", core.PackageManager, osVersion)

	assembled, err := s.assemblePackage(ctx, ws, assembler, pkg, osVersion)
	if err != nil {
		return GeneratedPort{}, err
	}
	if err := s.ReleaserHistory.Save(assembled.HistoryPath, assembled.History); err != nil {
		return GeneratedPort{}, err
	}
	templates, err := s.Templates.Process(assembled.PortDir, assembled.Subs.Map(), core.PackageManager)
	if err != nil {
		return GeneratedPort{}, err
	}
	if err := vcs.Remove(ctx, templates); err != nil {
		return GeneratedPort{}, core.WrapError(core.KindExternalTool, core.CodeOf(err),
			"failed to remove template files", err)
	}
	if err := vcs.Add(ctx, core.PackageManager); err != nil {
		return GeneratedPort{}, core.WrapError(core.KindExternalTool, core.CodeOf(err),
			fmt.Sprintf("failed to stage %s directory", core.PackageManager), err)
	}
	message := fmt.Sprintf("Generated %s files for %s", core.PackageManager, osVersion)
	if err := vcs.Commit(ctx, message); err != nil {
		return GeneratedPort{}, core.WrapError(core.KindExternalTool, core.CodeOf(err),
			"failed to commit generated files", err)
	}
	return GeneratedPort{
		Package:   pkg.Name,
		Port:      assembled.Subs.Package,
		OSVersion: osVersion,
		TagName:   assembled.Subs.TagName,
		Dir:       assembled.PortDir,
		Templates: templates,
	}, nil
}

// assemblePackage gathers the changelog, releaser history and resolved
// dependencies of pkg and assembles its substitutions. The returned history
// is the persisted one updated with this changelog.
func (s Service) assemblePackage(ctx context.Context, ws loadedWorkspace, assembler core.SubstitutionAssembler, pkg types.Package, osVersion string) (assembledPackage, error) {
	portDir := filepath.Join(ws.Target.Workspace, core.PackageManager, core.PortName(pkg.Name))
	historyPath := filepath.Join(portDir, adapters.ReleaserHistoryFilename)
	history, err := s.ReleaserHistory.Load(historyPath)
	if err != nil {
		return assembledPackage{}, err
	}

	entries, err := s.Changelog.Load(filepath.Join(filepath.Dir(pkg.Path), adapters.ChangelogFilename))
	if err != nil {
		return assembledPackage{}, err
	}
	if len(entries) == 0 {
		log.Ctx(ctx).Info().Str("package", pkg.Name).Msg("no changelog found, using an autogenerated entry")
		entries = core.AutogeneratedChangelog(pkg.Version, s.now())
	} else if !core.HasVersion(entries, pkg.Version) {
		log.Ctx(ctx).Warn().
			Str("package", pkg.Name).
			Str("version", pkg.Version).
			Msg("current version is missing from the changelog")
	}
	var maintainer types.Person
	if len(pkg.Maintainers) > 0 {
		maintainer = pkg.Maintainers[0]
	}
	entries = core.AttributeChangelog(entries, maintainer, history)

	resolved, _, err := core.ResolvePackageKeys(ws.Resolver, pkg, ws.Target.OSName, osVersion)
	if err != nil {
		return assembledPackage{}, err
	}
	subs, changelogHistory, err := assembler.Assemble(ctx, core.AssembleInput{
		Package:      pkg,
		OSName:       ws.Target.OSName,
		OSVersion:    osVersion,
		Distribution: ws.Target.ROSDistro,
		Inc:          ws.Target.Inc,
		Resolved:     resolved,
		Changelog:    entries,
	})
	if err != nil {
		return assembledPackage{}, err
	}
	return assembledPackage{
		Subs:        subs,
		History:     history.Merge(changelogHistory),
		HistoryPath: historyPath,
		PortDir:     portDir,
	}, nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
