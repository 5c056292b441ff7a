package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"bloom-vcpkg/internal/core"
	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

// DefaultOSName is the platform generated for when none is given.
const DefaultOSName = "windows"

// DefaultInc is the release increment used when none is given.
const DefaultInc = "0"

type loadedWorkspace struct {
	Target   TargetRequest
	Packages []types.Package
	Resolver ports.DependencyResolverPort
}

func normalizeTarget(req TargetRequest) (TargetRequest, error) {
	req.Workspace = strings.TrimSpace(req.Workspace)
	if req.Workspace == "" {
		return TargetRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace directory is required")
	}
	// git runs inside the workspace, so every path derived from it must
	// not depend on the process working directory.
	workspace, err := filepath.Abs(req.Workspace)
	if err != nil {
		return TargetRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve workspace directory " + req.Workspace).
			WithCause(err)
	}
	req.Workspace = workspace
	req.OSName = strings.TrimSpace(req.OSName)
	if req.OSName == "" {
		req.OSName = DefaultOSName
	}
	req.OSVersions = uniqueOrdered(trimNonEmpty(req.OSVersions))
	if len(req.OSVersions) == 0 {
		return TargetRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one os version is required")
	}
	req.ROSDistro = strings.TrimSpace(req.ROSDistro)
	req.Inc = strings.TrimSpace(req.Inc)
	if req.Inc == "" {
		req.Inc = DefaultInc
	}
	req.RosdepFiles = trimNonEmpty(req.RosdepFiles)
	return req, nil
}

func requireDistro(distro string) error {
	if distro == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("ros distribution is required")
	}
	return nil
}

// loadWorkspace collects the workspace packages and loads the rosdep rule
// layers in order.
func (s Service) loadWorkspace(ctx context.Context, req TargetRequest) (loadedWorkspace, error) {
	target, err := normalizeTarget(req)
	if err != nil {
		return loadedWorkspace{}, err
	}
	if len(target.RosdepFiles) == 0 {
		return loadedWorkspace{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one rosdep rule file is required")
	}
	collector := core.NewPackageCollector(s.Workspace, s.Manifest)
	pkgs, err := collector.Collect(ctx, []string{target.Workspace})
	if err != nil {
		return loadedWorkspace{}, err
	}
	resolver := s.NewResolver()
	for _, path := range target.RosdepFiles {
		if err := resolver.LoadRules(path); err != nil {
			return loadedWorkspace{}, err
		}
	}
	return loadedWorkspace{
		Target:   target,
		Packages: pkgs,
		Resolver: resolver,
	}, nil
}

func trimNonEmpty(values []string) []string {
	var out []string
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// uniqueOrdered drops repeated values, keeping the first occurrence.
func uniqueOrdered(values []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
