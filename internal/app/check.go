package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"bloom-vcpkg/internal/core"
)

// Check runs the pre-generation checks: required tools and rosdep key
// coverage for every package and platform version.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	if err := CheckCapabilities(s.LookPath); err != nil {
		return CheckResult{}, err
	}
	ws, err := s.loadWorkspace(ctx, req.Target)
	if err != nil {
		return CheckResult{}, err
	}
	if err := core.CheckAllKeysResolvable(ctx, ws.Resolver, ws.Packages, ws.Target.OSName, ws.Target.OSVersions); err != nil {
		return CheckResult{}, err
	}
	result := CheckResult{}
	for _, pkg := range ws.Packages {
		result.Packages = append(result.Packages, pkg.Name)
		result.Keys += len(pkg.Keys())
	}
	log.Ctx(ctx).Debug().Int("packages", len(result.Packages)).Int("keys", result.Keys).Msg("workspace check passed")
	return result, nil
}
