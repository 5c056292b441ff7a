package app

import (
	"context"

	"bloom-vcpkg/internal/core"
	"bloom-vcpkg/internal/policies"
	"bloom-vcpkg/internal/types"
)

// Subs assembles the substitutions Generate would render, without
// touching the workspace.
func (s Service) Subs(ctx context.Context, req SubsRequest) (SubsResult, error) {
	ws, err := s.loadWorkspace(ctx, req.Target)
	if err != nil {
		return SubsResult{}, err
	}
	if err := requireDistro(ws.Target.ROSDistro); err != nil {
		return SubsResult{}, err
	}
	assembler := core.NewSubstitutionAssembler(s.NewReleaseIndex(req.ReleaseIndex), policies.VcpkgBuildTypes())
	var result SubsResult
	for _, pkg := range ws.Packages {
		for _, osVersion := range ws.Target.OSVersions {
			assembled, err := s.assemblePackage(ctx, ws, assembler, pkg, osVersion)
			if err != nil {
				return SubsResult{}, err
			}
			result.Entries = append(result.Entries, types.SubstitutionsEntry{
				Package:       pkg.Name,
				OSVersion:     osVersion,
				Substitutions: assembled.Subs,
			})
		}
	}
	if req.OutputDir != "" {
		if err := s.NewOutput(req.OutputDir).WriteSubstitutions(result.Entries); err != nil {
			return SubsResult{}, err
		}
	}
	return result, nil
}
