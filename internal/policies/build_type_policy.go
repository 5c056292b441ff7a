package policies

import (
	"sort"
	"strings"

	"bloom-vcpkg/internal/types"
)

// BuildTypePolicy gates packages on the build types a generator can
// produce port files for.
type BuildTypePolicy struct {
	supported map[types.BuildType]struct{}
}

func NewBuildTypePolicy(supported ...types.BuildType) BuildTypePolicy {
	policy := BuildTypePolicy{supported: map[types.BuildType]struct{}{}}
	for _, buildType := range supported {
		policy.supported[types.BuildType(strings.TrimSpace(string(buildType)))] = struct{}{}
	}
	return policy
}

// VcpkgBuildTypes is the policy of the vcpkg generator.
func VcpkgBuildTypes() BuildTypePolicy {
	return NewBuildTypePolicy(types.BuildTypeAmentCMake)
}

func (p BuildTypePolicy) Supports(buildType types.BuildType) bool {
	_, ok := p.supported[buildType]
	return ok
}

// Supported lists the accepted build types in sorted order.
func (p BuildTypePolicy) Supported() []string {
	names := make([]string, 0, len(p.supported))
	for buildType := range p.supported {
		names = append(names, string(buildType))
	}
	sort.Strings(names)
	return names
}
