package ports

import "bloom-vcpkg/internal/types"

// DependencyResolverPort resolves abstract rosdep keys into platform
// package names using layered rule files.
//
// Each call to LoadRules adds a layer. When several layers define the same
// key, the last-loaded layer wins.
type DependencyResolverPort interface {
	LoadRules(path string) error

	// Resolve returns (packages, true, nil) on hit and (nil, false, nil)
	// when no rule covers the key on osName/osVersion.
	Resolve(key string, osName string, osVersion string) ([]string, bool, error)

	// ResolveAll resolves a batch of keys. Unknown keys are returned
	// separately so callers can report them together.
	ResolveAll(keys []string, osName string, osVersion string) (types.ResolvedDependencyMap, []string, error)
}
