package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"bloom-vcpkg/internal/types"
)

// FlattenDependencies expands each dependency into its resolved platform
// package names. Dependency order and the order within each resolved list
// are preserved.
func FlattenDependencies(depends []types.Dependency, resolved types.ResolvedDependencyMap) ([]string, error) {
	formatted := []string{}
	for _, dep := range depends {
		names, ok := resolved[dep.Name]
		if !ok {
			return nil, NewError(KindUnresolvedDependency, errbuilder.CodeNotFound,
				fmt.Sprintf("dependency %q has no resolved packages", dep.Name))
		}
		formatted = append(formatted, names...)
	}
	return formatted, nil
}
