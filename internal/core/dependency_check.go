package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

// ResolvePackageKeys resolves every key of pkg for one platform version.
func ResolvePackageKeys(resolver ports.DependencyResolverPort, pkg types.Package, osName string, osVersion string) (types.ResolvedDependencyMap, []string, error) {
	return resolver.ResolveAll(pkg.Keys(), osName, osVersion)
}

// CheckAllKeysResolvable resolves every key of every package on every
// platform version and reports all unresolved keys in one error.
func CheckAllKeysResolvable(ctx context.Context, resolver ports.DependencyResolverPort, pkgs []types.Package, osName string, osVersions []string) error {
	var problems []string
	for _, osVersion := range osVersions {
		for _, pkg := range pkgs {
			_, unknown, err := ResolvePackageKeys(resolver, pkg, osName, osVersion)
			if err != nil {
				return err
			}
			for _, key := range unknown {
				log.Ctx(ctx).Error().
					Str("package", pkg.Name).
					Str("key", key).
					Str("os", osName+":"+osVersion).
					Msg("could not resolve rosdep key")
				problems = append(problems, fmt.Sprintf("%s: %s on %s:%s", pkg.Name, key, osName, osVersion))
			}
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return NewError(KindUnresolvedDependency, errbuilder.CodeNotFound,
		"some dependencies of packages in this repository could not be resolved: "+strings.Join(problems, "; "))
}
