package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"bloom-vcpkg/internal/types"
)

type fakeReleaseIndex struct {
	dists    map[string]types.DistributionFile
	indexErr error
}

func (f fakeReleaseIndex) GetIndex(_ context.Context) (types.Index, error) {
	if f.indexErr != nil {
		return types.Index{}, f.indexErr
	}
	index := types.Index{Distributions: map[string]types.IndexDistribution{}}
	for name := range f.dists {
		index.Distributions[name] = types.IndexDistribution{Distribution: []string{name + "/distribution.yaml"}}
	}
	return index, nil
}

func (f fakeReleaseIndex) GetDistributionFile(_ context.Context, index types.Index, distro string) (types.DistributionFile, error) {
	if _, ok := index.Distributions[distro]; !ok {
		return types.DistributionFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown distribution %s", distro))
	}
	return f.dists[distro], nil
}

func singleRepoIndex(distro string, repo string, releaseURL string) fakeReleaseIndex {
	return fakeReleaseIndex{dists: map[string]types.DistributionFile{
		distro: {
			Repositories: map[string]types.Repository{
				repo: {Release: &types.ReleaseRepository{URL: releaseURL, Packages: []string{repo}}},
			},
		},
	}}
}

type fakeResolver struct {
	rules map[string][]string
}

func (f fakeResolver) LoadRules(string) error {
	return nil
}

func (f fakeResolver) Resolve(key string, _ string, _ string) ([]string, bool, error) {
	packages, ok := f.rules[key]
	return packages, ok, nil
}

func (f fakeResolver) ResolveAll(keys []string, osName string, osVersion string) (types.ResolvedDependencyMap, []string, error) {
	resolved := types.ResolvedDependencyMap{}
	var unknown []string
	for _, key := range keys {
		packages, ok, _ := f.Resolve(key, osName, osVersion)
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		resolved[key] = packages
	}
	return resolved, unknown, nil
}

func deps(names ...string) []types.Dependency {
	out := make([]types.Dependency, 0, len(names))
	for _, name := range names {
		out = append(out, types.Dependency{Name: name})
	}
	return out
}
