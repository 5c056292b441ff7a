package core

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

type gitSourceRule struct {
	source  types.GitSource
	matches func(releaseURL string) bool
}

// gitSourceRules is evaluated in order; the first match wins.
var gitSourceRules = []gitSourceRule{
	{source: types.GitSourceGitHub, matches: containsToken("github")},
	{source: types.GitSourceGitLab, matches: containsToken("gitlab")},
	{source: types.GitSourceBitbucket, matches: containsToken("bitbucket")},
}

func containsToken(token string) func(string) bool {
	return func(value string) bool {
		return strings.Contains(value, token)
	}
}

// ResolveReleaseCoordinates looks up the release repository of
// packageName in the distro distribution file and splits its URL into the
// hosting service and owner/repository coordinates.
func ResolveReleaseCoordinates(ctx context.Context, packageName string, distro string, index ports.ReleaseIndexPort) (types.ReleaseCoordinates, error) {
	idx, err := index.GetIndex(ctx)
	if err != nil {
		return types.ReleaseCoordinates{}, WrapError(KindDistributionLookup, errbuilder.CodeNotFound,
			"failed to load release index", err)
	}
	dist, err := index.GetDistributionFile(ctx, idx, distro)
	if err != nil {
		return types.ReleaseCoordinates{}, WrapError(KindDistributionLookup, errbuilder.CodeNotFound,
			fmt.Sprintf("distribution %q not found in release index", distro), err)
	}
	release, ok := findReleaseRepository(dist, packageName)
	if !ok {
		return types.ReleaseCoordinates{}, NewError(KindDistributionLookup, errbuilder.CodeNotFound,
			fmt.Sprintf("package %q has no release repository in distribution %q", packageName, distro))
	}
	releaseURL := strings.TrimSpace(release.URL)
	if releaseURL == "" {
		return types.ReleaseCoordinates{}, NewError(KindDistributionLookup, errbuilder.CodeNotFound,
			fmt.Sprintf("release repository of package %q in distribution %q has no url", packageName, distro))
	}

	source, ok := matchGitSource(releaseURL)
	if !ok {
		return types.ReleaseCoordinates{}, NewError(KindUnsupportedHost, errbuilder.CodeFailedPrecondition,
			fmt.Sprintf("release url %s of package %q is not hosted on a supported service", releaseURL, packageName))
	}
	userName, repoName, err := splitRepoCoordinates(releaseURL)
	if err != nil {
		return types.ReleaseCoordinates{}, err
	}
	log.Ctx(ctx).Debug().
		Str("package", packageName).
		Str("url", releaseURL).
		Str("git_source", string(source)).
		Msg("release coordinates resolved")
	return types.ReleaseCoordinates{
		URL:       releaseURL,
		GitSource: source,
		UserName:  userName,
		RepoName:  repoName,
	}, nil
}

func matchGitSource(releaseURL string) (types.GitSource, bool) {
	for _, rule := range gitSourceRules {
		if rule.matches(releaseURL) {
			return rule.source, true
		}
	}
	return "", false
}

// findReleaseRepository prefers a repository named after the package and
// falls back to the repository whose release lists the package.
func findReleaseRepository(dist types.DistributionFile, packageName string) (types.ReleaseRepository, bool) {
	if repo, ok := dist.Repositories[packageName]; ok && repo.Release != nil {
		return *repo.Release, true
	}
	names := make([]string, 0, len(dist.Repositories))
	for name := range dist.Repositories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		repo := dist.Repositories[name]
		if repo.Release == nil {
			continue
		}
		for _, pkg := range repo.Release.Packages {
			if pkg == packageName {
				return *repo.Release, true
			}
		}
	}
	return types.ReleaseRepository{}, false
}

// splitRepoCoordinates returns the last two path segments of releaseURL as
// (owner, repository), with a trailing ".git" removed from the repository.
func splitRepoCoordinates(releaseURL string) (string, string, error) {
	segments := repoPathSegments(releaseURL)
	if len(segments) < 2 {
		return "", "", NewError(KindMalformedURL, errbuilder.CodeInvalidArgument,
			fmt.Sprintf("release url %s does not end in <owner>/<repository>", releaseURL))
	}
	userName := segments[len(segments)-2]
	repoName := strings.TrimSuffix(segments[len(segments)-1], ".git")
	if repoName == "" {
		return "", "", NewError(KindMalformedURL, errbuilder.CodeInvalidArgument,
			fmt.Sprintf("release url %s has an empty repository name", releaseURL))
	}
	return userName, repoName, nil
}

func repoPathSegments(raw string) []string {
	path := raw
	if parsed, err := url.Parse(raw); err == nil && parsed.Host != "" {
		path = parsed.Path
	} else if idx := strings.Index(raw, ":"); idx > 0 && !strings.Contains(raw[:idx], "/") {
		// scp-like syntax: git@host:owner/repo.git
		path = raw[idx+1:]
	}
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}
