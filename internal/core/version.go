package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"bloom-vcpkg/internal/types"
)

// versionCache memoizes parsed versions while sorting changelogs.
type versionCache struct {
	pep map[string]pep440.Version
}

func newVersionCache() *versionCache {
	return &versionCache{
		pep: map[string]pep440.Version{},
	}
}

// pepVersion returns a parsed PEP 440 version, caching the result.
func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}

// compare returns -1, 0, or 1 comparing two package versions. Versions
// that do not parse compare as equal.
func (c *versionCache) compare(a string, b string) int {
	v1, err := c.pepVersion(a)
	if err != nil {
		return 0
	}
	v2, err := c.pepVersion(b)
	if err != nil {
		return 0
	}
	return v1.Compare(v2)
}

// ValidatePackageVersion checks that a package.xml version parses.
func ValidatePackageVersion(packageName string, version string) error {
	if strings.TrimSpace(version) == "" {
		return NewError(KindInvalidVersion, errbuilder.CodeInvalidArgument,
			fmt.Sprintf("package %q has no version", packageName))
	}
	if _, err := pep440.Parse(version); err != nil {
		return WrapError(KindInvalidVersion, errbuilder.CodeInvalidArgument,
			fmt.Sprintf("package %q has invalid version %q", packageName, version), err)
	}
	return nil
}

// ValidateReleaseVersion checks that <version>-<inc> is a well formed
// release string with a non-empty increment.
func ValidateReleaseVersion(version string, inc string) error {
	if strings.TrimSpace(inc) == "" {
		return NewError(KindInvalidVersion, errbuilder.CodeInvalidArgument,
			"release increment must not be empty")
	}
	release := version + "-" + inc
	if _, err := debversion.NewVersion(release); err != nil {
		return WrapError(KindInvalidVersion, errbuilder.CodeInvalidArgument,
			fmt.Sprintf("invalid release version %q", release), err)
	}
	return nil
}

// sortNewestFirst orders changelog entries by descending version, keeping
// file order among entries that compare equal.
func sortNewestFirst(entries []types.ChangelogEntry) []types.ChangelogEntry {
	ordered := append([]types.ChangelogEntry(nil), entries...)
	cache := newVersionCache()
	sort.SliceStable(ordered, func(i, j int) bool {
		return cache.compare(ordered[i].Version, ordered[j].Version) > 0
	})
	return ordered
}
