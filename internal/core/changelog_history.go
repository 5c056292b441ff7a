package core

import (
	"strings"
	"time"

	"bloom-vcpkg/internal/types"
)

// AutogeneratedChange is the single change line of the entry synthesized
// for packages without a changelog.
const AutogeneratedChange = "Autogenerated, no changelog for this version found in CHANGELOG.rst."

const rfc2822Layout = "Mon, 02 Jan 2006 15:04:05 -0700"

// AttributeChangelog sets the releaser of every entry: the releaser
// recorded in history for that version, else maintainer.
func AttributeChangelog(entries []types.ChangelogEntry, maintainer types.Person, history types.ReleaserHistory) []types.ChangelogEntry {
	attributed := make([]types.ChangelogEntry, 0, len(entries))
	for _, entry := range entries {
		if releaser, ok := history[entry.Version]; ok {
			entry.Name = releaser.Name
			entry.Email = releaser.Email
		} else {
			entry.Name = maintainer.Name
			entry.Email = maintainer.Email
		}
		attributed = append(attributed, entry)
	}
	return attributed
}

// AutogeneratedChangelog returns the entry used when a package has no
// changelog at all.
func AutogeneratedChangelog(version string, now time.Time) []types.ChangelogEntry {
	return []types.ChangelogEntry{{
		Version: version,
		Date:    now,
		Changes: []string{AutogeneratedChange},
	}}
}

// HasVersion reports whether entries contain version.
func HasVersion(entries []types.ChangelogEntry, version string) bool {
	for _, entry := range entries {
		if entry.Version == version {
			return true
		}
	}
	return false
}

// ChangelogTuples renders entries newest first. Every line of every change
// is indented by two spaces.
func ChangelogTuples(entries []types.ChangelogEntry) []types.ChangelogTuple {
	tuples := []types.ChangelogTuple{}
	for _, entry := range sortNewestFirst(entries) {
		var lines []string
		for _, change := range entry.Changes {
			for _, line := range strings.Split(change, "\n") {
				lines = append(lines, "  "+line)
			}
		}
		tuples = append(tuples, types.ChangelogTuple{
			Version: entry.Version,
			Date:    entry.Date.UTC().Format(rfc2822Layout),
			Changes: strings.Join(lines, "\n"),
			Name:    entry.Name,
			Email:   entry.Email,
		})
	}
	return tuples
}

// ReleaserHistoryFromChangelog maps each changelog version to its
// releaser. A version listed twice keeps its last releaser.
func ReleaserHistoryFromChangelog(tuples []types.ChangelogTuple) types.ReleaserHistory {
	history := types.ReleaserHistory{}
	for _, tuple := range tuples {
		history[tuple.Version] = types.Releaser{Name: tuple.Name, Email: tuple.Email}
	}
	return history
}
