package types

import "time"

// ChangelogEntry is one version section of CHANGELOG.rst. Name and Email
// are the releaser attributed to the version; they are empty until the
// entry has been attributed.
type ChangelogEntry struct {
	Version string
	Date    time.Time
	Changes []string
	Name    string
	Email   string
}

// ChangelogTuple is the rendered form of a changelog entry handed to
// templates.
type ChangelogTuple struct {
	Version string `yaml:"version"`
	Date    string `yaml:"date"`
	Changes string `yaml:"changes"`
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
}

type Releaser struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// ReleaserHistory records who released each version.
type ReleaserHistory map[string]Releaser

// Merge returns a new history holding h overlaid with other. Entries of
// other replace entries of h for the same version.
func (h ReleaserHistory) Merge(other ReleaserHistory) ReleaserHistory {
	merged := ReleaserHistory{}
	for version, releaser := range h {
		merged[version] = releaser
	}
	for version, releaser := range other {
		merged[version] = releaser
	}
	return merged
}
