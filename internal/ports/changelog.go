package ports

import "bloom-vcpkg/internal/types"

type ChangelogPort interface {
	// Load parses the changelog at path. A missing file yields no entries
	// and no error.
	Load(path string) ([]types.ChangelogEntry, error)
}

type ReleaserHistoryPort interface {
	Load(path string) (types.ReleaserHistory, error)
	Save(path string, history types.ReleaserHistory) error
}
