package ports

import "bloom-vcpkg/internal/types"

// OutputPort persists reports produced without touching the repository.
type OutputPort interface {
	WriteSubstitutions(entries []types.SubstitutionsEntry) error
	WriteTagNames(entries []types.TagNameEntry) error
}
