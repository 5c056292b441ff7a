package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

// ReleaserHistoryFilename is written next to the generated port files.
const ReleaserHistoryFilename = "releaser_history.yaml"

type releaserHistoryDocument struct {
	SchemaVersion string                `yaml:"schema_version"`
	Releasers     types.ReleaserHistory `yaml:"releasers"`
}

const releaserHistorySchemaVersion = "v1"

type ReleaserHistoryFileAdapter struct{}

func NewReleaserHistoryFileAdapter() ReleaserHistoryFileAdapter {
	return ReleaserHistoryFileAdapter{}
}

// Load returns an empty history when path does not exist.
func (a ReleaserHistoryFileAdapter) Load(path string) (types.ReleaserHistory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.ReleaserHistory{}, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read releaser history").
			WithCause(err)
	}
	var doc releaserHistoryDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse releaser history " + path).
			WithCause(err)
	}
	if doc.Releasers == nil {
		doc.Releasers = types.ReleaserHistory{}
	}
	return doc.Releasers, nil
}

func (a ReleaserHistoryFileAdapter) Save(path string, history types.ReleaserHistory) error {
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("releaser history path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create releaser history directory").
			WithCause(err)
	}
	doc := releaserHistoryDocument{SchemaVersion: releaserHistorySchemaVersion, Releasers: history}
	if doc.Releasers == nil {
		doc.Releasers = types.ReleaserHistory{}
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode releaser history").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write releaser history").
			WithCause(err)
	}
	return nil
}

var _ ports.ReleaserHistoryPort = ReleaserHistoryFileAdapter{}
