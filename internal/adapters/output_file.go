package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

const (
	SubstitutionsFilename = "substitutions.yaml"
	TagNamesFilename      = "tags.txt"
)

type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

// WriteSubstitutions writes entries ordered by package and platform
// version as a YAML sequence.
func (a OutputFileAdapter) WriteSubstitutions(entries []types.SubstitutionsEntry) error {
	path, err := a.ensurePath(SubstitutionsFilename)
	if err != nil {
		return err
	}
	ordered := append([]types.SubstitutionsEntry(nil), entries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Package != ordered[j].Package {
			return ordered[i].Package < ordered[j].Package
		}
		return ordered[i].OSVersion < ordered[j].OSVersion
	})
	if ordered == nil {
		ordered = []types.SubstitutionsEntry{}
	}
	data, err := yaml.Marshal(ordered)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode substitutions").
			WithCause(err)
	}
	return writeOutput(path, data)
}

// WriteTagNames writes one "<package> <tag>" line per entry, ordered by
// package.
func (a OutputFileAdapter) WriteTagNames(entries []types.TagNameEntry) error {
	path, err := a.ensurePath(TagNamesFilename)
	if err != nil {
		return err
	}
	ordered := append([]types.TagNameEntry(nil), entries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Package < ordered[j].Package
	})
	var lines []string
	for _, entry := range ordered {
		lines = append(lines, fmt.Sprintf("%s %s", entry.Package, entry.TagName))
	}
	return writeOutput(path, []byte(strings.Join(lines, "\n")))
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + path).
			WithCause(err)
	}
	return nil
}

var _ ports.OutputPort = OutputFileAdapter{}
