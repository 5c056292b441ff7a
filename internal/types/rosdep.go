package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RosdepFile is a layered rosdep rule file. Each rule maps an operating
// system either to a package list for every version or to per-version
// package lists:
//
//	rules:
//	  boost:
//	    windows: [boost]
//	    ubuntu:
//	      jammy: [libboost-all-dev]
type RosdepFile struct {
	SchemaVersion string                           `yaml:"schema_version"`
	Rules         map[string]map[string]RosdepRule `yaml:"rules"`
}

// RosdepRule holds the packages for one operating system. Any applies to
// every version; Versions overrides it per version.
type RosdepRule struct {
	Any      []string
	Versions map[string][]string
}

func (r *RosdepRule) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var packages []string
		if err := value.Decode(&packages); err != nil {
			return err
		}
		if packages == nil {
			packages = []string{}
		}
		r.Any = packages
		return nil
	case yaml.MappingNode:
		var versions map[string][]string
		if err := value.Decode(&versions); err != nil {
			return err
		}
		r.Versions = versions
		return nil
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			r.Any = []string{}
			return nil
		}
		r.Any = []string{value.Value}
		return nil
	default:
		return fmt.Errorf("line %d: unsupported rosdep rule", value.Line)
	}
}

// Packages returns the packages for version and whether the rule covers it.
func (r RosdepRule) Packages(version string) ([]string, bool) {
	if packages, ok := r.Versions[version]; ok {
		return packages, true
	}
	if r.Any != nil {
		return r.Any, true
	}
	return nil, false
}
