package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

// RosdepResolverAdapter implements DependencyResolverPort using layered
// rosdep rule files. Each call to LoadRules merges new rules into the
// internal table; later layers override earlier ones per key and
// operating system.
type RosdepResolverAdapter struct {
	merged map[string]map[string]types.RosdepRule
	layers []string
}

func NewRosdepResolverAdapter() *RosdepResolverAdapter {
	return &RosdepResolverAdapter{
		merged: make(map[string]map[string]types.RosdepRule),
	}
}

// LoadRules reads a rule file. Both the wrapped form (schema_version plus
// rules) and a bare rosdep file (keys at the top level) are accepted.
func (a *RosdepResolverAdapter) LoadRules(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read rosdep file: " + path).
			WithCause(err)
	}

	rules, err := decodeRosdepRules(data)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse rosdep file: " + path).
			WithCause(err)
	}

	for key, byOS := range rules {
		normalizedKey := strings.TrimSpace(key)
		if normalizedKey == "" {
			continue
		}
		existing, ok := a.merged[normalizedKey]
		if !ok {
			existing = make(map[string]types.RosdepRule)
			a.merged[normalizedKey] = existing
		}
		for osName, rule := range byOS {
			osName = strings.TrimSpace(osName)
			if _, exists := existing[osName]; exists {
				log.Debug().
					Str("key", normalizedKey).
					Str("os", osName).
					Str("layer", path).
					Msg("rosdep rule overridden by later layer")
			}
			existing[osName] = rule
		}
	}

	a.layers = append(a.layers, path)
	log.Debug().
		Str("path", path).
		Int("keys", len(rules)).
		Int("total", len(a.merged)).
		Msg("rosdep layer loaded")
	return nil
}

func decodeRosdepRules(data []byte) (map[string]map[string]types.RosdepRule, error) {
	var probe map[string]yaml.Node
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if _, wrapped := probe["rules"]; wrapped {
		var file types.RosdepFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
		return file.Rules, nil
	}
	var rules map[string]map[string]types.RosdepRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// Resolve maps a single rosdep key to the packages of one platform
// version.
func (a *RosdepResolverAdapter) Resolve(key string, osName string, osVersion string) ([]string, bool, error) {
	byOS, ok := a.merged[strings.TrimSpace(key)]
	if !ok {
		return nil, false, nil
	}
	rule, ok := byOS[osName]
	if !ok {
		return nil, false, nil
	}
	packages, ok := rule.Packages(osVersion)
	if !ok {
		return nil, false, nil
	}
	return append([]string{}, packages...), true, nil
}

// ResolveAll maps a batch of keys. Unknown keys are returned separately,
// each once, in input order.
func (a *RosdepResolverAdapter) ResolveAll(keys []string, osName string, osVersion string) (types.ResolvedDependencyMap, []string, error) {
	resolved := types.ResolvedDependencyMap{}
	seen := make(map[string]struct{})
	var unknown []string

	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		packages, ok, err := a.Resolve(key, osName, osVersion)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		resolved[key] = packages
	}
	return resolved, unknown, nil
}

// Layers returns the loaded rule files in load order.
func (a *RosdepResolverAdapter) Layers() []string {
	return append([]string(nil), a.layers...)
}

var _ ports.DependencyResolverPort = (*RosdepResolverAdapter)(nil)
