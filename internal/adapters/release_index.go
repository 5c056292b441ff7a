package adapters

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

// DefaultReleaseIndexURL is the upstream rosdistro index.
const DefaultReleaseIndexURL = "https://raw.githubusercontent.com/ros/rosdistro/master/index-v4.yaml"

// ReleaseIndexAdapter reads a rosdistro index and its distribution files
// from an http(s) URL or a local path. Loaded documents are cached for the
// lifetime of the adapter.
type ReleaseIndexAdapter struct {
	location string
	http     httpRetryConfig

	mu    sync.Mutex
	index *types.Index
	dists map[string]types.DistributionFile
}

func NewReleaseIndexAdapter(location string, timeoutSec int, retries int) *ReleaseIndexAdapter {
	if strings.TrimSpace(location) == "" {
		location = DefaultReleaseIndexURL
	}
	return &ReleaseIndexAdapter{
		location: strings.TrimSpace(location),
		http:     normalizeHTTPConfig(timeoutSec, retries, 0),
		dists:    map[string]types.DistributionFile{},
	}
}

func (a *ReleaseIndexAdapter) GetIndex(ctx context.Context) (types.Index, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.index != nil {
		return *a.index, nil
	}
	data, err := a.read(ctx, a.location)
	if err != nil {
		return types.Index{}, err
	}
	var index types.Index
	if err := yaml.Unmarshal(stripYAMLDirectives(data), &index); err != nil {
		return types.Index{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse release index " + a.location).
			WithCause(err)
	}
	if index.Type != "" && index.Type != "index" {
		return types.Index{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("release index %s has type %q, expected \"index\"", a.location, index.Type))
	}
	index.BaseURL = a.location
	a.index = &index
	log.Debug().
		Str("location", a.location).
		Int("distributions", len(index.Distributions)).
		Msg("release index loaded")
	return index, nil
}

// GetDistributionFile loads every file listed for distro and merges their
// repositories; later files override earlier ones.
func (a *ReleaseIndexAdapter) GetDistributionFile(ctx context.Context, index types.Index, distro string) (types.DistributionFile, error) {
	entry, ok := index.Distributions[distro]
	if !ok {
		return types.DistributionFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("distribution %q is not listed in the release index (known: %s)",
				distro, strings.Join(distributionNames(index), ", ")))
	}
	if len(entry.Distribution) == 0 {
		return types.DistributionFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("distribution %q lists no distribution files", distro))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if cached, ok := a.dists[distro]; ok {
		return cached, nil
	}
	merged := types.DistributionFile{Repositories: map[string]types.Repository{}}
	for _, rel := range entry.Distribution {
		location, err := resolveRelative(index.BaseURL, rel)
		if err != nil {
			return types.DistributionFile{}, err
		}
		data, err := a.read(ctx, location)
		if err != nil {
			return types.DistributionFile{}, err
		}
		var dist types.DistributionFile
		if err := yaml.Unmarshal(stripYAMLDirectives(data), &dist); err != nil {
			return types.DistributionFile{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse distribution file " + location).
				WithCause(err)
		}
		merged.Type = dist.Type
		merged.Version = dist.Version
		for name, repo := range dist.Repositories {
			merged.Repositories[name] = repo
		}
		log.Debug().
			Str("distribution", distro).
			Str("location", location).
			Int("repositories", len(dist.Repositories)).
			Msg("distribution file loaded")
	}
	a.dists[distro] = merged
	return merged, nil
}

func (a *ReleaseIndexAdapter) read(ctx context.Context, location string) ([]byte, error) {
	if isHTTPLocation(location) {
		return fetchBytes(ctx, location, a.http)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		code := errbuilder.CodeInternal
		if os.IsNotExist(err) {
			code = errbuilder.CodeNotFound
		}
		return nil, errbuilder.New().
			WithCode(code).
			WithMsg("failed to read " + location).
			WithCause(err)
	}
	return data, nil
}

func isHTTPLocation(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// resolveRelative resolves ref against the location of the index.
func resolveRelative(base string, ref string) (string, error) {
	if isHTTPLocation(ref) || filepath.IsAbs(ref) {
		return ref, nil
	}
	if isHTTPLocation(base) {
		baseURL, err := url.Parse(base)
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid release index url " + base).
				WithCause(err)
		}
		refURL, err := url.Parse(ref)
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid distribution file reference " + ref).
				WithCause(err)
		}
		return baseURL.ResolveReference(refURL).String(), nil
	}
	return filepath.Join(filepath.Dir(base), filepath.FromSlash(ref)), nil
}

// stripYAMLDirectives drops the "%YAML 1.1" header rosdistro files carry.
func stripYAMLDirectives(data []byte) []byte {
	lines := bytes.Split(data, []byte("\n"))
	kept := lines[:0]
	for _, line := range lines {
		if bytes.HasPrefix(line, []byte("%")) {
			continue
		}
		kept = append(kept, line)
	}
	return bytes.Join(kept, []byte("\n"))
}

func distributionNames(index types.Index) []string {
	names := make([]string, 0, len(index.Distributions))
	for name := range index.Distributions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ ports.ReleaseIndexPort = (*ReleaseIndexAdapter)(nil)
