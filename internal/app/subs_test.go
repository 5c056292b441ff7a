package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"bloom-vcpkg/internal/adapters"
	"bloom-vcpkg/internal/types"
)

func TestSubsAssemblesWithoutWriting(t *testing.T) {
	service, vcs, workspace := newTestService(t)

	result, err := service.Subs(t.Context(), SubsRequest{
		Target:       fixtureTarget(t, workspace, "10"),
		ReleaseIndex: fixtureIndex(t),
	})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)

	entry := result.Entries[0]
	assert.Equal(t, "widget_core", entry.Package)
	assert.Equal(t, "10", entry.OSVersion)

	subs := entry.Substitutions
	assert.Equal(t, "widget-core", subs.Package)
	assert.Equal(t, "windows", subs.OSName)
	assert.Equal(t, "0", subs.Inc)
	assert.Equal(t, types.GitSourceGitHub, subs.GitSource)
	assert.Equal(t, "example-robotics", subs.UserName)
	assert.Equal(t, "widget-release", subs.RepoName)
	assert.Equal(t, "vcpkg/widget-core_1.2.0-0_humble", subs.TagName)
	assert.Equal(t, "https://example.com/widget_core", subs.Homepage)
	assert.Equal(t, "Core widget library.\n Provides fast widget layout and rendering helpers.", subs.Description)
	if diff := cmp.Diff([]string{"rclcpp"}, subs.Depends); diff != "" {
		t.Fatalf("unexpected run depends (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"rclcpp", "eigen3", "ament-cmake"}, subs.BuildDepends); diff != "" {
		t.Fatalf("unexpected build depends (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ament-lint-auto"}, subs.TestDepends); diff != "" {
		t.Fatalf("unexpected test depends (-want +got):\n%s", diff)
	}
	require.Len(t, subs.Changelogs, 2)
	assert.Equal(t, "1.2.0", subs.Changelogs[0].Version)
	assert.Equal(t, "Alice Example", subs.Changelogs[0].Name)

	assert.Empty(t, vcs.commits)
	_, statErr := os.Stat(filepath.Join(workspace, "vcpkg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSubsRejectsUnsupportedBuildType(t *testing.T) {
	service, _, workspace := newTestService(t)
	manifest := filepath.Join(workspace, "src", "widget_core", "package.xml")
	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	patched := []byte(replaceOnce(string(data), "<build_type>ament_cmake</build_type>", "<build_type>ament_python</build_type>"))
	require.NoError(t, os.WriteFile(manifest, patched, 0644))

	_, err = service.Subs(t.Context(), SubsRequest{
		Target:       fixtureTarget(t, workspace, "10"),
		ReleaseIndex: fixtureIndex(t),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ament_python")
}

func TestSubsWritesOutput(t *testing.T) {
	service, _, workspace := newTestService(t)
	out := filepath.Join(t.TempDir(), "out")

	_, err := service.Subs(t.Context(), SubsRequest{
		Target:       fixtureTarget(t, workspace, "10", "11"),
		ReleaseIndex: fixtureIndex(t),
		OutputDir:    out,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, adapters.SubstitutionsFilename))
	require.NoError(t, err)
	var entries []types.SubstitutionsEntry
	require.NoError(t, yaml.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "10", entries[0].OSVersion)
	assert.Equal(t, "vcpkg/widget-core_1.2.0-0_humble", entries[1].Substitutions.TagName)
}
