package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloom-vcpkg/internal/types"
)

func writeRules(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRosdepResolverLoadAndResolve(t *testing.T) {
	path := writeRules(t, t.TempDir(), "rosdep.yaml", `
schema_version: "v1"
rules:
  boost:
    windows: [boost-system, boost-thread]
  eigen:
    windows:
      "10": [eigen3]
  ament_cmake:
    windows: []
`)
	resolver := NewRosdepResolverAdapter()
	require.NoError(t, resolver.LoadRules(path))

	packages, ok, err := resolver.Resolve("boost", "windows", "10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"boost-system", "boost-thread"}, packages)

	packages, ok, err = resolver.Resolve("eigen", "windows", "10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"eigen3"}, packages)

	_, ok, err = resolver.Resolve("eigen", "windows", "11")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = resolver.Resolve("boost", "ubuntu", "jammy")
	require.NoError(t, err)
	assert.False(t, ok)

	packages, ok, err = resolver.Resolve("ament_cmake", "windows", "10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, packages)
}

func TestRosdepResolverBareFile(t *testing.T) {
	path := writeRules(t, t.TempDir(), "base.yaml", `
rclcpp:
  windows: [rclcpp]
`)
	resolver := NewRosdepResolverAdapter()
	require.NoError(t, resolver.LoadRules(path))

	packages, ok, err := resolver.Resolve("rclcpp", "windows", "10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"rclcpp"}, packages)
}

func TestRosdepResolverLayering(t *testing.T) {
	dir := t.TempDir()
	base := writeRules(t, dir, "base.yaml", `
rules:
  boost:
    windows: [boost]
    ubuntu: [libboost-all-dev]
`)
	override := writeRules(t, dir, "override.yaml", `
rules:
  boost:
    windows: [boost-system]
`)
	resolver := NewRosdepResolverAdapter()
	require.NoError(t, resolver.LoadRules(base))
	require.NoError(t, resolver.LoadRules(override))

	packages, _, err := resolver.Resolve("boost", "windows", "10")
	require.NoError(t, err)
	assert.Equal(t, []string{"boost-system"}, packages)

	packages, ok, err := resolver.Resolve("boost", "ubuntu", "jammy")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"libboost-all-dev"}, packages)
	assert.Equal(t, []string{base, override}, resolver.Layers())
}

func TestRosdepResolverResolveAll(t *testing.T) {
	path := writeRules(t, t.TempDir(), "rosdep.yaml", `
rules:
  boost:
    windows: [boost-system, boost-thread]
  rclcpp:
    windows: [rclcpp]
`)
	resolver := NewRosdepResolverAdapter()
	require.NoError(t, resolver.LoadRules(path))

	resolved, unknown, err := resolver.ResolveAll([]string{"rclcpp", "missing", "boost", "missing"}, "windows", "10")
	require.NoError(t, err)
	want := types.ResolvedDependencyMap{
		"rclcpp": {"rclcpp"},
		"boost":  {"boost-system", "boost-thread"},
	}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("unexpected resolution (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"missing"}, unknown)
}

func TestRosdepResolverErrors(t *testing.T) {
	dir := t.TempDir()
	resolver := NewRosdepResolverAdapter()

	err := resolver.LoadRules(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read rosdep file")

	broken := writeRules(t, dir, "broken.yaml", "rules:\n  boost:\n    windows: {a: [x], b: {c: d}}\n")
	err = resolver.LoadRules(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rosdep file")
}
