package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloom-vcpkg/internal/app"
	"bloom-vcpkg/tests/testutil"
)

// TestGenerateCommitsPortsToGit runs the full driver against a real git
// repository and checks what ends up committed.
func TestGenerateCommitsPortsToGit(t *testing.T) {
	workspace := gitWorkspace(t)
	service := app.NewService()
	service.Clock = func() time.Time { return fixedNow }

	result, err := service.Generate(t.Context(), app.GenerateRequest{
		Target:       target(t, workspace, "10", "11"),
		ReleaseIndex: app.ReleaseIndexRequest{Location: testutil.Fixture(t, "rosdistro", "index-v4.yaml")},
	})
	require.NoError(t, err)
	require.Len(t, result.Ports, 2)

	subjects := strings.Split(git(t, workspace, "log", "--format=%s"), "\n")
	want := []string{
		"Generated vcpkg files for 11",
		"Generated vcpkg files for 10",
		"Import sources",
	}
	if diff := cmp.Diff(want, subjects); diff != "" {
		t.Fatalf("unexpected commit subjects (-want +got):\n%s", diff)
	}

	tracked := strings.Split(git(t, workspace, "ls-files", "vcpkg"), "\n")
	wantTracked := []string{
		"vcpkg/widget-core/portfile.cmake",
		"vcpkg/widget-core/releaser_history.yaml",
		"vcpkg/widget-core/vcpkg.json",
	}
	if diff := cmp.Diff(wantTracked, tracked); diff != "" {
		t.Fatalf("unexpected tracked files (-want +got):\n%s", diff)
	}
	assert.Empty(t, git(t, workspace, "status", "--porcelain"))

	portfile, err := os.ReadFile(filepath.Join(workspace, "vcpkg", "widget-core", "portfile.cmake"))
	require.NoError(t, err)
	assert.Contains(t, string(portfile), "REF vcpkg/widget-core_1.2.0-0_humble")
	assert.Contains(t, string(portfile), "on windows 11")
}

func TestGenerateLeavesRepositoryUntouchedOnUnresolvedKeys(t *testing.T) {
	workspace := gitWorkspace(t)
	rules := filepath.Join(t.TempDir(), "rosdep.yaml")
	require.NoError(t, os.WriteFile(rules, []byte("rules:\n  rclcpp:\n    windows: [rclcpp]\n"), 0644))
	req := target(t, workspace, "10")
	req.RosdepFiles = []string{rules}

	_, err := app.NewService().Generate(t.Context(), app.GenerateRequest{
		Target:       req,
		ReleaseIndex: app.ReleaseIndexRequest{Location: testutil.Fixture(t, "rosdistro", "index-v4.yaml")},
	})
	require.Error(t, err)
	assert.Equal(t, "Import sources", git(t, workspace, "log", "--format=%s"))
	assert.Empty(t, git(t, workspace, "status", "--porcelain"))
}

func TestGenerateRelativeWorkspaceCommitsNoTemplates(t *testing.T) {
	workspace := gitWorkspace(t)
	req := app.GenerateRequest{
		Target:       target(t, filepath.Base(workspace), "10"),
		ReleaseIndex: app.ReleaseIndexRequest{Location: testutil.Fixture(t, "rosdistro", "index-v4.yaml")},
	}
	t.Chdir(filepath.Dir(workspace))
	service := app.NewService()
	service.Clock = func() time.Time { return fixedNow }

	_, err := service.Generate(t.Context(), req)
	require.NoError(t, err)

	for _, path := range strings.Split(git(t, workspace, "ls-files", "vcpkg"), "\n") {
		assert.False(t, strings.HasSuffix(path, ".tmpl"), "template %s was committed", path)
	}
	assert.Empty(t, git(t, workspace, "status", "--porcelain"))
}

func TestGenerateRepeatedOSVersionCommitsOnce(t *testing.T) {
	workspace := gitWorkspace(t)
	service := app.NewService()
	service.Clock = func() time.Time { return fixedNow }

	result, err := service.Generate(t.Context(), app.GenerateRequest{
		Target:       target(t, workspace, "10", "10"),
		ReleaseIndex: app.ReleaseIndexRequest{Location: testutil.Fixture(t, "rosdistro", "index-v4.yaml")},
	})
	require.NoError(t, err)
	require.Len(t, result.Ports, 1)
	assert.Equal(t, "Generated vcpkg files for 10\nImport sources", git(t, workspace, "log", "--format=%s"))
}
