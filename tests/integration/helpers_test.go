package integration

import (
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bloom-vcpkg/internal/app"
	"bloom-vcpkg/tests/testutil"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

// gitWorkspace copies the fixture workspace into a fresh git repository
// with one initial commit.
func gitWorkspace(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := testutil.CopyDir(t, testutil.Fixture(t, "workspace"))
	for _, args := range [][]string{
		{"init", "-q"},
		{"config", "user.name", "Release Bot"},
		{"config", "user.email", "release@example.com"},
		{"config", "commit.gpgsign", "false"},
		{"add", "."},
		{"commit", "-q", "-m", "Import sources"},
	} {
		git(t, dir, args...)
	}
	return dir
}

func git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	output, err := exec.Command("git", append([]string{"-C", dir}, args...)...).CombinedOutput()
	require.NoError(t, err, string(output))
	return strings.TrimSpace(string(output))
}

func target(t *testing.T, workspace string, osVersions ...string) app.TargetRequest {
	t.Helper()
	return app.TargetRequest{
		Workspace:   workspace,
		OSVersions:  osVersions,
		ROSDistro:   "humble",
		RosdepFiles: []string{testutil.Fixture(t, "rosdep.yaml")},
	}
}
