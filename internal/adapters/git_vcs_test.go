package adapters

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initGitRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	for _, args := range [][]string{
		{"init", "-q"},
		{"config", "user.name", "Test"},
		{"config", "user.email", "test@example.com"},
		{"config", "commit.gpgsign", "false"},
	} {
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, string(output))
	}
	return dir
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	output, err := exec.Command("git", append([]string{"-C", dir}, args...)...).CombinedOutput()
	require.NoError(t, err, string(output))
	return strings.TrimSpace(string(output))
}

func TestGitVCSAdapterAddRemoveCommit(t *testing.T) {
	dir := initGitRepo(t)
	ctx := context.Background()
	portDir := filepath.Join(dir, "vcpkg", "widget")
	require.NoError(t, os.MkdirAll(portDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(portDir, "vcpkg.json"), []byte("{}\n"), 0644))
	template := filepath.Join(portDir, "vcpkg.json.tmpl")
	require.NoError(t, os.WriteFile(template, []byte("{}\n"), 0644))

	adapter := NewGitVCSAdapter(dir)
	require.NoError(t, adapter.Remove(ctx, []string{template}))
	_, err := os.Stat(template)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, adapter.Add(ctx, "vcpkg"))
	require.NoError(t, adapter.Commit(ctx, "Generated vcpkg files for 10"))

	assert.Equal(t, "Generated vcpkg files for 10", gitOutput(t, dir, "log", "-1", "--pretty=%s"))
	assert.Equal(t, "vcpkg/widget/vcpkg.json", gitOutput(t, dir, "ls-files"))
}

func TestGitVCSAdapterRemoveTracked(t *testing.T) {
	dir := initGitRepo(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "portfile.cmake.tmpl"), []byte("x\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x\n"), 0644))
	adapter := NewGitVCSAdapter(dir)
	require.NoError(t, adapter.Add(ctx, "."))
	require.NoError(t, adapter.Commit(ctx, "initial"))

	require.NoError(t, adapter.Remove(ctx, []string{"portfile.cmake.tmpl"}))
	require.NoError(t, adapter.Commit(ctx, "remove template"))
	assert.Equal(t, "keep.txt", gitOutput(t, dir, "ls-files"))
}

func TestGitVCSAdapterErrors(t *testing.T) {
	dir := initGitRepo(t)
	adapter := NewGitVCSAdapter(dir)
	ctx := context.Background()

	err := adapter.Commit(ctx, "nothing staged")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git commit failed")

	require.Error(t, adapter.Commit(ctx, " "))
	require.NoError(t, adapter.Remove(ctx, nil))
}
