package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/tests/testutil"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

type fakeVCS struct {
	root      string
	removed   []string
	added     []string
	commits   []string
	commitErr error
}

func (f *fakeVCS) Remove(ctx context.Context, paths []string) error {
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(f.root, p)
		}
		if err := os.RemoveAll(p); err != nil {
			return err
		}
	}
	f.removed = append(f.removed, paths...)
	return nil
}

func (f *fakeVCS) Add(ctx context.Context, path string) error {
	f.added = append(f.added, path)
	return nil
}

func (f *fakeVCS) Commit(ctx context.Context, message string) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.commits = append(f.commits, message)
	return nil
}

func gitFound(string) (string, error) { return "/usr/bin/git", nil }

func gitMissing(string) (string, error) { return "", errors.New("executable file not found in $PATH") }

// newTestService copies the fixture workspace and returns a service whose
// VCS records calls instead of running git.
func newTestService(t *testing.T) (Service, *fakeVCS, string) {
	t.Helper()
	workspace := testutil.CopyDir(t, testutil.Fixture(t, "workspace"))
	vcs := &fakeVCS{root: workspace}
	service := NewService()
	service.NewVCS = func(string) ports.VCSPort { return vcs }
	service.LookPath = gitFound
	service.Clock = func() time.Time { return fixedNow }
	return service, vcs, workspace
}

func fixtureTarget(t *testing.T, workspace string, osVersions ...string) TargetRequest {
	t.Helper()
	return TargetRequest{
		Workspace:   workspace,
		OSVersions:  osVersions,
		ROSDistro:   "humble",
		RosdepFiles: []string{testutil.Fixture(t, "rosdep.yaml")},
	}
}

func fixtureIndex(t *testing.T) ReleaseIndexRequest {
	t.Helper()
	return ReleaseIndexRequest{Location: testutil.Fixture(t, "rosdistro", "index-v4.yaml")}
}
