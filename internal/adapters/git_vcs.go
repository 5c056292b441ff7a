package adapters

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/shared"
)

// GitVCSAdapter runs the git executable inside RepoPath.
type GitVCSAdapter struct {
	RepoPath string
}

func NewGitVCSAdapter(repoPath string) GitVCSAdapter {
	return GitVCSAdapter{RepoPath: repoPath}
}

// Remove deletes paths from the index and the working tree. Paths git does
// not track are removed from disk only.
func (a GitVCSAdapter) Remove(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"rm", "-r", "-f", "-q", "--ignore-unmatch", "--"}, a.relative(paths)...)
	if err := a.run(ctx, args...); err != nil {
		return err
	}
	for _, p := range paths {
		if err := os.RemoveAll(a.absolute(p)); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to remove " + p).
				WithCause(err)
		}
	}
	return nil
}

func (a GitVCSAdapter) Add(ctx context.Context, path string) error {
	return a.run(ctx, "add", "--", a.relative([]string{path})[0])
}

func (a GitVCSAdapter) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("commit message is empty")
	}
	return a.run(ctx, "commit", "-q", "-m", message)
}

func (a GitVCSAdapter) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", a.dir()}, args...)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("git " + args[0] + " failed").
			WithCause(shared.CommandError(output, err))
	}
	log.Debug().Strs("args", args).Msg("git command completed")
	return nil
}

func (a GitVCSAdapter) dir() string {
	if a.RepoPath == "" {
		return "."
	}
	return a.RepoPath
}

func (a GitVCSAdapter) absolute(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.dir(), p)
}

// relative expresses paths relative to the repository so git accepts them
// regardless of the process working directory.
func (a GitVCSAdapter) relative(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if filepath.IsAbs(p) {
			if abs, err := filepath.Abs(a.dir()); err == nil {
				if rel, err := filepath.Rel(abs, p); err == nil {
					out = append(out, filepath.ToSlash(rel))
					continue
				}
			}
		}
		out = append(out, filepath.ToSlash(p))
	}
	return out
}

var _ ports.VCSPort = GitVCSAdapter{}
