package app

import (
	"os/exec"
	"time"

	"bloom-vcpkg/internal/adapters"
	"bloom-vcpkg/internal/ports"
)

type Service struct {
	Workspace       ports.WorkspacePort
	Manifest        ports.PackageManifestPort
	Changelog       ports.ChangelogPort
	ReleaserHistory ports.ReleaserHistoryPort
	Templates       ports.TemplatePort
	// NewResolver returns an empty resolver; rule layers come from each
	// request.
	NewResolver     func() ports.DependencyResolverPort
	NewReleaseIndex func(req ReleaseIndexRequest) ports.ReleaseIndexPort
	NewVCS          func(repoPath string) ports.VCSPort
	NewOutput       func(dir string) ports.OutputPort
	LookPath        func(file string) (string, error)
	Clock           func() time.Time
}

func NewService() Service {
	return Service{
		Workspace:       adapters.NewWorkspaceAdapter(),
		Manifest:        adapters.NewPackageXMLAdapter(),
		Changelog:       adapters.NewChangelogRSTAdapter(),
		ReleaserHistory: adapters.NewReleaserHistoryFileAdapter(),
		Templates:       adapters.NewTemplateFilesAdapter(),
		NewResolver: func() ports.DependencyResolverPort {
			return adapters.NewRosdepResolverAdapter()
		},
		NewReleaseIndex: func(req ReleaseIndexRequest) ports.ReleaseIndexPort {
			return adapters.NewReleaseIndexAdapter(req.Location, req.HTTPTimeoutSec, req.HTTPRetries)
		},
		NewVCS: func(repoPath string) ports.VCSPort {
			return adapters.NewGitVCSAdapter(repoPath)
		},
		NewOutput: func(dir string) ports.OutputPort {
			return adapters.NewOutputFileAdapter(dir)
		},
		LookPath: exec.LookPath,
		Clock:    time.Now,
	}
}
