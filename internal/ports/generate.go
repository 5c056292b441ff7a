package ports

import "context"

// TemplatePort renders the templates found in dir with subs and returns
// the template paths it processed.
type TemplatePort interface {
	Process(dir string, subs map[string]any, format string) ([]string, error)
}

// VCSPort stages and commits generated files.
type VCSPort interface {
	Remove(ctx context.Context, paths []string) error
	Add(ctx context.Context, path string) error
	Commit(ctx context.Context, message string) error
}
