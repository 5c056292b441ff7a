package adapters

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"text/template"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

// TemplateSuffix marks files rendered by TemplateFilesAdapter.
const TemplateSuffix = ".tmpl"

//go:embed templates
var defaultTemplates embed.FS

// TemplateFilesAdapter renders every *.tmpl file of a directory into the
// file without the suffix. A directory without templates gets back the
// templates this adapter last processed there, or else the built-in
// templates of the requested format.
type TemplateFilesAdapter struct {
	mu        sync.Mutex
	processed map[string]map[string][]byte
}

func NewTemplateFilesAdapter() *TemplateFilesAdapter {
	return &TemplateFilesAdapter{processed: map[string]map[string][]byte{}}
}

func (a *TemplateFilesAdapter) Process(dir string, subs map[string]any, format string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("template directory is empty")
	}
	templates, err := findTemplates(dir)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		if err := a.restore(dir, format); err != nil {
			return nil, err
		}
		if templates, err = findTemplates(dir); err != nil {
			return nil, err
		}
	}
	contents := map[string][]byte{}
	for _, tmplPath := range templates {
		content, err := renderTemplate(tmplPath, subs)
		if err != nil {
			return nil, err
		}
		contents[tmplPath] = content
	}
	a.mu.Lock()
	a.processed[filepath.Clean(dir)] = contents
	a.mu.Unlock()
	return templates, nil
}

// restore rewrites the templates removed after an earlier Process call on
// dir, falling back to the built-in set.
func (a *TemplateFilesAdapter) restore(dir string, format string) error {
	a.mu.Lock()
	previous := a.processed[filepath.Clean(dir)]
	a.mu.Unlock()
	if len(previous) == 0 {
		return seedDefaultTemplates(dir, format)
	}
	for tmplPath, content := range previous {
		if err := os.MkdirAll(filepath.Dir(tmplPath), 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create template directory").
				WithCause(err)
		}
		if err := os.WriteFile(tmplPath, content, 0644); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to restore template " + tmplPath).
				WithCause(err)
		}
	}
	log.Debug().Str("dir", dir).Int("templates", len(previous)).Msg("restored templates")
	return nil
}

func findTemplates(dir string) ([]string, error) {
	var templates []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && p == dir {
				return filepath.SkipDir
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), TemplateSuffix) {
			templates = append(templates, p)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan template directory " + dir).
			WithCause(err)
	}
	sort.Strings(templates)
	return templates, nil
}

func seedDefaultTemplates(dir string, format string) error {
	root := path.Join("templates", format)
	entries, err := fs.ReadDir(defaultTemplates, root)
	if err != nil || len(entries) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no templates in %s and no built-in templates for format %q", dir, format))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create template directory").
			WithCause(err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := defaultTemplates.ReadFile(path.Join(root, entry.Name()))
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read built-in template " + entry.Name()).
				WithCause(err)
		}
		if err := os.WriteFile(filepath.Join(dir, entry.Name()), content, 0644); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write template " + entry.Name()).
				WithCause(err)
		}
	}
	log.Debug().Str("dir", dir).Str("format", format).Int("templates", len(entries)).Msg("seeded built-in templates")
	return nil
}

// renderTemplate renders tmplPath and returns the template source.
func renderTemplate(tmplPath string, subs map[string]any) ([]byte, error) {
	content, err := os.ReadFile(tmplPath)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read template " + tmplPath).
			WithCause(err)
	}
	tmpl, err := template.New(filepath.Base(tmplPath)).
		Option("missingkey=error").
		Funcs(templateFuncs).
		Parse(string(content))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse template " + tmplPath).
			WithCause(err)
	}
	var out bytes.Buffer
	if err := tmpl.Execute(&out, subs); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to render template " + tmplPath).
			WithCause(err)
	}
	target := strings.TrimSuffix(tmplPath, TemplateSuffix)
	if err := os.WriteFile(target, out.Bytes(), 0644); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + target).
			WithCause(err)
	}
	log.Debug().Str("template", tmplPath).Str("output", target).Msg("template rendered")
	return content, nil
}

var templateFuncs = template.FuncMap{
	"json": func(value any) (string, error) {
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(value); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	},
	"join":  strings.Join,
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"person": func(p types.Person) string {
		if p.Email == "" {
			return p.Name
		}
		return fmt.Sprintf("%s <%s>", p.Name, p.Email)
	},
	// portVersion turns the release increment into vcpkg's integer
	// port-version; non-numeric increments count as 0.
	"portVersion": func(inc string) int {
		value, err := strconv.Atoi(strings.TrimSpace(inc))
		if err != nil || value < 0 {
			return 0
		}
		return value
	},
	"unique": func(lists ...[]string) []string {
		seen := map[string]struct{}{}
		out := []string{}
		for _, list := range lists {
			for _, value := range list {
				if _, ok := seen[value]; ok {
					continue
				}
				seen[value] = struct{}{}
				out = append(out, value)
			}
		}
		return out
	},
	"comment": func(text string) string {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRight("# "+line, " ")
		}
		return strings.Join(lines, "\n")
	},
}

var _ ports.TemplatePort = (*TemplateFilesAdapter)(nil)
