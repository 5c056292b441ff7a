package types

// Substitutions is the complete set of values handed to the template
// renderer for one (package, platform version) pair.
type Substitutions struct {
	Name         string           `yaml:"Name"`
	Package      string           `yaml:"Package"`
	Version      string           `yaml:"Version"`
	Inc          string           `yaml:"Inc"`
	Distribution string           `yaml:"Distribution"`
	OSName       string           `yaml:"OSName"`
	OSVersion    string           `yaml:"OSVersion"`
	BuildType    BuildType        `yaml:"BuildType"`
	Maintainer   Person           `yaml:"Maintainer"`
	Maintainers  []Person         `yaml:"Maintainers"`
	Homepage     string           `yaml:"Homepage"`
	Licenses     []string         `yaml:"Licenses"`
	Description  string           `yaml:"Description"`
	Depends      []string         `yaml:"Depends"`
	BuildDepends []string         `yaml:"BuildDepends"`
	TestDepends  []string         `yaml:"TestDepends"`
	Changelogs   []ChangelogTuple `yaml:"changelogs"`
	GitSource    GitSource        `yaml:"git_source"`
	UserName     string           `yaml:"user_name"`
	RepoName     string           `yaml:"repo_name"`
	TagName      string           `yaml:"tag_name"`
}

// Map returns the renderer view of s. Keys match the yaml tags.
func (s Substitutions) Map() map[string]any {
	return map[string]any{
		"Name":         s.Name,
		"Package":      s.Package,
		"Version":      s.Version,
		"Inc":          s.Inc,
		"Distribution": s.Distribution,
		"OSName":       s.OSName,
		"OSVersion":    s.OSVersion,
		"BuildType":    string(s.BuildType),
		"Maintainer":   s.Maintainer,
		"Maintainers":  append([]Person(nil), s.Maintainers...),
		"Homepage":     s.Homepage,
		"Licenses":     append([]string(nil), s.Licenses...),
		"Description":  s.Description,
		"Depends":      append([]string(nil), s.Depends...),
		"BuildDepends": append([]string(nil), s.BuildDepends...),
		"TestDepends":  append([]string(nil), s.TestDepends...),
		"changelogs":   append([]ChangelogTuple(nil), s.Changelogs...),
		"git_source":   string(s.GitSource),
		"user_name":    s.UserName,
		"repo_name":    s.RepoName,
		"tag_name":     s.TagName,
	}
}

// TagFields returns the placeholders of the release tag template.
func (s Substitutions) TagFields() map[string]string {
	return map[string]string{
		"Package":      s.Package,
		"Version":      s.Version,
		"Inc":          s.Inc,
		"Distribution": s.Distribution,
	}
}

// SubstitutionsEntry records the substitutions of one package on one
// platform version.
type SubstitutionsEntry struct {
	Package       string        `yaml:"package"`
	OSVersion     string        `yaml:"os_version"`
	Substitutions Substitutions `yaml:"substitutions"`
}

// TagNameEntry pairs a package with its release tag.
type TagNameEntry struct {
	Package string `yaml:"package"`
	TagName string `yaml:"tag_name"`
}
