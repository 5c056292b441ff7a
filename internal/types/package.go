package types

// Person is a maintainer or author entry from package.xml.
type Person struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
}

// Dependency references an abstract rosdep key declared in package.xml.
type Dependency struct {
	Name string
}

// ResolvedDependencyMap maps a rosdep key to the ordered platform package
// names it installs. An empty slice is a valid resolution.
type ResolvedDependencyMap map[string][]string

// Package is the subset of package.xml metadata the generator consumes.
type Package struct {
	Name        string
	Version     string
	Description string
	BuildType   BuildType
	Maintainers []Person
	Authors     []Person
	Licenses    []string
	URLs        []PackageURL

	BuildDepends       []Dependency
	BuildToolDepends   []Dependency
	BuildExportDepends []Dependency
	ExecDepends        []Dependency
	Depends            []Dependency
	TestDepends        []Dependency

	// Path is the package.xml the package was read from.
	Path string
}

type PackageURL struct {
	Type  string
	Value string
}

// RunDepends returns <depend> followed by <exec_depend> keys.
func (p Package) RunDepends() []Dependency {
	return concatDeps(p.Depends, p.ExecDepends)
}

// AllBuildDepends returns the keys needed to build the package, in
// <depend>, <build_depend>, <buildtool_depend>, <build_export_depend> order.
func (p Package) AllBuildDepends() []Dependency {
	return concatDeps(p.Depends, p.BuildDepends, p.BuildToolDepends, p.BuildExportDepends)
}

// Keys returns every distinct dependency key of the package in declaration
// order.
func (p Package) Keys() []string {
	seen := map[string]struct{}{}
	var keys []string
	for _, dep := range concatDeps(p.AllBuildDepends(), p.ExecDepends, p.TestDepends) {
		if _, ok := seen[dep.Name]; ok {
			continue
		}
		seen[dep.Name] = struct{}{}
		keys = append(keys, dep.Name)
	}
	return keys
}

// Homepage returns the first website URL, or the first URL of any type.
func (p Package) Homepage() string {
	for _, u := range p.URLs {
		if u.Type == "" || u.Type == "website" {
			return u.Value
		}
	}
	if len(p.URLs) > 0 {
		return p.URLs[0].Value
	}
	return ""
}

func concatDeps(lists ...[]Dependency) []Dependency {
	var out []Dependency
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}
