package adapters

import (
	"encoding/xml"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"bloom-vcpkg/internal/ports"
	"bloom-vcpkg/internal/types"
)

// defaultBuildType is what catkin_pkg reports when <export> names none.
const defaultBuildType = types.BuildTypeCatkin

type PackageXMLAdapter struct {
	mu    sync.Mutex
	cache map[string]packageXMLCacheEntry
	// Conditions holds the variables dependency conditions are evaluated
	// against. Unset variables fall back to the process environment.
	Conditions map[string]string
}

func NewPackageXMLAdapter() *PackageXMLAdapter {
	return &PackageXMLAdapter{
		cache:      map[string]packageXMLCacheEntry{},
		Conditions: map[string]string{"ROS_VERSION": "2"},
	}
}

type packageXML struct {
	Format      string        `xml:"format,attr"`
	Name        string        `xml:"name"`
	Version     string        `xml:"version"`
	Description innerText     `xml:"description"`
	Maintainers []personTag   `xml:"maintainer"`
	Authors     []personTag   `xml:"author"`
	Licenses    []simpleValue `xml:"license"`
	URLs        []urlTag      `xml:"url"`
	Export      exportSection `xml:"export"`

	Depend         []dependTag `xml:"depend"`
	ExecDepend     []dependTag `xml:"exec_depend"`
	RunDepend      []dependTag `xml:"run_depend"`
	BuildDepend    []dependTag `xml:"build_depend"`
	BuildToolDep   []dependTag `xml:"buildtool_depend"`
	BuildExportDep []dependTag `xml:"build_export_depend"`
	TestDepend     []dependTag `xml:"test_depend"`
}

type innerText struct {
	Value string `xml:",innerxml"`
}

type exportSection struct {
	BuildType []dependTag `xml:"build_type"`
}

type simpleValue struct {
	Value string `xml:",chardata"`
}

type personTag struct {
	Value string `xml:",chardata"`
	Email string `xml:"email,attr"`
}

type urlTag struct {
	Value string `xml:",chardata"`
	Type  string `xml:"type,attr"`
}

type dependTag struct {
	Value     string `xml:",chardata"`
	Condition string `xml:"condition,attr"`
}

type packageXMLCacheEntry struct {
	modTime time.Time
	pkg     types.Package
}

func (a *PackageXMLAdapter) ParsePackages(paths []string) ([]types.Package, error) {
	pkgs := make([]types.Package, 0, len(paths))
	for _, path := range paths {
		pkg, err := a.ParsePackage(path)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

func (a *PackageXMLAdapter) ParsePackage(path string) (types.Package, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.Package{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml").
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return entry.pkg, nil
	}
	a.mu.Unlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return types.Package{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml").
			WithCause(err)
	}
	var doc packageXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return types.Package{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package.xml " + path).
			WithCause(err)
	}
	pkg := a.toPackage(doc)
	pkg.Path = path

	a.mu.Lock()
	a.cache[path] = packageXMLCacheEntry{modTime: info.ModTime(), pkg: pkg}
	a.mu.Unlock()
	return pkg, nil
}

func (a *PackageXMLAdapter) toPackage(doc packageXML) types.Package {
	pkg := types.Package{
		Name:        strings.TrimSpace(doc.Name),
		Version:     strings.TrimSpace(doc.Version),
		Description: strings.TrimSpace(doc.Description.Value),
		BuildType:   defaultBuildType,
		Maintainers: toPersons(doc.Maintainers),
		Authors:     toPersons(doc.Authors),
	}
	for _, license := range doc.Licenses {
		if value := strings.TrimSpace(license.Value); value != "" {
			pkg.Licenses = append(pkg.Licenses, value)
		}
	}
	for _, u := range doc.URLs {
		if value := strings.TrimSpace(u.Value); value != "" {
			urlType := strings.TrimSpace(u.Type)
			if urlType == "" {
				urlType = "website"
			}
			pkg.URLs = append(pkg.URLs, types.PackageURL{Type: urlType, Value: value})
		}
	}
	if buildTypes := a.collect(doc.Export.BuildType); len(buildTypes) > 0 {
		pkg.BuildType = types.BuildType(buildTypes[0].Name)
	}

	pkg.Depends = a.collect(doc.Depend)
	// run_depend is the format 1 spelling of exec_depend.
	pkg.ExecDepends = a.collect(append(append([]dependTag(nil), doc.ExecDepend...), doc.RunDepend...))
	pkg.BuildDepends = a.collect(doc.BuildDepend)
	pkg.BuildToolDepends = a.collect(doc.BuildToolDep)
	pkg.BuildExportDepends = a.collect(doc.BuildExportDep)
	pkg.TestDepends = a.collect(doc.TestDepend)
	return pkg
}

func toPersons(tags []personTag) []types.Person {
	var persons []types.Person
	for _, tag := range tags {
		name := strings.TrimSpace(tag.Value)
		if name == "" {
			continue
		}
		persons = append(persons, types.Person{Name: name, Email: strings.TrimSpace(tag.Email)})
	}
	return persons
}

// collect returns the non-empty tags whose condition holds.
func (a *PackageXMLAdapter) collect(tags []dependTag) []types.Dependency {
	var deps []types.Dependency
	for _, tag := range tags {
		key := strings.TrimSpace(tag.Value)
		if key == "" || !a.evaluateCondition(tag.Condition) {
			continue
		}
		deps = append(deps, types.Dependency{Name: key})
	}
	return deps
}

// evaluateCondition handles the single comparisons ROS packages use in
// practice ("$ROS_VERSION == 2"). Anything else is treated as true.
func (a *PackageXMLAdapter) evaluateCondition(condition string) bool {
	condition = strings.TrimSpace(condition)
	if condition == "" {
		return true
	}
	for _, op := range []string{"==", "!="} {
		left, right, ok := strings.Cut(condition, op)
		if !ok {
			continue
		}
		equal := a.expand(left) == a.expand(right)
		if op == "==" {
			return equal
		}
		return !equal
	}
	return true
}

func (a *PackageXMLAdapter) expand(operand string) string {
	operand = strings.Trim(strings.TrimSpace(operand), `"'`)
	if !strings.HasPrefix(operand, "$") {
		return operand
	}
	name := strings.TrimPrefix(operand, "$")
	if value, ok := a.Conditions[name]; ok {
		return value
	}
	return os.Getenv(name)
}

var _ ports.PackageManifestPort = (*PackageXMLAdapter)(nil)
