package ports

import "bloom-vcpkg/internal/types"

// PackageManifestPort parses package.xml files into package metadata.
type PackageManifestPort interface {
	// ParsePackage reads a single package.xml.
	ParsePackage(path string) (types.Package, error)

	// ParsePackages reads every path in order.
	ParsePackages(paths []string) ([]types.Package, error)
}

// WorkspacePort discovers package.xml files within workspace roots.
type WorkspacePort interface {
	FindPackageXML(root string) ([]string, error)
}
