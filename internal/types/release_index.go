package types

// Index is the rosdistro index file (index-v4.yaml).
type Index struct {
	Type          string                       `yaml:"type"`
	Version       int                          `yaml:"version"`
	Distributions map[string]IndexDistribution `yaml:"distributions"`

	// BaseURL is the location the index was loaded from. Distribution file
	// paths are relative to it.
	BaseURL string `yaml:"-"`
}

type IndexDistribution struct {
	Distribution       []string `yaml:"distribution"`
	DistributionType   string   `yaml:"distribution_type,omitempty"`
	DistributionStatus string   `yaml:"distribution_status,omitempty"`
}

// DistributionFile is a rosdistro distribution.yaml.
type DistributionFile struct {
	Type         string                `yaml:"type"`
	Version      int                   `yaml:"version"`
	Repositories map[string]Repository `yaml:"repositories"`
}

type Repository struct {
	Release *ReleaseRepository `yaml:"release,omitempty"`
	Source  *SourceRepository  `yaml:"source,omitempty"`
	Status  string             `yaml:"status,omitempty"`
}

type ReleaseRepository struct {
	URL      string            `yaml:"url"`
	Tags     map[string]string `yaml:"tags,omitempty"`
	Version  string            `yaml:"version,omitempty"`
	Packages []string          `yaml:"packages,omitempty"`
}

type SourceRepository struct {
	Type    string `yaml:"type"`
	URL     string `yaml:"url"`
	Version string `yaml:"version"`
}

// ReleaseCoordinates locate the upstream release repository of a package.
type ReleaseCoordinates struct {
	URL       string
	GitSource GitSource
	UserName  string
	RepoName  string
}
