package app

import "bloom-vcpkg/internal/types"

// TargetRequest selects the workspace and the platforms packages are
// generated for.
type TargetRequest struct {
	Workspace   string
	OSName      string
	OSVersions  []string
	ROSDistro   string
	Inc         string
	RosdepFiles []string
}

// ReleaseIndexRequest locates the rosdistro index.
type ReleaseIndexRequest struct {
	Location       string
	HTTPTimeoutSec int
	HTTPRetries    int
}

type GenerateRequest struct {
	Target       TargetRequest
	ReleaseIndex ReleaseIndexRequest
}

type GeneratedPort struct {
	Package   string
	Port      string
	OSVersion string
	TagName   string
	Dir       string
	Templates []string
}

type GenerateResult struct {
	Ports []GeneratedPort
}

type SubsRequest struct {
	Target       TargetRequest
	ReleaseIndex ReleaseIndexRequest
	// OutputDir, when set, also receives substitutions.yaml.
	OutputDir string
}

type SubsResult struct {
	Entries []types.SubstitutionsEntry
}

type TagNameRequest struct {
	Workspace string
	ROSDistro string
	Inc       string
	OutputDir string
}

type TagNameResult struct {
	Tags []types.TagNameEntry
}

type CheckRequest struct {
	Target TargetRequest
}

type CheckResult struct {
	Packages []string
	Keys     int
}
