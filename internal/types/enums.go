package types

type BuildType string

const (
	BuildTypeAmentCMake  BuildType = "ament_cmake"
	BuildTypeAmentPython BuildType = "ament_python"
	BuildTypeCatkin      BuildType = "catkin"
	BuildTypeCMake       BuildType = "cmake"
)

// GitSource names a hosting service vcpkg has a vcpkg_from_* helper for.
type GitSource string

const (
	GitSourceGitHub    GitSource = "github"
	GitSourceGitLab    GitSource = "gitlab"
	GitSourceBitbucket GitSource = "bitbucket"
)
