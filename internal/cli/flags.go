package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bloom-vcpkg/internal/app"
)

type targetOptions struct {
	Workspace   string
	OSName      string
	OSVersions  []string
	ROSDistro   string
	Inc         string
	RosdepFiles []string
}

type releaseIndexOptions struct {
	Location       string
	HTTPTimeoutSec int
	HTTPRetries    int
}

func addTargetFlags(cmd *cobra.Command, opts *targetOptions) {
	cmd.Flags().StringVar(&opts.Workspace, "workspace", ".", "Repository holding the packages")
	cmd.Flags().StringVar(&opts.OSName, "os-name", app.DefaultOSName, "Target operating system")
	cmd.Flags().StringSliceVar(&opts.OSVersions, "os-version", []string{"10"}, "Target operating system version(s)")
	cmd.Flags().StringVar(&opts.ROSDistro, "ros-distro", "", "ROS distribution")
	cmd.Flags().StringVar(&opts.Inc, "inc", app.DefaultInc, "Release increment")
	cmd.Flags().StringSliceVar(&opts.RosdepFiles, "rosdep", nil, "Rosdep rule file(s), later files win")

	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))
	_ = viper.BindPFlag("os_name", cmd.Flags().Lookup("os-name"))
	_ = viper.BindPFlag("os_versions", cmd.Flags().Lookup("os-version"))
	_ = viper.BindPFlag("ros_distro", cmd.Flags().Lookup("ros-distro"))
	_ = viper.BindPFlag("inc", cmd.Flags().Lookup("inc"))
	_ = viper.BindPFlag("rosdep", cmd.Flags().Lookup("rosdep"))
}

func addReleaseIndexFlags(cmd *cobra.Command, opts *releaseIndexOptions) {
	cmd.Flags().StringVar(&opts.Location, "release-index", "", "rosdistro index URL or path (default upstream index-v4.yaml)")
	cmd.Flags().IntVar(&opts.HTTPTimeoutSec, "http-timeout", 30, "HTTP timeout in seconds")
	cmd.Flags().IntVar(&opts.HTTPRetries, "http-retries", 3, "HTTP retries")

	_ = viper.BindPFlag("release_index", cmd.Flags().Lookup("release-index"))
	_ = viper.BindPFlag("http_timeout", cmd.Flags().Lookup("http-timeout"))
	_ = viper.BindPFlag("http_retries", cmd.Flags().Lookup("http-retries"))
}

func resolveTarget(cmd *cobra.Command, opts targetOptions) app.TargetRequest {
	return app.TargetRequest{
		Workspace:   resolveString(cmd, opts.Workspace, "workspace", "workspace"),
		OSName:      resolveString(cmd, opts.OSName, "os_name", "os-name"),
		OSVersions:  resolveStrings(cmd, opts.OSVersions, "os_versions", "os-version"),
		ROSDistro:   resolveString(cmd, opts.ROSDistro, "ros_distro", "ros-distro"),
		Inc:         resolveString(cmd, opts.Inc, "inc", "inc"),
		RosdepFiles: resolveStrings(cmd, opts.RosdepFiles, "rosdep", "rosdep"),
	}
}

func resolveReleaseIndex(cmd *cobra.Command, opts releaseIndexOptions) app.ReleaseIndexRequest {
	return app.ReleaseIndexRequest{
		Location:       resolveString(cmd, opts.Location, "release_index", "release-index"),
		HTTPTimeoutSec: resolveInt(cmd, opts.HTTPTimeoutSec, "http_timeout", "http-timeout"),
		HTTPRetries:    resolveInt(cmd, opts.HTTPRetries, "http_retries", "http-retries"),
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
