package types

type BuildType string

const (
	BuildTypeDevel   BuildType = "devel"
	BuildTypeRelease BuildType = "release"
)

// Platform is a Node.js style platform tag as passed by the packaging framework.
type Platform string

const (
	PlatformDarwin Platform = "darwin"
	PlatformMAS    Platform = "mas"
	PlatformWin32  Platform = "win32"
	PlatformLinux  Platform = "linux"
)

type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)
