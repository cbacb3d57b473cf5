package core

import (
	"path"

	"forgeconf/internal/shared"
	"forgeconf/internal/types"
)

// IconBase is the application icon path, without extension, relative to the
// project (and packaged app) root.
const IconBase = "sources/assets/icons/app"

// BuildID maps the raw build variable to a build type. Anything that is not
// a known release alias is a development build.
func BuildID(env types.Environment) types.BuildType {
	switch shared.NormalizeEnvValue(env.Build) {
	case "release", "stable":
		return types.BuildTypeRelease
	default:
		return types.BuildTypeDevel
	}
}

// ElectronPath returns the runtime executable path inside an extracted
// Electron distribution for the given platform.
func ElectronPath(platform types.Platform) string {
	switch platform {
	case types.PlatformDarwin:
		return "Electron.app/Contents/MacOS/Electron"
	case types.PlatformWin32:
		return "electron.exe"
	default:
		return "electron"
	}
}

// UnusedIconPath returns the icon, relative to the packaged app root, that
// the platform never reads.
func UnusedIconPath(platform types.Platform) string {
	ext := ".ico"
	if platform == types.PlatformWin32 {
		ext = ".png"
	}
	return path.Clean(IconBase + ext)
}

// NewBuildInfo builds the manifest for one packaged output. The commit is
// only recorded for development builds.
func NewBuildInfo(env types.Environment, platform types.Platform, commit *string) types.BuildInfo {
	info := types.BuildInfo{
		Type: BuildID(env),
		Features: types.BuildFeatures{
			UpdateNotifications: env.UpdateNotifications,
		},
	}
	if platform == types.PlatformWin32 && env.AppUserModelID != "" {
		info.AppUserModelID = env.AppUserModelID
	}
	if info.Type == types.BuildTypeDevel && commit != nil {
		info.Commit = *commit
	}
	return info
}

// FuseConfigFor returns the fuse state for the extracted runtime. Release
// builds lock the Node.js entry points down; devel builds keep them for
// debugging.
func FuseConfigFor(env types.Environment) types.FuseConfig {
	devel := BuildID(env) == types.BuildTypeDevel
	return types.FuseConfig{
		Version: types.FuseVersionV1,
		Fuses: map[types.FuseOption]bool{
			types.FuseOnlyLoadAppFromAsar:                  env.Asar,
			types.FuseRunAsNode:                            devel,
			types.FuseEnableNodeOptionsEnvironmentVariable: devel,
			types.FuseEnableNodeCliInspectArguments:        devel,
		},
	}
}
