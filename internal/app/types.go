package app

import "forgeconf/internal/types"

type ConfigRequest struct {
	Env         types.Environment
	ProjectDir  string
	PackageJSON string
	HookCommand string
	Format      types.OutputFormat
}

type ConfigResult struct {
	Config   types.ForgeConfig
	Rendered []byte
}

// AfterCopyRequest carries the arguments the packaging framework passes to
// its packageAfterCopy hook.
type AfterCopyRequest struct {
	Env             types.Environment
	ProjectDir      string
	AppPath         string
	ElectronVersion string
	Platform        types.Platform
}

type AfterCopyResult struct {
	BuildInfo   types.BuildInfo
	RemovedIcon string
}

// AfterExtractRequest carries the arguments of the packageAfterExtract hook.
type AfterExtractRequest struct {
	Env             types.Environment
	ExtractPath     string
	ElectronVersion string
	Platform        types.Platform
}

type AfterExtractResult struct {
	Executable string
	Fuses      types.FuseConfig
}

type ValidateRequest struct {
	PackageJSON string
}

type ValidateResult struct {
	PackageName string
	Version     string
}
