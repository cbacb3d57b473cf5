package app

import (
	"forgeconf/internal/adapters"
	"forgeconf/internal/ports"
)

type Service struct {
	Metadata     ports.PackageMetadataPort
	Commits      ports.CommitPort
	BuildInfo    ports.BuildInfoPort
	PlatformData ports.PlatformDataPort
	Fuses        ports.FusePort
	Renderer     ports.ConfigRendererPort
}

func NewService() Service {
	return Service{
		Metadata:     adapters.NewPackageJSONAdapter(),
		Commits:      adapters.NewGitRefAdapter(),
		BuildInfo:    adapters.NewBuildInfoFileAdapter(),
		PlatformData: adapters.NewPlatformDataAdapter(),
		Fuses:        adapters.NewFuseFileAdapter(),
		Renderer:     adapters.NewConfigRendererAdapter(),
	}
}
