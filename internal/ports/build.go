package ports

import (
	"context"

	"forgeconf/internal/types"
)

// CommitPort resolves the commit the working tree is checked out at.
// A nil commit with a nil error means HEAD does not point at a ref.
type CommitPort interface {
	ReadCommit(ctx context.Context, projectDir string) (*string, error)
}

type PackageMetadataPort interface {
	LoadMetadata(path string) (types.PackageMetadata, error)
}

type BuildInfoPort interface {
	WriteBuildInfo(appDir string, info types.BuildInfo) error
}

// PlatformDataPort removes files a platform never uses. Missing files are
// not an error.
type PlatformDataPort interface {
	RemoveIfExists(ctx context.Context, path string) error
}

// FusePort flips fuses of an Electron executable in place.
type FusePort interface {
	Flip(ctx context.Context, executable string, config types.FuseConfig) error
}

type ConfigRendererPort interface {
	Render(config types.ForgeConfig, format types.OutputFormat) ([]byte, error)
}
