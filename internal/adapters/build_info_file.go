package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"forgeconf/internal/ports"
	"forgeconf/internal/types"
)

const BuildInfoFilename = "buildInfo.json"

type BuildInfoFileAdapter struct{}

func NewBuildInfoFileAdapter() BuildInfoFileAdapter {
	return BuildInfoFileAdapter{}
}

func (a BuildInfoFileAdapter) WriteBuildInfo(appDir string, info types.BuildInfo) error {
	if strings.TrimSpace(appDir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("app directory is empty")
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode build info").
			WithCause(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, BuildInfoFilename), data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write build info").
			WithCause(err)
	}
	return nil
}

var _ ports.BuildInfoPort = BuildInfoFileAdapter{}
