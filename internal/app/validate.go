package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"forgeconf/internal/core"
	"forgeconf/internal/types"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	path := strings.TrimSpace(req.PackageJSON)
	if path == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package.json path is required")
	}
	meta, err := s.Metadata.LoadMetadata(path)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := core.ValidateMetadata(ctx, meta); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{PackageName: meta.Name, Version: meta.Version}, nil
}

func (s Service) BuildID(env types.Environment) types.BuildType {
	return core.BuildID(env)
}

// Commit resolves the checked out commit of the project, nil when HEAD is
// detached.
func (s Service) Commit(ctx context.Context, projectDir string) (*string, error) {
	dir, err := absProjectDir(projectDir)
	if err != nil {
		return nil, err
	}
	return s.Commits.ReadCommit(ctx, dir)
}
