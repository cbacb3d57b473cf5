package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"forgeconf/internal/core"
)

func (s Service) Config(ctx context.Context, req ConfigRequest) (ConfigResult, error) {
	projectDir, err := absProjectDir(req.ProjectDir)
	if err != nil {
		return ConfigResult{}, err
	}
	packageJSON := strings.TrimSpace(req.PackageJSON)
	if packageJSON == "" {
		packageJSON = filepath.Join(projectDir, "package.json")
	}
	meta, err := s.Metadata.LoadMetadata(packageJSON)
	if err != nil {
		return ConfigResult{}, err
	}
	assembler := core.NewConfigAssembler(projectDir, req.HookCommand)
	config, err := assembler.Assemble(ctx, req.Env, meta)
	if err != nil {
		return ConfigResult{}, err
	}
	rendered, err := s.Renderer.Render(config, req.Format)
	if err != nil {
		return ConfigResult{}, err
	}
	return ConfigResult{Config: config, Rendered: rendered}, nil
}

func absProjectDir(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve project directory").
			WithCause(err)
	}
	return abs, nil
}
