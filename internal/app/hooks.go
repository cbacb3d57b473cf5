package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"forgeconf/internal/core"
	"forgeconf/internal/types"
)

// AfterCopy runs once the app sources are copied into the package. It
// writes the build manifest and drops the icon the platform does not use;
// the two touch disjoint files and run concurrently.
func (s Service) AfterCopy(ctx context.Context, req AfterCopyRequest) (AfterCopyResult, error) {
	if err := validateHookArgs(req.AppPath, req.Platform); err != nil {
		return AfterCopyResult{}, err
	}
	result := AfterCopyResult{
		RemovedIcon: filepath.Join(req.AppPath, filepath.FromSlash(core.UnusedIconPath(req.Platform))),
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		info, err := s.writeBuildInfo(groupCtx, req)
		if err != nil {
			return err
		}
		result.BuildInfo = info
		return nil
	})
	group.Go(func() error {
		return s.PlatformData.RemoveIfExists(groupCtx, result.RemovedIcon)
	})
	if err := group.Wait(); err != nil {
		return AfterCopyResult{}, err
	}

	log.Ctx(ctx).Info().
		Str("platform", string(req.Platform)).
		Str("electron", req.ElectronVersion).
		Str("build", string(result.BuildInfo.Type)).
		Msg("after-copy hook completed")
	return result, nil
}

func (s Service) writeBuildInfo(ctx context.Context, req AfterCopyRequest) (types.BuildInfo, error) {
	var commit *string
	if core.BuildID(req.Env) == types.BuildTypeDevel {
		projectDir, err := absProjectDir(req.ProjectDir)
		if err != nil {
			return types.BuildInfo{}, err
		}
		commit, err = s.Commits.ReadCommit(ctx, projectDir)
		if err != nil {
			return types.BuildInfo{}, err
		}
	}
	info := core.NewBuildInfo(req.Env, req.Platform, commit)
	if err := s.BuildInfo.WriteBuildInfo(req.AppPath, info); err != nil {
		return types.BuildInfo{}, err
	}
	return info, nil
}

// AfterExtract hardens the extracted Electron runtime by flipping its fuses.
// Any failure aborts packaging.
func (s Service) AfterExtract(ctx context.Context, req AfterExtractRequest) (AfterExtractResult, error) {
	if err := validateHookArgs(req.ExtractPath, req.Platform); err != nil {
		return AfterExtractResult{}, err
	}
	executable := filepath.Join(req.ExtractPath, filepath.FromSlash(core.ElectronPath(req.Platform)))
	fuses := core.FuseConfigFor(req.Env)
	if err := s.Fuses.Flip(ctx, executable, fuses); err != nil {
		return AfterExtractResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("platform", string(req.Platform)).
		Str("electron", req.ElectronVersion).
		Str("executable", executable).
		Msg("after-extract hook completed")
	return AfterExtractResult{Executable: executable, Fuses: fuses}, nil
}

func validateHookArgs(path string, platform types.Platform) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("hook path is required")
	}
	if strings.TrimSpace(string(platform)) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("hook platform is required")
	}
	return nil
}
