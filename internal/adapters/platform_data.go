package adapters

import (
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"forgeconf/internal/ports"
	"forgeconf/internal/shared"
)

type PlatformDataAdapter struct{}

func NewPlatformDataAdapter() PlatformDataAdapter {
	return PlatformDataAdapter{}
}

func (a PlatformDataAdapter) RemoveIfExists(ctx context.Context, path string) error {
	exists, err := shared.FileExists(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat platform data").
			WithCause(err)
	}
	if !exists {
		log.Ctx(ctx).Debug().Str("path", path).Msg("platform data already absent")
		return nil
	}
	if err := os.Remove(path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to remove platform data").
			WithCause(err)
	}
	log.Ctx(ctx).Debug().Str("path", path).Msg("platform data removed")
	return nil
}

var _ ports.PlatformDataPort = PlatformDataAdapter{}
