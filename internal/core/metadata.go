package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"
	"github.com/rs/zerolog/log"

	"forgeconf/internal/types"
)

// ValidateMetadata checks the package.json fields the makers depend on. The
// version ends up in deb and rpm control data, so it must parse as a Debian
// version.
func ValidateMetadata(ctx context.Context, meta types.PackageMetadata) error {
	if strings.TrimSpace(meta.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	if strings.TrimSpace(meta.Version) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package version is required")
	}
	if _, err := debversion.NewVersion(meta.Version); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package version %q is not a valid debian version", meta.Version)).
			WithCause(err)
	}
	if meta.Author != nil && strings.TrimSpace(meta.Author.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package author has no name")
	}
	log.Ctx(ctx).Debug().Str("package", meta.Name).Str("version", meta.Version).Msg("package metadata validated")
	return nil
}
