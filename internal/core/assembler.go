package core

import (
	"context"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"forgeconf/internal/types"
)

const (
	DefaultRepositoryOwner = "SpacingBat3"
	DefaultRepositoryName  = "WebCord"
	DefaultHookCommand     = "forgeconf"

	desktopGenericName = "Internet Messenger"
	flatpakRuntime     = "21.08"
)

const (
	MakerZip      = "@electron-forge/maker-zip"
	MakerDMG      = "@electron-forge/maker-dmg"
	MakerAppImage = "@reforged/maker-appimage"
	MakerDeb      = "@electron-forge/maker-deb"
	MakerRPM      = "@electron-forge/maker-rpm"
	MakerFlatpak  = "@electron-forge/maker-flatpak"

	PublisherGitHub = "@electron-forge/publisher-github"
)

var desktopCategories = []string{"Network", "InstantMessaging"}

// packagerIgnore lists the regular expressions of project paths left out of
// the packaged app.
var packagerIgnore = []string{
	// Directories:
	`sources/app/.build`,
	`out/`,
	`schemas/`,
	// Files:
	`\.eslintrc\.json$`,
	`tsconfig\.json$`,
	`sources/app/forge/config\..*`,
	`sources/code/.*`,
	`sources/assets/icons/app\.icns$`,
	// Hidden files:
	`^\.[a-z]+$`,
	`.*/\.[a-z]+$`,
}

type ConfigAssembler struct {
	// ProjectDir is the absolute project root, used for flatpak file mappings.
	ProjectDir string
	// HookCommand is the command the packaging framework runs for hooks.
	HookCommand    string
	RepositoryName string
}

func NewConfigAssembler(projectDir string, hookCommand string) ConfigAssembler {
	if strings.TrimSpace(hookCommand) == "" {
		hookCommand = DefaultHookCommand
	}
	return ConfigAssembler{
		ProjectDir:     projectDir,
		HookCommand:    hookCommand,
		RepositoryName: DefaultRepositoryName,
	}
}

func (a ConfigAssembler) Assemble(ctx context.Context, env types.Environment, meta types.PackageMetadata) (types.ForgeConfig, error) {
	if strings.TrimSpace(meta.Name) == "" {
		return types.ForgeConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	buildID := BuildID(env)

	makers := a.makers(buildID)
	if env.Flatpak {
		assert.NotEmpty(ctx, env.FlatpakID, "flatpak id must be set")
		makers = append(makers, a.flatpakMaker(env, meta))
		log.Ctx(ctx).Debug().Str("id", env.FlatpakID).Msg("flatpak maker enabled")
	}

	config := types.ForgeConfig{
		BuildIdentifier: buildID,
		PackagerConfig:  a.packagerConfig(env, meta),
		Makers:          makers,
		Publishers:      []types.PublisherDescriptor{a.githubPublisher(buildID, meta)},
		Hooks: map[string]string{
			types.HookPackageAfterCopy:    a.HookCommand + " hook after-copy",
			types.HookPackageAfterExtract: a.HookCommand + " hook after-extract",
		},
	}
	log.Ctx(ctx).Debug().
		Str("build", string(buildID)).
		Int("makers", len(config.Makers)).
		Msg("packaging config assembled")
	return config, nil
}

func (a ConfigAssembler) packagerConfig(env types.Environment, meta types.PackageMetadata) types.PackagerConfig {
	return types.PackagerConfig{
		// The package name rather than the product name.
		ExecutableName: meta.Name,
		Asar:           env.Asar,
		Icon:           IconBase,
		ExtraResource:  []string{"LICENSE"},
		Quiet:          true,
		Ignore:         append([]string(nil), packagerIgnore...),
		ExtendInfo: map[string]string{
			"NSMicrophoneUsageDescription": "This lets this app to internally manage the microphone access.",
			"NSCameraUsageDescription":     "This lets this app to internally manage the camera access.",
		},
	}
}

func (a ConfigAssembler) makers(buildID types.BuildType) []types.MakerDescriptor {
	return []types.MakerDescriptor{
		{
			Name:      MakerZip,
			Platforms: []types.Platform{types.PlatformWin32},
		},
		{
			Name: MakerDMG,
			Config: map[string]any{
				"icon":  IconBase + ".icns",
				"debug": buildID == types.BuildTypeDevel,
			},
		},
		{
			Name: MakerAppImage,
			Config: map[string]any{
				"options": linuxMakerOptions(nil),
			},
		},
		{
			Name: MakerDeb,
			Config: map[string]any{
				"options": linuxMakerOptions(map[string]any{"section": "web"}),
			},
		},
		{
			Name: MakerRPM,
			Config: map[string]any{
				"options": linuxMakerOptions(nil),
			},
		},
	}
}

func (a ConfigAssembler) flatpakMaker(env types.Environment, meta types.PackageMetadata) types.MakerDescriptor {
	options := linuxMakerOptions(map[string]any{
		"id":             env.FlatpakID,
		"runtimeVersion": flatpakRuntime,
		"baseVersion":    flatpakRuntime,
		"files": [][]string{
			{
				filepath.Join(a.ProjectDir, "docs"),
				"/share/docs/" + meta.Name,
			},
			{
				filepath.Join(a.ProjectDir, "LICENSE"),
				"/share/licenses/" + meta.Name + "/LICENSE.txt",
			},
		},
	})
	return types.MakerDescriptor{
		Name:   MakerFlatpak,
		Config: map[string]any{"options": options},
	}
}

func (a ConfigAssembler) githubPublisher(buildID types.BuildType, meta types.PackageMetadata) types.PublisherDescriptor {
	owner := DefaultRepositoryOwner
	if meta.Author != nil {
		owner = meta.Author.Name
	}
	return types.PublisherDescriptor{
		Name: PublisherGitHub,
		Config: map[string]any{
			"prerelease": buildID == types.BuildTypeDevel,
			"repository": map[string]any{
				"owner": owner,
				"name":  a.RepositoryName,
			},
			"draft": false,
		},
	}
}

func linuxMakerOptions(extra map[string]any) map[string]any {
	options := map[string]any{
		"icon":        IconBase + ".png",
		"genericName": desktopGenericName,
		"categories":  append([]string(nil), desktopCategories...),
	}
	for key, value := range extra {
		options[key] = value
	}
	return options
}
