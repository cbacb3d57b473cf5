package core

import (
	"regexp"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forgeconf/internal/types"
)

func testMetadata() types.PackageMetadata {
	return types.PackageMetadata{
		Name:    "webcord",
		Version: "4.10.0",
		Author:  &types.Person{Name: "SpacingBat3"},
	}
}

func makerNames(makers []types.MakerDescriptor) []string {
	names := make([]string, 0, len(makers))
	for _, maker := range makers {
		names = append(names, maker.Name)
	}
	return names
}

func TestAssembleDefaultMakers(t *testing.T) {
	assembler := NewConfigAssembler("/project", "")
	config, err := assembler.Assemble(t.Context(), ReadEnvironment(MapLookup(nil)), testMetadata())
	require.NoError(t, err)

	want := []string{MakerZip, MakerDMG, MakerAppImage, MakerDeb, MakerRPM}
	if diff := cmp.Diff(want, makerNames(config.Makers)); diff != "" {
		t.Fatalf("unexpected makers (-want +got):\n%s", diff)
	}
	assert.Equal(t, []types.Platform{types.PlatformWin32}, config.Makers[0].Platforms)
	assert.Equal(t, true, config.Makers[1].Config["debug"])
	assert.Equal(t, types.BuildTypeDevel, config.BuildIdentifier)
}

func TestAssembleFlatpakOptIn(t *testing.T) {
	tests := []struct {
		value   string
		present bool
	}{
		{value: "true", present: true},
		{value: "TRUE", present: true},
		{value: "True", present: true},
		{value: "false", present: false},
		{value: "1", present: false},
		{value: "", present: false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			env := ReadEnvironment(MapLookup(map[string]string{EnvFlatpak: tt.value}))
			config, err := NewConfigAssembler("/project", "").Assemble(t.Context(), env, testMetadata())
			require.NoError(t, err)
			names := makerNames(config.Makers)
			if diff := cmp.Diff(tt.present, names[len(names)-1] == MakerFlatpak); diff != "" {
				t.Fatalf("unexpected flatpak presence (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAssembleFlatpakOptions(t *testing.T) {
	env := ReadEnvironment(MapLookup(map[string]string{
		EnvFlatpak:   "true",
		EnvFlatpakID: "Com.Example.Chat",
	}))
	config, err := NewConfigAssembler("/project", "").Assemble(t.Context(), env, testMetadata())
	require.NoError(t, err)

	flatpak := config.Makers[len(config.Makers)-1]
	options, ok := flatpak.Config["options"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "com.example.chat", options["id"])
	assert.Equal(t, "21.08", options["runtimeVersion"])
	assert.Equal(t, "21.08", options["baseVersion"])
	assert.Equal(t, "sources/assets/icons/app.png", options["icon"])
	want := [][]string{
		{"/project/docs", "/share/docs/webcord"},
		{"/project/LICENSE", "/share/licenses/webcord/LICENSE.txt"},
	}
	if diff := cmp.Diff(want, options["files"]); diff != "" {
		t.Fatalf("unexpected flatpak files (-want +got):\n%s", diff)
	}
}

func TestAssembleReleaseBuild(t *testing.T) {
	env := ReadEnvironment(MapLookup(map[string]string{EnvBuild: "release", EnvAsar: "false"}))
	config, err := NewConfigAssembler("/project", "/usr/bin/forgeconf").Assemble(t.Context(), env, testMetadata())
	require.NoError(t, err)

	assert.Equal(t, types.BuildTypeRelease, config.BuildIdentifier)
	assert.False(t, config.PackagerConfig.Asar)
	assert.Equal(t, false, config.Makers[1].Config["debug"])
	assert.Equal(t, false, config.Publishers[0].Config["prerelease"])
	assert.Equal(t, "/usr/bin/forgeconf hook after-copy", config.Hooks[types.HookPackageAfterCopy])
	assert.Equal(t, "/usr/bin/forgeconf hook after-extract", config.Hooks[types.HookPackageAfterExtract])
}

func TestAssemblePackagerConfig(t *testing.T) {
	config, err := NewConfigAssembler("/project", "").Assemble(t.Context(), ReadEnvironment(MapLookup(nil)), testMetadata())
	require.NoError(t, err)

	packager := config.PackagerConfig
	assert.Equal(t, "webcord", packager.ExecutableName)
	assert.True(t, packager.Asar)
	assert.True(t, packager.Quiet)
	assert.Equal(t, IconBase, packager.Icon)
	assert.Equal(t, []string{"LICENSE"}, packager.ExtraResource)
	assert.Contains(t, packager.ExtendInfo, "NSMicrophoneUsageDescription")
	assert.Contains(t, packager.ExtendInfo, "NSCameraUsageDescription")
	for _, pattern := range packager.Ignore {
		_, err := regexp.Compile(pattern)
		assert.NoError(t, err, "pattern %q", pattern)
	}
}

func TestAssemblePublisherOwner(t *testing.T) {
	tests := []struct {
		name     string
		author   *types.Person
		expected string
	}{
		{name: "author name", author: &types.Person{Name: "Someone"}, expected: "Someone"},
		{name: "no author", author: nil, expected: DefaultRepositoryOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := testMetadata()
			meta.Author = tt.author
			config, err := NewConfigAssembler("/project", "").Assemble(t.Context(), ReadEnvironment(MapLookup(nil)), meta)
			require.NoError(t, err)
			require.Len(t, config.Publishers, 1)
			publisher := config.Publishers[0]
			assert.Equal(t, PublisherGitHub, publisher.Name)
			want := map[string]any{"owner": tt.expected, "name": DefaultRepositoryName}
			if diff := cmp.Diff(want, publisher.Config["repository"]); diff != "" {
				t.Fatalf("unexpected repository (-want +got):\n%s", diff)
			}
			assert.Equal(t, false, publisher.Config["draft"])
		})
	}
}

func TestAssembleRequiresPackageName(t *testing.T) {
	_, err := NewConfigAssembler("/project", "").Assemble(t.Context(), types.Environment{}, types.PackageMetadata{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
