package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"forgeconf/internal/adapters"
	"forgeconf/internal/types"
)

const testPackageJSON = `{
  "name": "webcord",
  "productName": "WebCord",
  "version": "4.10.3",
  "author": "SpacingBat3 <git@spacingbat3.anonaddy.com> (https://github.com/SpacingBat3)"
}`

func writeProject(t *testing.T, packageJSON string) string {
	t.Helper()
	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, "package.json"), []byte(packageJSON), 0644))
	return project
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigCommandRendersYAML(t *testing.T) {
	t.Setenv("WEBCORD_BUILD", "release")
	t.Setenv("WEBCORD_FLATPAK", "TRUE")
	project := writeProject(t, testPackageJSON)

	out, err := runRoot(t, "config", "--project-dir", project, "--format", "yaml", "--hook-command", "/usr/bin/forgeconf")
	require.NoError(t, err)

	var rendered types.ForgeConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &rendered))
	assert.Equal(t, types.BuildTypeRelease, rendered.BuildIdentifier)
	assert.Equal(t, "webcord", rendered.PackagerConfig.ExecutableName)

	names := make([]string, 0, len(rendered.Makers))
	for _, maker := range rendered.Makers {
		names = append(names, maker.Name)
	}
	want := []string{
		"@electron-forge/maker-zip",
		"@electron-forge/maker-dmg",
		"@reforged/maker-appimage",
		"@electron-forge/maker-deb",
		"@electron-forge/maker-rpm",
		"@electron-forge/maker-flatpak",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("maker order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "/usr/bin/forgeconf hook after-copy", rendered.Hooks[types.HookPackageAfterCopy])
}

func TestConfigCommandMissingPackageJSON(t *testing.T) {
	_, err := runRoot(t, "config", "--project-dir", t.TempDir(), "--format", "json")
	require.Error(t, err)
	assert.Equal(t, 5, exitCodeForError(err))
}

func TestValidateCommand(t *testing.T) {
	project := writeProject(t, testPackageJSON)
	_, err := runRoot(t, "validate", "--project-dir", project)
	require.NoError(t, err)
}

func TestValidateCommandRejectsBadVersion(t *testing.T) {
	project := writeProject(t, `{"name": "webcord", "version": "not a version", "author": "SpacingBat3"}`)
	_, err := runRoot(t, "validate", "--project-dir", project)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Equal(t, 2, exitCodeForError(err))
}

func TestAfterCopyCommand(t *testing.T) {
	t.Setenv("WEBCORD_BUILD", "stable")
	t.Setenv("WEBCORD_WIN32_APPID", "SpacingBat3.WebCord")
	t.Setenv("WEBCORD_UPDATE_NOTIFICATIONS", "FALSE")
	appDir := t.TempDir()
	iconDir := filepath.Join(appDir, "sources", "assets", "icons")
	require.NoError(t, os.MkdirAll(iconDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(iconDir, "app.png"), []byte("png"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(iconDir, "app.ico"), []byte("ico"), 0644))

	_, err := runRoot(t, "hook", "after-copy",
		"--project-dir", t.TempDir(),
		"--path", appDir,
		"--electron-version", "22.0.0",
		"--platform", "win32",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(appDir, adapters.BuildInfoFilename))
	require.NoError(t, err)
	var info types.BuildInfo
	require.NoError(t, json.Unmarshal(data, &info))
	want := types.BuildInfo{
		AppUserModelID: "SpacingBat3.WebCord",
		Type:           types.BuildTypeRelease,
		Features:       types.BuildFeatures{UpdateNotifications: true},
	}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Fatalf("build info mismatch (-want +got):\n%s", diff)
	}

	assert.NoFileExists(t, filepath.Join(iconDir, "app.png"))
	assert.FileExists(t, filepath.Join(iconDir, "app.ico"))
}

func TestAfterCopyCommandRequiresPath(t *testing.T) {
	_, err := runRoot(t, "hook", "after-copy", "--platform", "linux")
	require.Error(t, err)
}

func TestAfterExtractCommand(t *testing.T) {
	t.Setenv("WEBCORD_BUILD", "devel")
	t.Setenv("WEBCORD_ASAR", "false")
	extractDir := t.TempDir()
	wire := append([]byte(adapters.FuseSentinel), types.FuseVersionV1, 8)
	wire = append(wire, []byte("01010101")...)
	binary := append([]byte("\x7fELF"), wire...)
	executable := filepath.Join(extractDir, "electron")
	require.NoError(t, os.WriteFile(executable, binary, 0755))

	_, err := runRoot(t, "hook", "after-extract", "--path", extractDir, "--electron-version", "22.0.0", "--platform", "linux")
	require.NoError(t, err)

	data, err := os.ReadFile(executable)
	require.NoError(t, err)
	fuses := string(data[len(data)-8:])
	// RunAsNode, NodeOptions and CliInspect enabled for devel; asar-only off.
	assert.Equal(t, "11110001", fuses)
}

func TestAfterExtractCommandNotElectron(t *testing.T) {
	extractDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(extractDir, "electron"), []byte("plain"), 0755))

	_, err := runRoot(t, "hook", "after-extract", "--path", extractDir, "--platform", "linux")
	require.Error(t, err)
	assert.Equal(t, 3, exitCodeForError(err))
}
