package core

import (
	"forgeconf/internal/shared"
	"forgeconf/internal/types"
)

// DefaultFlatpakID is used when WEBCORD_FLATPAK_ID is unset.
const DefaultFlatpakID = "io.github.spacingbat3.webcord"

// Environment keys, relative to the WEBCORD_ prefix.
const (
	EnvBuild               = "build"
	EnvWin32AppID          = "win32_appid"
	EnvFlatpakID           = "flatpak_id"
	EnvAsar                = "asar"
	EnvUpdateNotifications = "update_notifications"
	EnvFlatpak             = "flatpak"
)

// LookupFunc returns the value of a prefixed environment key and whether it
// was set at all.
type LookupFunc func(key string) (string, bool)

// ReadEnvironment snapshots every variable the configuration depends on.
// Nothing else should consult the environment after this call.
func ReadEnvironment(lookup LookupFunc) types.Environment {
	build, _ := lookup(EnvBuild)
	appID, _ := lookup(EnvWin32AppID)

	flatpakID := DefaultFlatpakID
	if value, ok := lookup(EnvFlatpakID); ok && value != "" {
		flatpakID = shared.NormalizeEnvValue(value)
	}

	asar, _ := lookup(EnvAsar)
	notifications, _ := lookup(EnvUpdateNotifications)
	flatpak, _ := lookup(EnvFlatpak)

	return types.Environment{
		Build:          build,
		AppUserModelID: appID,
		FlatpakID:      flatpakID,
		Asar:           shared.NormalizeEnvValue(asar) != "false",
		// Case-sensitive on purpose: only the literal "false" disables it.
		UpdateNotifications: notifications != "false",
		Flatpak:             shared.NormalizeEnvValue(flatpak) == "true",
	}
}

// MapLookup adapts a plain map to a LookupFunc.
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}
