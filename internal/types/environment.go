package types

// Environment is a read-only snapshot of the WEBCORD_* variables. It is
// populated once per invocation and passed by value.
type Environment struct {
	// Build is the raw build type as given, before normalization.
	Build string
	// AppUserModelID is the Windows AppUserModelId, empty when unset.
	AppUserModelID string
	// FlatpakID is the lowercased flatpak application id.
	FlatpakID string
	// Asar reports whether the app is packed into an asar archive.
	Asar bool
	// UpdateNotifications toggles the update notification feature.
	UpdateNotifications bool
	// Flatpak opts into the flatpak maker.
	Flatpak bool
}
