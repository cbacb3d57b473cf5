package types

// FuseOption is the index of a fuse in the Electron V1 fuse wire.
type FuseOption int

const (
	FuseRunAsNode FuseOption = iota
	FuseEnableCookieEncryption
	FuseEnableNodeOptionsEnvironmentVariable
	FuseEnableNodeCliInspectArguments
	FuseEnableEmbeddedAsarIntegrityValidation
	FuseOnlyLoadAppFromAsar
	FuseLoadBrowserProcessSpecificV8Snapshot
	FuseGrantFileProtocolExtraPrivileges
)

var fuseOptionNames = map[FuseOption]string{
	FuseRunAsNode:                             "RunAsNode",
	FuseEnableCookieEncryption:                "EnableCookieEncryption",
	FuseEnableNodeOptionsEnvironmentVariable:  "EnableNodeOptionsEnvironmentVariable",
	FuseEnableNodeCliInspectArguments:         "EnableNodeCliInspectArguments",
	FuseEnableEmbeddedAsarIntegrityValidation: "EnableEmbeddedAsarIntegrityValidation",
	FuseOnlyLoadAppFromAsar:                   "OnlyLoadAppFromAsar",
	FuseLoadBrowserProcessSpecificV8Snapshot:  "LoadBrowserProcessSpecificV8Snapshot",
	FuseGrantFileProtocolExtraPrivileges:      "GrantFileProtocolExtraPrivileges",
}

func (o FuseOption) String() string {
	if name, ok := fuseOptionNames[o]; ok {
		return name
	}
	return "Unknown"
}

// FuseVersionV1 is the only fuse schema version this tool writes.
const FuseVersionV1 byte = 1

// FuseConfig is the requested state of a set of fuses for one schema version.
type FuseConfig struct {
	Version byte
	Fuses   map[FuseOption]bool
}
