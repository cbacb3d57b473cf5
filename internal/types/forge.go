package types

// ForgeConfig is the declarative configuration handed to the packaging
// framework.
type ForgeConfig struct {
	BuildIdentifier BuildType             `json:"buildIdentifier" yaml:"buildIdentifier"`
	PackagerConfig  PackagerConfig        `json:"packagerConfig" yaml:"packagerConfig"`
	Makers          []MakerDescriptor     `json:"makers" yaml:"makers"`
	Publishers      []PublisherDescriptor `json:"publishers" yaml:"publishers"`
	Hooks           map[string]string     `json:"hooks" yaml:"hooks"`
}

type PackagerConfig struct {
	ExecutableName string            `json:"executableName" yaml:"executableName"`
	Asar           bool              `json:"asar" yaml:"asar"`
	Icon           string            `json:"icon" yaml:"icon"`
	ExtraResource  []string          `json:"extraResource" yaml:"extraResource"`
	Quiet          bool              `json:"quiet" yaml:"quiet"`
	Ignore         []string          `json:"ignore" yaml:"ignore"`
	ExtendInfo     map[string]string `json:"extendInfo" yaml:"extendInfo"`
}

// MakerDescriptor names a maker plugin, optionally restricted to some
// platforms. Config is opaque to this tool and passed through as is.
type MakerDescriptor struct {
	Name      string         `json:"name" yaml:"name"`
	Platforms []Platform     `json:"platforms,omitempty" yaml:"platforms,omitempty"`
	Config    map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

type PublisherDescriptor struct {
	Name   string         `json:"name" yaml:"name"`
	Config map[string]any `json:"config" yaml:"config"`
}

const (
	HookPackageAfterCopy    = "packageAfterCopy"
	HookPackageAfterExtract = "packageAfterExtract"
)
