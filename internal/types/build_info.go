package types

// BuildInfo is the content of the buildInfo.json manifest shipped inside the
// packaged application. Field order matches the serialized key order.
type BuildInfo struct {
	AppUserModelID string        `json:"AppUserModelId,omitempty" yaml:"AppUserModelId,omitempty"`
	Type           BuildType     `json:"type" yaml:"type"`
	Commit         string        `json:"commit,omitempty" yaml:"commit,omitempty"`
	Features       BuildFeatures `json:"features" yaml:"features"`
}

type BuildFeatures struct {
	UpdateNotifications bool `json:"updateNotifications" yaml:"updateNotifications"`
}
