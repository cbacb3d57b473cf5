package types

// PackageMetadata holds the subset of package.json the configuration needs.
type PackageMetadata struct {
	Name        string
	ProductName string
	Version     string
	Author      *Person
}

// Person is a package.json person field (author, contributors).
type Person struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}
