// Package shared provides common utility functions used across multiple
// packages in the forgeconf codebase.
package shared

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// NormalizeEnvValue lowercases an environment value for case-insensitive
// comparisons. Whitespace is kept so that " true" does not match "true".
func NormalizeEnvValue(value string) string {
	return strings.ToLower(value)
}

// FileExists reports whether path exists. Errors other than "not exist"
// are returned to the caller.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
