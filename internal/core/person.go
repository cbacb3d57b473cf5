package core

import (
	"strings"

	"forgeconf/internal/types"
)

// ParsePerson parses the npm short form "Name <email> (url)". Email and URL
// are optional and may appear in either order.
func ParsePerson(value string) types.Person {
	person := types.Person{}
	rest := strings.TrimSpace(value)

	if start := strings.Index(rest, "<"); start != -1 {
		if end := strings.Index(rest[start:], ">"); end != -1 {
			person.Email = strings.TrimSpace(rest[start+1 : start+end])
			rest = rest[:start] + rest[start+end+1:]
		}
	}
	if start := strings.Index(rest, "("); start != -1 {
		if end := strings.Index(rest[start:], ")"); end != -1 {
			person.URL = strings.TrimSpace(rest[start+1 : start+end])
			rest = rest[:start] + rest[start+end+1:]
		}
	}
	person.Name = strings.TrimSpace(rest)
	return person
}
