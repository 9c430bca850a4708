package statpolicy

import "strings"

//go:generate go-enum --values --names --noprefix --flag --nocase

// Policy decides what happens to an entry whose size cannot be read:
// skip omits the entry and logs a warning, fail aborts the listing.
/* ENUM(
skip, fail
) */
type Policy string

// Parse is ParsePolicy with surrounding space ignored and a blank name meaning Skip.
func Parse(name string) (Policy, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Skip, nil
	}
	return ParsePolicy(name)
}
