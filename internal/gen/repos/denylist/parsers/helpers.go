package parsers

import (
	"strings"
	"unicode"
)

// splitMemberRef splits a "Class::Member" reference at the first "::".
// Returns isPair=false when the reference names only a class.
func splitMemberRef(ref string) (class, member string, isPair bool) {
	if idx := strings.Index(ref, "::"); idx >= 0 {
		return ref[:idx], ref[idx+2:], true
	}
	return ref, "", false
}

// isValidName checks that a class or member token looks like a C/C++
// identifier: letters, digits, and underscores, not starting with a digit.
// Front-end spellings are unqualified, so no further structure is allowed.
func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if unicode.IsDigit(r) && i > 0 {
			continue
		}
		return false
	}
	return true
}
