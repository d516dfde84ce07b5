// Package naming derives the name forms shared by every generated artifact.
// All generators must go through these functions so that model classes,
// route paths, and variable names agree across the files of one project.
package naming

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of name and leaves the remainder
// unchanged. It is deliberately not a title-caser: "order item" becomes
// "Order item", matching how entity class names are derived.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// Pluralize applies the simplified English pluralization used across all
// generated artifacts: a trailing "y" becomes "ies", a trailing "s" is kept
// as-is, and anything else gains an "s". Irregular nouns ("person",
// "child") are not special-cased; this is a known limitation.
func Pluralize(name string) string {
	switch {
	case name == "":
		return ""
	case name[len(name)-1] == 'y':
		return name[:len(name)-1] + "ies"
	case name[len(name)-1] == 's':
		return name
	default:
		return name + "s"
	}
}
