package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName folds a user-typed name into the form used for
// similarity scoring: lowercased, trimmed, all whitespace removed.
// Two names that differ only in casing or spacing normalize equal.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// CollapseWhitespace trims a string and squashes interior runs of
// whitespace into single spaces. Used for display, not for scoring.
func CollapseWhitespace(s string) string {
	s = strings.Trim(s, " \n\t")
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// SnakeCase turns a free-form header like "Crafting Recipe" into
// "crafting_recipe".
func SnakeCase(s string) string {
	s = strings.ToLower(CollapseWhitespace(s))
	return strings.ReplaceAll(s, " ", "_")
}
