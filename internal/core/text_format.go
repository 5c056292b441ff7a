package core

import (
	"regexp"
	"strings"
)

var (
	markupPattern     = regexp.MustCompile(`(?s)<.*?>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeText strips <...> markup, collapses whitespace runs to a single
// space and trims the result.
func NormalizeText(raw string) string {
	value := markupPattern.ReplaceAllString(raw, "")
	value = whitespacePattern.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// FormatDescription turns a package description into a synopsis line and
// a folded long description, split at the first ". ". Text without such a
// split point is returned as a single synopsis.
func FormatDescription(raw string) string {
	value := NormalizeText(raw)
	parts := strings.SplitN(value, ". ", 2)
	if len(parts) == 1 || parts[1] == "" {
		return value
	}
	return parts[0] + ".\n " + strings.TrimSpace(parts[1])
}

// PortName maps a ROS package name onto the vcpkg port naming rules:
// lower case, hyphen separated.
func PortName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(normalized, "_", "-")
}
