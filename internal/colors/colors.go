// Package colors parses user-entered label colors and supplies the fixed
// name-keyword fallback palette used by the task statistics view.
package colors

import "strings"

// Fallback palette. Neutral doubles as the "Other" bucket color and the
// full-circle placeholder when a project has no tasks.
const (
	Green   = "#2ecc71"
	Yellow  = "#f1c40f"
	Blue    = "#3498db"
	Red     = "#e74c3c"
	Gray    = "#7f8c8d"
	Neutral = "#95a5a6"
)

// Checked in order: "incomplete" must win over its "complete" substring.
var nameFallbacks = []struct {
	keyword string
	color   string
}{
	{"incomplete", Red},
	{"complete", Green},
	{"todo", Yellow},
	{"to-do", Yellow},
	{"doing", Blue},
	{"wait", Gray},
}

// Parse extracts a 6-digit hex color from a raw label-color string, tolerating
// stray non-hex characters ("#1a2b3c;", "0x1A2B3C", "1a-2b-3c"). It reports
// false when fewer than 6 hex digits are present.
func Parse(raw string) (string, bool) {
	var hex strings.Builder
	for _, r := range raw {
		if isHexDigit(r) {
			hex.WriteRune(r)
			if hex.Len() == 6 {
				return "#" + strings.ToLower(hex.String()), true
			}
		}
	}
	return "", false
}

// ForLabel resolves the render color for a named label: the explicit color
// when it parses, otherwise the name-keyword fallback.
func ForLabel(name, rawColor string) string {
	if c, ok := Parse(rawColor); ok {
		return c
	}
	return fallbackByName(name)
}

func fallbackByName(name string) string {
	lower := strings.ToLower(name)
	for _, f := range nameFallbacks {
		if strings.Contains(lower, f.keyword) {
			return f.color
		}
	}
	return Neutral
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
