package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a display name: lowercase, runs of
// non-alphanumerics collapse to single hyphens, no leading or trailing
// hyphen. "Yu-Gi-Oh!" becomes "yu-gi-oh".
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
