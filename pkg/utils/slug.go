package utils

import (
	"strings"
	"unicode"
)

// Slugify converts a string to a file-name safe slug.
// Runs of anything other than letters and digits become a single hyphen.
func Slugify(s string) string {
	var result strings.Builder
	pendingDash := false
	for _, char := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(char) || unicode.IsDigit(char) {
			if pendingDash && result.Len() > 0 {
				result.WriteByte('-')
			}
			pendingDash = false
			result.WriteRune(char)
			continue
		}
		pendingDash = true
	}
	return result.String()
}
