package utils

import (
	"strings"
)

// NormalizeColor converts various color formats to a bare 6-char lower-case hex string
func NormalizeColor(input string) string {
	if input == "" {
		return ""
	}

	// Remove # prefix if present
	input = strings.TrimPrefix(strings.TrimSpace(input), "#")

	// Convert to lowercase
	input = strings.ToLower(input)

	if !isHex(input) {
		return ""
	}

	// If it's 3 characters, expand to 6 (e.g., "f00" -> "ff0000")
	if len(input) == 3 {
		return string([]byte{
			input[0], input[0],
			input[1], input[1],
			input[2], input[2],
		})
	}

	// If it's already 6 characters, return as-is
	if len(input) == 6 {
		return input
	}

	// 8 characters carry an alpha channel the schematic does not use
	if len(input) == 8 {
		return input[:6]
	}

	// Invalid format, return empty
	return ""
}

// DisplayColor returns input as "#rrggbb" when it parses as a hex color.
// Anything else (named colors, rgb() expressions) is passed through unchanged.
func DisplayColor(input string) string {
	if normalized := NormalizeColor(input); normalized != "" {
		return "#" + normalized
	}
	return strings.TrimSpace(input)
}

func isHex(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
