package utils

import "testing"

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "6-char hex with hash",
			input:    "#ff0000",
			expected: "ff0000",
		},
		{
			name:     "6-char hex without hash",
			input:    "00ff00",
			expected: "00ff00",
		},
		{
			name:     "3-char hex",
			input:    "f00",
			expected: "ff0000",
		},
		{
			name:     "3-char hex with hash",
			input:    "#0f0",
			expected: "00ff00",
		},
		{
			name:     "uppercase",
			input:    "#FF00AA",
			expected: "ff00aa",
		},
		{
			name:     "8-char hex drops alpha",
			input:    "#cd840eff",
			expected: "cd840e",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "invalid length",
			input:    "12345",
			expected: "",
		},
		{
			name:     "not hex",
			input:    "#zzzzzz",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeColor(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeColor(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDisplayColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hex without hash",
			input:    "FFEB3B",
			expected: "#ffeb3b",
		},
		{
			name:     "short hex",
			input:    "#abc",
			expected: "#aabbcc",
		},
		{
			name:     "named color passes through",
			input:    " red ",
			expected: "red",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DisplayColor(tt.input)
			if result != tt.expected {
				t.Errorf("DisplayColor(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
