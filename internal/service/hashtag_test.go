package service

import (
	"testing"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "helloworld",
			expected: "helloworld",
		},
		{
			name:     "hash prefix and punctuation",
			input:    "#Hello-World!",
			expected: "helloworld",
		},
		{
			name:     "spaces",
			input:    "hello world",
			expected: "helloworld",
		},
		{
			name:     "upper case",
			input:    "HELLOWORLD",
			expected: "helloworld",
		},
		{
			name:     "digits kept",
			input:    "Go1.23",
			expected: "go123",
		},
		{
			name:     "only punctuation collapses to empty",
			input:    "#!?",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTag(tt.input); got != tt.expected {
				t.Errorf("NormalizeTag(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeTagIdempotent(t *testing.T) {
	for _, input := range []string{"#Hello-World!", "hello world", "HELLOWORLD"} {
		once := NormalizeTag(input)
		if once != "helloworld" {
			t.Errorf("NormalizeTag(%q) = %q, want %q", input, once, "helloworld")
		}
		if twice := NormalizeTag(once); twice != once {
			t.Errorf("NormalizeTag is not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}
