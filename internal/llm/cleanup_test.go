package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already clean text is unchanged",
			input:    "Jane Doe\nSoftware Engineer\n555-1234 | jane@x.com",
			expected: "Jane Doe\nSoftware Engineer\n555-1234 | jane@x.com",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "\n  Jane Doe\nSoftware Engineer  \n",
			expected: "Jane Doe\nSoftware Engineer",
		},
		{
			name:     "here is preamble is stripped",
			input:    "Here is your professional resume:\nJane Doe\nEngineer",
			expected: "Jane Doe\nEngineer",
		},
		{
			name:     "here's preamble is stripped",
			input:    "Here's the resume:\nJane Doe",
			expected: "Jane Doe",
		},
		{
			name:     "formatted resume preamble is stripped",
			input:    "Below is the formatted resume you requested:\nJane Doe",
			expected: "Jane Doe",
		},
		{
			name:     "i hope this helps sign-off is stripped",
			input:    "Jane Doe\nEngineer\nI hope this helps with your job search!",
			expected: "Jane Doe\nEngineer",
		},
		{
			name:     "based on preamble is stripped",
			input:    "Sure, based on the details you provided:\nJane Doe",
			expected: "Jane Doe",
		},
		{
			name:     "preamble and sign-off are both stripped",
			input:    "Here is your resume:\nJane Doe\nEngineer\nI hope this helps!",
			expected: "Jane Doe\nEngineer",
		},
		{
			name:     "case-insensitive matching",
			input:    "HERE IS THE RESUME:\nJane Doe",
			expected: "Jane Doe",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"Jane Doe\nSoftware Engineer\n555-1234 | jane@x.com\nPROFILE\nExperienced engineer.",
		"Here is your resume:\nJane Doe\nI hope this helps!",
		"Below is the formatted resume:\nJane Doe",
		"",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		assert.Equal(t, once, twice, "cleanup should be idempotent for %q", input)
	}
}
