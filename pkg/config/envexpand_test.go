package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_TOKEN", "secret-value")
	t.Setenv("TEST_HOST", "db.example.com")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "token: {{.TEST_TOKEN}}",
			expected: "token: secret-value",
		},
		{
			name:     "multiple variables",
			input:    "dsn: {{.TEST_HOST}}:{{.TEST_TOKEN}}",
			expected: "dsn: db.example.com:secret-value",
		},
		{
			name:     "missing variable expands to empty",
			input:    "value: {{.DOES_NOT_EXIST_XYZ}}",
			expected: "value: ",
		},
		{
			name:     "literal dollar preserved",
			input:    `pattern: "^secret.*$"`,
			expected: `pattern: "^secret.*$"`,
		},
		{
			name:     "no template syntax passes through",
			input:    "plain: yaml",
			expected: "plain: yaml",
		},
		{
			name:     "malformed template returns original",
			input:    "broken: {{.UNCLOSED",
			expected: "broken: {{.UNCLOSED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.expected, string(result))
		})
	}
}
