package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumeric(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain integer", "12", "12"},
		{"plain decimal", "12.5", "12.5"},
		{"letters stripped", "12a.5b", "12.5"},
		{"extra points collapsed", "12.3.4.5", "12.345"},
		{"adjacent points collapsed", "1..2", "1.2"},
		{"leading point kept", ".5", ".5"},
		{"trailing point kept", "5.", "5."},
		{"sign stripped", "-5", "5"},
		{"comma stripped", "12,5", "125"},
		{"whitespace stripped", " 1 2 ", "12"},
		{"exponent stripped", "1e3", "13"},
		{"unicode stripped", "12·5µm", "125"},
		{"empty input", "", ""},
		{"only junk", "abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Numeric(tt.in))
		})
	}
}

func TestNumericIdempotent(t *testing.T) {
	inputs := []string{
		"", "abc", "10.5", "12.3.4.5", "..", "1.2.3", "€12,50", "5.", ".5",
	}
	for _, in := range inputs {
		once := Numeric(in)
		assert.Equal(t, once, Numeric(once), "input %q", in)
	}
}
