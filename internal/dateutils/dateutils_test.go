package dateutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatementDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"15/01/2025", "2025-01-15", false},
		{"2025-01-15", "2025-01-15", false},
		{"15.01.2025", "2025-01-15", false},
		{"5/1/2025", "2025-01-05", false},
		{"not a date", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		parsed, err := ParseStatementDate(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, parsed.Format(LayoutISO))
	}
}

func TestNormalizeStatementDate(t *testing.T) {
	assert.Equal(t, "2025-01-15", NormalizeStatementDate("15/01/2025"))

	// Unparseable dates pass through unchanged so the row still imports.
	assert.Equal(t, "sometime", NormalizeStatementDate("sometime"))
}
