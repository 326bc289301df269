package merchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{"wide gap cuts location suffix", "WOOLWORTHS 1234   MELBOURNE VIC", "woolworths"},
		{"single spaces preserved", "UBER *TRIP HELP.UBER.COM", "uber *trip help.uber.com"},
		{"trailing store number stripped", "COLES 0432", "coles"},
		{"trailing state code stripped", "BAKERY SYDNEY NSW", "bakery sydney"},
		{"plain name unchanged", "Netflix.com", "netflix.com"},
		{"surrounding whitespace trimmed", "  SPOTIFY  ", "spotify"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.description))
		})
	}
}

func TestExtractPreservesCase(t *testing.T) {
	assert.Equal(t, "WOOLWORTHS", Extract("WOOLWORTHS 1234   MELBOURNE VIC"))
	assert.Equal(t, "woolworths", Key("WOOLWORTHS 1234   MELBOURNE VIC"))
}

func TestKeyIsStable(t *testing.T) {
	// Same raw description must always produce the same cache key.
	desc := "AMAZON AU MARKETPLACE   SYDNEY"
	assert.Equal(t, Key(desc), Key(desc))
}
