// Package merchant derives canonical merchant identifiers from raw
// bank-statement description strings.
package merchant

import (
	"regexp"
	"strings"
)

var (
	// Statements often pad a location or reference after the merchant name
	// with a run of spaces; everything after the first such run is noise.
	wideGapRe = regexp.MustCompile(`\s{2,}`)

	trailingNumberRe = regexp.MustCompile(`\s+\d+$`)
	trailingCodeRe   = regexp.MustCompile(`\s+[A-Z]{2,3}$`) // state/region codes
)

// Extract returns the cleaned, case-preserved merchant name from a raw
// transaction description. It is a pure function and never fails; the result
// is empty only if the input was empty or whitespace.
func Extract(description string) string {
	desc := strings.TrimSpace(description)
	if loc := wideGapRe.FindStringIndex(desc); loc != nil {
		desc = desc[:loc[0]]
	}
	desc = trailingNumberRe.ReplaceAllString(desc, "")
	desc = trailingCodeRe.ReplaceAllString(desc, "")
	return strings.TrimSpace(desc)
}

// Key returns the normalized, case-folded merchant key used for cache
// lookups.
func Key(description string) string {
	return strings.ToLower(Extract(description))
}
