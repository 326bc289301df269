package categorizer

import (
	"encoding/json"
	"fmt"
	"regexp"

	"mkeller/ledgerec/internal/models"
)

// Suggestion is one entry of the classifier response, correlated back to a
// request transaction by its 1-based ordinal.
type Suggestion struct {
	Ordinal      int               `json:"id"`
	CategoryCode string            `json:"category_code"`
	Confidence   models.Confidence `json:"confidence"`
}

// Classifier replies sometimes wrap the JSON array in prose or code fences;
// extract the first bracketed array.
var jsonArrayRe = regexp.MustCompile(`\[[\s\S]*\]`)

// parseSuggestions parses the classifier's raw response into suggestions for
// a request of n transactions.
//
// A response with no parseable JSON array is an invocation failure and
// returns an error, triggering the caller's total fallback. Individual
// entries with an out-of-range or duplicate ordinal, or an empty category
// code, are dropped rather than failing the batch; confidence values outside
// the defined set degrade to low.
func parseSuggestions(raw string, n int) ([]Suggestion, error) {
	match := jsonArrayRe.FindString(raw)
	if match == "" {
		return nil, fmt.Errorf("no JSON array in classifier response")
	}

	var entries []Suggestion
	if err := json.Unmarshal([]byte(match), &entries); err != nil {
		return nil, fmt.Errorf("malformed classifier response: %w", err)
	}

	seen := make(map[int]bool, len(entries))
	valid := make([]Suggestion, 0, len(entries))
	for _, e := range entries {
		if e.Ordinal < 1 || e.Ordinal > n || seen[e.Ordinal] || e.CategoryCode == "" {
			continue
		}
		seen[e.Ordinal] = true
		if !e.Confidence.Valid() {
			e.Confidence = models.ConfidenceLow
		}
		valid = append(valid, e)
	}
	return valid, nil
}
