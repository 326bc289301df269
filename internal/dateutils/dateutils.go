// Package dateutils provides the date handling used throughout the
// application.
package dateutils

import (
	"fmt"
	"time"
)

// Date layout constants.
const (
	LayoutISO       = "2006-01-02"
	LayoutStatement = "02/01/2006" // DD/MM/YYYY as exported by bank statements
)

// statementFormats are tried in order when normalizing statement dates.
var statementFormats = []string{
	LayoutStatement,
	LayoutISO,
	"02.01.2006",
	"2/1/2006",
}

// ParseStatementDate parses a statement date string. Statements use
// DD/MM/YYYY; a few other common forms are accepted.
func ParseStatementDate(dateStr string) (time.Time, error) {
	for _, format := range statementFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// NormalizeStatementDate converts a statement date to ISO YYYY-MM-DD.
// Unparseable dates are passed through unchanged rather than rejected, so a
// malformed row still imports with its raw date string.
func NormalizeStatementDate(dateStr string) string {
	t, err := ParseStatementDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format(LayoutISO)
}
