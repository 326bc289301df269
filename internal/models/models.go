// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/shopspring/decimal"
)

// Confidence is the qualitative certainty of a category suggestion.
type Confidence string

// Confidence levels. High is reserved for merchant-cache hits and explicit
// user confirmations.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Valid reports whether c is one of the defined confidence levels.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// Transaction represents a single bank-statement transaction.
//
// ID is derived deterministically from (date, absolute amount, description
// hash) so that re-importing the same statement is a no-op. Negative amounts
// are expenses, positive amounts income.
type Transaction struct {
	ID              string          `json:"id" csv:"ID"`
	Date            string          `json:"date" csv:"Date"` // ISO YYYY-MM-DD, or the raw statement string if unparseable
	Amount          decimal.Decimal `json:"amount" csv:"Amount"`
	Description     string          `json:"description" csv:"Description"`
	CategoryCode    string          `json:"category_code,omitempty" csv:"CategoryCode"`
	Reconciled      bool            `json:"reconciled" csv:"Reconciled"`
	Note            string          `json:"note,omitempty" csv:"Note"`
	AISuggestedCode string          `json:"ai_suggested_code,omitempty" csv:"-"`
	AIConfidence    Confidence      `json:"ai_confidence,omitempty" csv:"-"`
	AIFromCache     bool            `json:"ai_from_cache,omitempty" csv:"-"`
}

// TransactionID derives the deterministic identity key for a transaction.
// The key is stable across re-imports of the same logical row.
func TransactionID(date string, amount decimal.Decimal, description string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(description))
	return fmt.Sprintf("%s_%s_%d", date, amount.Abs().String(), h.Sum32()%10000)
}

// IsExpense reports whether the transaction moves money out of the account.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome reports whether the transaction moves money into the account.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// Category represents a spending category in the catalog.
type Category struct {
	Code         string `yaml:"code" json:"code"`
	Name         string `yaml:"name" json:"name"`
	Type         string `yaml:"type" json:"type"`                   // budgeting type: "fixed", "variable", ...
	CategoryType string `yaml:"category_type" json:"category_type"` // "Expense" or "Income"
}

// CacheEntry is a learned merchant-to-category mapping. At most one entry
// exists per normalized merchant key; relearning overwrites.
type CacheEntry struct {
	CategoryCode string     `json:"category_code"`
	Confidence   Confidence `json:"confidence"`
	LearnedFrom  string     `json:"learned_from"` // id of the transaction that taught this mapping
}

// ParseAmount parses a statement amount string into a decimal, tolerating
// surrounding quotes, thousands separators and an explicit plus sign.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}
	return d, nil
}
