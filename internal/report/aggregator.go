// Package report computes category-level spend aggregations over reconciled
// transactions and renders them to CSV.
package report

import (
	"fmt"
	"sort"

	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/models"

	"github.com/shopspring/decimal"
)

// Kind selects which side of the ledger to aggregate.
type Kind string

// Aggregation kinds.
const (
	KindExpenses Kind = "expenses"
	KindIncome   Kind = "income"
	KindAll      Kind = "all"
)

// CategorySummary is one output group: a category, its total and the
// transactions behind it.
type CategorySummary struct {
	Code         string
	Name         string
	Type         string
	Total        decimal.Decimal
	Transactions []models.Transaction
}

// Aggregator groups reconciled transactions by category.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates an Aggregator.
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Aggregator{logger: logger}
}

// Aggregate groups reconciled transactions by category code and totals
// their absolute amounts.
//
// Only reconciled transactions are eligible; the kind filters by sign
// (expenses < 0, income > 0, all takes every reconciled transaction).
// Transactions without a category fall into the default "other" bucket,
// and codes no longer in the catalog resolve to an "Unknown" placeholder
// rather than failing.
//
// Totals are rounded to 2 decimal places, half away from zero. Groups are
// ordered by total descending; equal totals break by ascending category
// code. Both rules are fixed and pinned by tests.
func (a *Aggregator) Aggregate(transactions []models.Transaction, categories []models.Category, kind Kind) ([]CategorySummary, error) {
	switch kind {
	case KindExpenses, KindIncome, KindAll:
	case "":
		kind = KindExpenses
	default:
		return nil, fmt.Errorf("unknown aggregation kind: %s", kind)
	}

	totals := make(map[string]decimal.Decimal)
	grouped := make(map[string][]models.Transaction)

	for _, t := range transactions {
		if !t.Reconciled {
			continue
		}
		switch kind {
		case KindExpenses:
			if !t.IsExpense() {
				continue
			}
		case KindIncome:
			if !t.IsIncome() {
				continue
			}
		}

		code := t.CategoryCode
		if code == "" {
			code = models.CategoryCodeOther
		}

		totals[code] = totals[code].Add(t.Amount.Abs())
		grouped[code] = append(grouped[code], t)
	}

	catalog := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		catalog[c.Code] = c
	}

	summaries := make([]CategorySummary, 0, len(totals))
	for code, total := range totals {
		cat, ok := catalog[code]
		if !ok {
			// Deleted categories still referenced by transactions surface
			// as a placeholder instead of failing the report.
			cat = models.Category{
				Code: code,
				Name: models.UnknownCategoryName,
				Type: models.CategoryTypeVariable,
			}
		}
		summaries = append(summaries, CategorySummary{
			Code:         code,
			Name:         cat.Name,
			Type:         cat.Type,
			Total:        total.Round(2),
			Transactions: grouped[code],
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Total.Equal(summaries[j].Total) {
			return summaries[i].Total.GreaterThan(summaries[j].Total)
		}
		return summaries[i].Code < summaries[j].Code
	})

	a.logger.WithFields(
		logging.Field{Key: logging.FieldKind, Value: string(kind)},
		logging.Field{Key: logging.FieldCount, Value: len(summaries)},
	).Debug("Aggregated transactions by category")

	return summaries, nil
}
