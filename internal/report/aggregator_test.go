package report

import (
	"testing"

	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconciledTx(id, code string, amount float64) models.Transaction {
	return models.Transaction{
		ID:           id,
		Date:         "2025-01-15",
		Amount:       decimal.NewFromFloat(amount),
		Description:  id,
		CategoryCode: code,
		Reconciled:   true,
	}
}

func testCategories() []models.Category {
	return models.DefaultCategories()
}

func TestAggregate_ExpensesGroupedAndOrdered(t *testing.T) {
	a := NewAggregator(logging.NewMockLogger())

	transactions := []models.Transaction{
		reconciledTx("t1", "100", -12.50),
		reconciledTx("t2", "100", -7.50),
		reconciledTx("t3", "300", -10.00),
	}

	summaries, err := a.Aggregate(transactions, testCategories(), KindExpenses)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Largest total first.
	assert.Equal(t, "100", summaries[0].Code)
	assert.Equal(t, "Groceries", summaries[0].Name)
	assert.Equal(t, "20", summaries[0].Total.String())
	assert.Len(t, summaries[0].Transactions, 2)

	assert.Equal(t, "300", summaries[1].Code)
	assert.Equal(t, "10", summaries[1].Total.String())
}

func TestAggregate_UnreconciledExcluded(t *testing.T) {
	a := NewAggregator(logging.NewMockLogger())

	pending := reconciledTx("t2", "100", -99.00)
	pending.Reconciled = false

	summaries, err := a.Aggregate([]models.Transaction{
		reconciledTx("t1", "100", -12.50),
		pending,
	}, testCategories(), KindExpenses)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "12.5", summaries[0].Total.String())
}

func TestAggregate_Kinds(t *testing.T) {
	a := NewAggregator(logging.NewMockLogger())

	transactions := []models.Transaction{
		reconciledTx("t1", "100", -12.50),
		reconciledTx("t2", "1000", 2500.00),
	}

	expenses, err := a.Aggregate(transactions, testCategories(), KindExpenses)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "100", expenses[0].Code)

	income, err := a.Aggregate(transactions, testCategories(), KindIncome)
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, "1000", income[0].Code)
	assert.Equal(t, "2500", income[0].Total.String())

	all, err := a.Aggregate(transactions, testCategories(), KindAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Empty kind defaults to expenses.
	defaulted, err := a.Aggregate(transactions, testCategories(), "")
	require.NoError(t, err)
	require.Len(t, defaulted, 1)
	assert.Equal(t, "100", defaulted[0].Code)

	_, err = a.Aggregate(transactions, testCategories(), "weekly")
	assert.Error(t, err)
}

func TestAggregate_EmptyCodeFallsIntoOtherBucket(t *testing.T) {
	a := NewAggregator(logging.NewMockLogger())

	summaries, err := a.Aggregate([]models.Transaction{
		reconciledTx("t1", "", -5.00),
		reconciledTx("t2", "500", -5.00),
	}, testCategories(), KindExpenses)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, models.CategoryCodeOther, summaries[0].Code)
	assert.Equal(t, "10", summaries[0].Total.String())
}

func TestAggregate_UnknownCodePlaceholder(t *testing.T) {
	a := NewAggregator(logging.NewMockLogger())

	summaries, err := a.Aggregate([]models.Transaction{
		reconciledTx("t1", "4242", -5.00),
	}, testCategories(), KindExpenses)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "4242", summaries[0].Code)
	assert.Equal(t, models.UnknownCategoryName, summaries[0].Name)
	assert.Equal(t, models.CategoryTypeVariable, summaries[0].Type)
}

func TestAggregate_EqualTotalsBreakByAscendingCode(t *testing.T) {
	a := NewAggregator(logging.NewMockLogger())

	summaries, err := a.Aggregate([]models.Transaction{
		reconciledTx("t1", "300", -10.00),
		reconciledTx("t2", "100", -10.00),
	}, testCategories(), KindExpenses)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "100", summaries[0].Code)
	assert.Equal(t, "300", summaries[1].Code)
}

func TestAggregate_TotalsRoundedHalfAwayFromZero(t *testing.T) {
	a := NewAggregator(logging.NewMockLogger())

	summaries, err := a.Aggregate([]models.Transaction{
		reconciledTx("t1", "100", -0.005),
		reconciledTx("t2", "100", -0.01),
	}, testCategories(), KindExpenses)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	// 0.015 rounds up to 0.02, not to even.
	assert.Equal(t, "0.02", summaries[0].Total.String())
}

func TestAggregate_Empty(t *testing.T) {
	a := NewAggregator(logging.NewMockLogger())

	summaries, err := a.Aggregate(nil, testCategories(), KindAll)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
