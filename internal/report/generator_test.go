package report

import (
	"os"
	"path/filepath"
	"testing"

	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")

	summaries := []CategorySummary{
		{
			Code:  "100",
			Name:  "Groceries",
			Type:  "variable",
			Total: decimal.NewFromFloat(20.00),
			Transactions: []models.Transaction{
				reconciledTx("t1", "100", -12.50),
				reconciledTx("t2", "100", -7.50),
			},
		},
	}

	require.NoError(t, WriteSummaryCSV(summaries, path, logging.NewMockLogger()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Code,Name,Type,Total,Transactions")
	assert.Contains(t, content, "100,Groceries,variable,20,2")
}

func TestWriteTransactionsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")

	transactions := []models.Transaction{
		reconciledTx("t1", "100", -12.50),
	}
	require.NoError(t, WriteTransactionsCSV(transactions, path, logging.NewMockLogger()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "t1")
}

func TestWriteTransactionsCSV_NilRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	assert.Error(t, WriteTransactionsCSV(nil, path, logging.NewMockLogger()))
}
