package report

import (
	"fmt"
	"os"
	"path/filepath"

	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// summaryRow is the flat CSV shape of a category summary.
type summaryRow struct {
	Code         string          `csv:"Code"`
	Name         string          `csv:"Name"`
	Type         string          `csv:"Type"`
	Total        decimal.Decimal `csv:"Total"`
	Transactions int             `csv:"Transactions"`
}

// WriteSummaryCSV writes category summaries to a CSV file, one row per
// category in aggregation order.
func WriteSummaryCSV(summaries []CategorySummary, path string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}

	rows := make([]summaryRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, summaryRow{
			Code:         s.Code,
			Name:         s.Name,
			Type:         s.Type,
			Total:        s.Total,
			Transactions: len(s.Transactions),
		})
	}

	if err := writeCSVFile(path, &rows, logger); err != nil {
		return err
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Wrote category summary CSV")
	return nil
}

// WriteTransactionsCSV exports transactions to a CSV file in the standard
// column layout.
func WriteTransactionsCSV(transactions []models.Transaction, path string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	if err := writeCSVFile(path, &transactions, logger); err != nil {
		return err
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Wrote transactions CSV")
	return nil
}

func writeCSVFile(path string, rows interface{}, logger logging.Logger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close CSV file")
		}
	}()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
