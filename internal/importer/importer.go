// Package importer ingests bank-statement CSV rows into the transaction
// collection, deduplicating re-imports and running new transactions through
// the batch categorizer before persisting.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"mkeller/ledgerec/internal/categorizer"
	"mkeller/ledgerec/internal/dateutils"
	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/models"
	"mkeller/ledgerec/internal/store"
)

// Importer ingests statement files.
type Importer struct {
	store       *store.Store
	categorizer *categorizer.BatchCategorizer
	delimiter   rune
	logger      logging.Logger
}

// Result summarizes an import run.
type Result struct {
	Imported int // transactions newly added
	Skipped  int // rows dropped (too few fields, bad amount)
	Total    int // collection size after import
}

// New creates an Importer.
func New(s *store.Store, c *categorizer.BatchCategorizer, delimiter rune, logger logging.Logger) *Importer {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{store: s, categorizer: c, delimiter: delimiter, logger: logger}
}

// ImportFile imports the statement at path. An empty path or missing file is
// a validation error; nothing is mutated in that case.
func (i *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	if path == "" {
		return Result{}, fmt.Errorf("no file provided")
	}

	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("error opening statement file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			i.logger.WithError(err).Warn("Failed to close statement file")
		}
	}()

	i.logger.WithField(logging.FieldFile, path).Info("Importing statement")
	return i.ImportReader(ctx, file)
}

// ImportReader imports statement rows from r. Each row is
// "date, amount, description" with the date in DD/MM/YYYY; rows with fewer
// than three fields are skipped, malformed dates pass through as raw
// strings, and re-imported rows are deduplicated by identity key.
func (i *Importer) ImportReader(ctx context.Context, r io.Reader) (Result, error) {
	rows, err := i.readRows(r)
	if err != nil {
		return Result{}, err
	}

	transactions, err := i.store.LoadTransactions()
	if err != nil {
		return Result{}, err
	}
	categories, err := i.store.LoadCategories()
	if err != nil {
		return Result{}, err
	}

	existing := make(map[string]bool, len(transactions))
	for _, t := range transactions {
		existing[t.ID] = true
	}

	var result Result
	var fresh []models.Transaction
	for _, row := range rows {
		if len(row) < 3 {
			result.Skipped++
			continue
		}

		date := dateutils.NormalizeStatementDate(row[0])
		amount, err := models.ParseAmount(row[1])
		if err != nil {
			i.logger.WithError(err).WithField("row_date", row[0]).
				Warn("Skipping row with unparseable amount")
			result.Skipped++
			continue
		}
		description := trimDescription(row[2])

		id := models.TransactionID(date, amount, description)
		if existing[id] {
			continue
		}
		existing[id] = true

		fresh = append(fresh, models.Transaction{
			ID:          id,
			Date:        date,
			Amount:      amount,
			Description: description,
		})
	}

	if len(fresh) == 0 {
		result.Total = len(transactions)
		i.logger.Info("No new transactions in statement")
		return result, nil
	}

	// Categorization is failure-safe; it never aborts the import.
	fresh = i.categorizer.CategorizeBatch(ctx, fresh, categories)

	transactions = append(transactions, fresh...)
	sortByDateDescending(transactions)

	if err := i.store.SaveTransactions(transactions); err != nil {
		return Result{}, err
	}

	result.Imported = len(fresh)
	result.Total = len(transactions)
	i.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: result.Imported},
		logging.Field{Key: "skipped", Value: result.Skipped},
	).Info("Imported statement rows")
	return result, nil
}

// readRows parses raw CSV records. Statement exports are headerless and
// positional with uneven field counts, so the reader accepts variable-length
// records and lazy quoting.
func (i *Importer) readRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = i.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing statement CSV: %w", err)
	}
	return rows, nil
}

// trimDescription trims the edges only; interior wide-gap runs are
// significant to the merchant normalizer.
func trimDescription(s string) string {
	return strings.TrimSpace(s)
}

// sortByDateDescending keeps the collection newest-first, with the identity
// key as a deterministic tie-break.
func sortByDateDescending(transactions []models.Transaction) {
	sort.SliceStable(transactions, func(a, b int) bool {
		if transactions[a].Date != transactions[b].Date {
			return transactions[a].Date > transactions[b].Date
		}
		return transactions[a].ID > transactions[b].ID
	})
}
