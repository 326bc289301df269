// Package reconciler implements the reconciliation workflow: confirming a
// transaction's category assignment and feeding confirmed decisions back
// into the merchant cache.
//
// Reconciliation is one-way. Once a transaction is reconciled no operation
// moves it back to unreconciled; its category remains editable.
package reconciler

import (
	"fmt"

	"mkeller/ledgerec/internal/cache"
	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/merchant"
	"mkeller/ledgerec/internal/models"
	"mkeller/ledgerec/internal/store"
)

// Filter selects transactions by reconciliation state.
type Filter string

// Transaction list filters.
const (
	FilterAll          Filter = "all"
	FilterUnreconciled Filter = "unreconciled"
	FilterReconciled   Filter = "reconciled"
)

// Service provides the reconciliation operations over the persisted
// transaction collection.
type Service struct {
	store  *store.Store
	cache  *cache.MerchantCache
	logger logging.Logger
}

// NewService creates a reconciler Service.
func NewService(s *store.Store, mc *cache.MerchantCache, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Service{store: s, cache: mc, logger: logger}
}

// Update carries a partial transaction edit; nil fields are left unchanged.
// When CategoryCode is set and UpdateCache is true (the default via
// NewUpdate), the merchant cache learns the new mapping.
type Update struct {
	CategoryCode *string
	Reconciled   *bool
	Note         *string
	UpdateCache  bool
}

// NewUpdate returns an Update with cache learning enabled, matching the
// default behavior of a manual category edit.
func NewUpdate() Update {
	return Update{UpdateCache: true}
}

// List returns transactions matching the filter.
func (s *Service) List(filter Filter) ([]models.Transaction, error) {
	transactions, err := s.store.LoadTransactions()
	if err != nil {
		return nil, err
	}

	switch filter {
	case FilterAll, "":
		return transactions, nil
	case FilterUnreconciled, FilterReconciled:
		wantReconciled := filter == FilterReconciled
		matched := make([]models.Transaction, 0, len(transactions))
		for _, t := range transactions {
			if t.Reconciled == wantReconciled {
				matched = append(matched, t)
			}
		}
		return matched, nil
	default:
		return nil, fmt.Errorf("unknown filter: %s", filter)
	}
}

// UpdateTransaction applies a partial edit to the transaction with the given
// id. Editing the category does not by itself change the reconciled flag.
// Requests to flip a reconciled transaction back to unreconciled are
// rejected: confirmation is a one-way action.
func (s *Service) UpdateTransaction(id string, upd Update) error {
	transactions, err := s.store.LoadTransactions()
	if err != nil {
		return err
	}

	idx := indexByID(transactions, id)
	if idx < 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}

	t := &transactions[idx]
	if upd.Reconciled != nil && t.Reconciled && !*upd.Reconciled {
		return fmt.Errorf("transaction %s is reconciled and cannot be unreconciled", id)
	}

	if upd.CategoryCode != nil {
		t.CategoryCode = *upd.CategoryCode
	}
	if upd.Reconciled != nil {
		t.Reconciled = *upd.Reconciled
	}
	if upd.Note != nil {
		t.Note = *upd.Note
	}

	if upd.CategoryCode != nil && *upd.CategoryCode != "" && upd.UpdateCache {
		s.learn(t.Description, *upd.CategoryCode, t.ID)
	}

	return s.store.SaveTransactions(transactions)
}

// Reconcile confirms the category for a single transaction: the code is
// assigned, the transaction becomes reconciled, and the merchant cache
// always learns the mapping on this path.
func (s *Service) Reconcile(id, categoryCode string) error {
	if id == "" || categoryCode == "" {
		return fmt.Errorf("missing transaction id or category code")
	}

	transactions, err := s.store.LoadTransactions()
	if err != nil {
		return err
	}

	idx := indexByID(transactions, id)
	if idx < 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}

	t := &transactions[idx]
	t.CategoryCode = categoryCode
	t.Reconciled = true

	s.learn(t.Description, categoryCode, t.ID)

	if err := s.store.SaveTransactions(transactions); err != nil {
		return err
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldTransactionID, Value: id},
		logging.Field{Key: logging.FieldCategory, Value: categoryCode},
	).Info("Reconciled transaction")
	return nil
}

// ReconcileAll accepts the AI suggestion for every unreconciled transaction
// that carries one, learning each accepted mapping. Transactions with no
// suggestion are left untouched. Returns the number of transactions
// transitioned.
func (s *Service) ReconcileAll() (int, error) {
	transactions, err := s.store.LoadTransactions()
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range transactions {
		t := &transactions[i]
		if t.Reconciled || t.AISuggestedCode == "" {
			continue
		}

		t.CategoryCode = t.AISuggestedCode
		t.Reconciled = true
		count++

		s.learn(t.Description, t.CategoryCode, t.ID)
	}

	if count == 0 {
		return 0, nil
	}

	if err := s.store.SaveTransactions(transactions); err != nil {
		return 0, err
	}

	s.logger.WithField(logging.FieldCount, count).Info("Reconciled all suggested transactions")
	return count, nil
}

// ClearTransactions empties the transaction collection. Categories and the
// merchant cache are untouched.
func (s *Service) ClearTransactions() error {
	return s.store.SaveTransactions(nil)
}

// ClearAllData empties the transaction collection and the merchant cache.
// The category catalog is untouched.
func (s *Service) ClearAllData() error {
	if err := s.store.SaveTransactions(nil); err != nil {
		return err
	}
	return s.cache.Clear()
}

// learn updates the merchant cache, logging rather than failing on error:
// a cache write problem must not lose the reconciliation itself.
func (s *Service) learn(description, categoryCode, transactionID string) {
	key := merchant.Key(description)
	if key == "" {
		return
	}
	if err := s.cache.Learn(key, categoryCode, transactionID); err != nil {
		s.logger.WithError(err).WithField(logging.FieldMerchant, key).
			Warn("Failed to update merchant cache")
	}
}

func indexByID(transactions []models.Transaction, id string) int {
	for i := range transactions {
		if transactions[i].ID == id {
			return i
		}
	}
	return -1
}
