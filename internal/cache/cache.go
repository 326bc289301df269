// Package cache implements the persistent merchant-to-category learning
// cache. The cache is read on every categorization pass and written whenever
// a reconciliation action confirms a category; it only shrinks via an
// explicit clear.
package cache

import (
	"strings"

	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/models"
	"mkeller/ledgerec/internal/store"
)

// MerchantCache provides lookup and learning over the persisted merchant
// mapping. Each operation reloads the collection from the store.
type MerchantCache struct {
	store  *store.Store
	logger logging.Logger
}

// New creates a MerchantCache backed by the given store.
func New(s *store.Store, logger logging.Logger) *MerchantCache {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &MerchantCache{store: s, logger: logger}
}

// Lookup returns the learned entry for a normalized merchant key, if any.
// Keys are case-insensitive.
func (c *MerchantCache) Lookup(merchantKey string) (models.CacheEntry, bool, error) {
	entries, err := c.store.LoadMerchantCache()
	if err != nil {
		return models.CacheEntry{}, false, err
	}
	entry, ok := entries[strings.ToLower(merchantKey)]
	return entry, ok, nil
}

// Learn upserts a merchant mapping with high confidence, recording the
// transaction that taught it. Relearning the same (key, code) pair leaves
// the store unchanged; last write wins otherwise.
func (c *MerchantCache) Learn(merchantKey, categoryCode, sourceTransactionID string) error {
	key := strings.ToLower(strings.TrimSpace(merchantKey))
	if key == "" {
		return nil
	}

	entries, err := c.store.LoadMerchantCache()
	if err != nil {
		return err
	}

	if existing, ok := entries[key]; ok &&
		existing.CategoryCode == categoryCode && existing.Confidence == models.ConfidenceHigh {
		return nil
	}

	entries[key] = models.CacheEntry{
		CategoryCode: categoryCode,
		Confidence:   models.ConfidenceHigh,
		LearnedFrom:  sourceTransactionID,
	}

	c.logger.WithFields(
		logging.Field{Key: logging.FieldMerchant, Value: key},
		logging.Field{Key: logging.FieldCategory, Value: categoryCode},
	).Debug("Learned merchant mapping")

	return c.store.SaveMerchantCache(entries)
}

// Clear removes every learned mapping. This is the only shrink path; the
// cache is never evicted automatically.
func (c *MerchantCache) Clear() error {
	return c.store.SaveMerchantCache(map[string]models.CacheEntry{})
}
