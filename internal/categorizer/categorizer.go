// Package categorizer assigns category suggestions to batches of
// transactions. Lookup order per transaction:
//  1. Learned merchant cache (no external call)
//  2. One single batched request to the external AI classifier
//
// The external call is failure-safe: any transport or parse error marks the
// whole miss subset with the default category at low confidence, so an
// outage never blocks the import pipeline.
package categorizer

import (
	"context"

	"mkeller/ledgerec/internal/cache"
	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/merchant"
	"mkeller/ledgerec/internal/models"
)

// BatchCategorizer performs cache-first, AI-fallback categorization.
type BatchCategorizer struct {
	cache  *cache.MerchantCache
	client AIClient
	logger logging.Logger
}

// New creates a BatchCategorizer. client may be nil, in which case every
// cache miss takes the fallback path.
func New(merchantCache *cache.MerchantCache, client AIClient, logger logging.Logger) *BatchCategorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &BatchCategorizer{
		cache:  merchantCache,
		client: client,
		logger: logger,
	}
}

// CategorizeBatch populates the AI suggestion fields of every transaction in
// the batch and returns the batch in its original order. Persistent state is
// only read (cache hits), never written.
//
// Transactions whose merchant key is in the cache are tagged from-cache at
// high confidence. The remaining transactions are sent to the classifier in
// one batched request; response entries are matched back by ordinal and
// unmatched entries are skipped, leaving those transactions unset. If the
// call or the response parse fails, every miss gets the default category at
// low confidence.
func (b *BatchCategorizer) CategorizeBatch(ctx context.Context, transactions []models.Transaction, categories []models.Category) []models.Transaction {
	var missIdx []int

	for i := range transactions {
		key := merchant.Key(transactions[i].Description)
		if key == "" {
			missIdx = append(missIdx, i)
			continue
		}

		entry, found, err := b.cache.Lookup(key)
		if err != nil {
			b.logger.WithError(err).WithField(logging.FieldMerchant, key).
				Warn("Merchant cache lookup failed, treating as miss")
			missIdx = append(missIdx, i)
			continue
		}
		if !found {
			missIdx = append(missIdx, i)
			continue
		}

		transactions[i].AISuggestedCode = entry.CategoryCode
		transactions[i].AIConfidence = models.ConfidenceHigh
		transactions[i].AIFromCache = true
	}

	// The classifier is never invoked unnecessarily.
	if len(missIdx) == 0 {
		b.logger.WithField(logging.FieldCount, len(transactions)).
			Debug("All transactions resolved from merchant cache")
		return transactions
	}

	misses := make([]models.Transaction, len(missIdx))
	for i, idx := range missIdx {
		misses[i] = transactions[idx]
	}

	suggestions, err := b.requestSuggestions(ctx, misses, categories)
	if err != nil {
		b.logger.WithError(err).WithField(logging.FieldCount, len(missIdx)).
			Warn("Batch categorization failed, applying fallback category")
		for _, idx := range missIdx {
			transactions[idx].AISuggestedCode = models.CategoryCodeOther
			transactions[idx].AIConfidence = models.ConfidenceLow
			transactions[idx].AIFromCache = false
		}
		return transactions
	}

	for _, s := range suggestions {
		idx := missIdx[s.Ordinal-1]
		transactions[idx].AISuggestedCode = s.CategoryCode
		transactions[idx].AIConfidence = s.Confidence
		transactions[idx].AIFromCache = false
	}

	b.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: "cache_hits", Value: len(transactions) - len(missIdx)},
		logging.Field{Key: "classified", Value: len(suggestions)},
	).Info("Categorized transaction batch")

	return transactions
}

// requestSuggestions issues the single batched classifier call and parses
// the ordinal-correlated response.
func (b *BatchCategorizer) requestSuggestions(ctx context.Context, misses []models.Transaction, categories []models.Category) ([]Suggestion, error) {
	if b.client == nil {
		return nil, errNoClient
	}

	prompt := buildBatchPrompt(categories, misses)
	raw, err := b.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return parseSuggestions(raw, len(misses))
}

type categorizerError string

func (e categorizerError) Error() string { return string(e) }

const errNoClient = categorizerError("no AI client configured")
