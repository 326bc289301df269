package categorizer

import (
	"context"
	"fmt"
	"testing"

	"mkeller/ledgerec/internal/cache"
	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/models"
	"mkeller/ledgerec/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient records the prompts it receives and replies with a canned
// response or error.
type mockClient struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (m *mockClient) Complete(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func newTestCache(t *testing.T) *cache.MerchantCache {
	t.Helper()
	s := store.New(t.TempDir(), logging.NewMockLogger())
	return cache.New(s, logging.NewMockLogger())
}

func expenseTx(id, description string) models.Transaction {
	return models.Transaction{
		ID:          id,
		Date:        "2025-01-15",
		Amount:      decimal.NewFromFloat(-42.50),
		Description: description,
	}
}

func TestCategorizeBatch_AllCacheHitsSkipsClassifier(t *testing.T) {
	mc := newTestCache(t)
	require.NoError(t, mc.Learn("woolworths", "100", "earlier-tx"))

	client := &mockClient{}
	b := New(mc, client, logging.NewMockLogger())

	out := b.CategorizeBatch(context.Background(), []models.Transaction{
		expenseTx("t1", "WOOLWORTHS 1234   MELBOURNE VIC"),
	}, models.DefaultCategories())

	require.Len(t, out, 1)
	assert.Equal(t, "100", out[0].AISuggestedCode)
	assert.Equal(t, models.ConfidenceHigh, out[0].AIConfidence)
	assert.True(t, out[0].AIFromCache)
	assert.Equal(t, 0, client.calls)
}

func TestCategorizeBatch_MixedHitAndMiss(t *testing.T) {
	mc := newTestCache(t)
	require.NoError(t, mc.Learn("woolworths", "100", "earlier-tx"))

	client := &mockClient{
		response: `[{"id": 1, "category_code": "300", "confidence": "medium"}]`,
	}
	b := New(mc, client, logging.NewMockLogger())

	out := b.CategorizeBatch(context.Background(), []models.Transaction{
		expenseTx("t1", "WOOLWORTHS 1234   MELBOURNE VIC"),
		expenseTx("t2", "UBER *TRIP"),
	}, models.DefaultCategories())

	require.Len(t, out, 2)

	assert.True(t, out[0].AIFromCache)
	assert.Equal(t, "100", out[0].AISuggestedCode)

	// The miss is ordinal 1 in the classifier request.
	assert.False(t, out[1].AIFromCache)
	assert.Equal(t, "300", out[1].AISuggestedCode)
	assert.Equal(t, models.ConfidenceMedium, out[1].AIConfidence)
	assert.Equal(t, 1, client.calls)
}

func TestCategorizeBatch_ClientErrorFallsBackForAllMisses(t *testing.T) {
	mc := newTestCache(t)
	require.NoError(t, mc.Learn("woolworths", "100", "earlier-tx"))

	client := &mockClient{err: fmt.Errorf("quota exceeded")}
	b := New(mc, client, logging.NewMockLogger())

	out := b.CategorizeBatch(context.Background(), []models.Transaction{
		expenseTx("t1", "WOOLWORTHS 1234   MELBOURNE VIC"),
		expenseTx("t2", "UBER *TRIP"),
		expenseTx("t3", "MYSTERY SHOP"),
	}, models.DefaultCategories())

	// The cache hit keeps its suggestion; every miss degrades uniformly.
	assert.Equal(t, "100", out[0].AISuggestedCode)
	assert.True(t, out[0].AIFromCache)
	for _, tx := range out[1:] {
		assert.Equal(t, models.CategoryCodeOther, tx.AISuggestedCode)
		assert.Equal(t, models.ConfidenceLow, tx.AIConfidence)
		assert.False(t, tx.AIFromCache)
	}
}

func TestCategorizeBatch_NilClientFallsBack(t *testing.T) {
	b := New(newTestCache(t), nil, logging.NewMockLogger())

	out := b.CategorizeBatch(context.Background(), []models.Transaction{
		expenseTx("t1", "UBER *TRIP"),
	}, models.DefaultCategories())

	assert.Equal(t, models.CategoryCodeOther, out[0].AISuggestedCode)
	assert.Equal(t, models.ConfidenceLow, out[0].AIConfidence)
}

func TestCategorizeBatch_UnmatchedOrdinalsLeaveTransactionUnset(t *testing.T) {
	client := &mockClient{
		response: `[
			{"id": 1, "category_code": "300", "confidence": "high"},
			{"id": 7, "category_code": "200", "confidence": "high"}
		]`,
	}
	b := New(newTestCache(t), client, logging.NewMockLogger())

	out := b.CategorizeBatch(context.Background(), []models.Transaction{
		expenseTx("t1", "UBER *TRIP"),
		expenseTx("t2", "MYSTERY SHOP"),
	}, models.DefaultCategories())

	assert.Equal(t, "300", out[0].AISuggestedCode)

	// The entry for ordinal 7 is out of range and dropped; transaction 2
	// keeps no suggestion rather than a wrong one.
	assert.Empty(t, out[1].AISuggestedCode)
	assert.Empty(t, out[1].AIConfidence)
}

func TestCategorizeBatch_EmptyBatch(t *testing.T) {
	client := &mockClient{}
	b := New(newTestCache(t), client, logging.NewMockLogger())

	out := b.CategorizeBatch(context.Background(), nil, models.DefaultCategories())
	assert.Empty(t, out)
	assert.Equal(t, 0, client.calls)
}

func TestCategorizeBatch_PromptContent(t *testing.T) {
	client := &mockClient{response: `[]`}
	b := New(newTestCache(t), client, logging.NewMockLogger())

	income := models.Transaction{
		ID:          "t2",
		Date:        "2025-01-20",
		Amount:      decimal.NewFromFloat(2500),
		Description: "ACME PTY LTD SALARY",
	}
	b.CategorizeBatch(context.Background(), []models.Transaction{
		expenseTx("t1", "UBER *TRIP"),
		income,
	}, models.DefaultCategories())

	require.Equal(t, 1, client.calls)

	// Catalog entries constrain the answer space.
	assert.Contains(t, client.prompt, "- 100: Groceries (Expense)")
	assert.Contains(t, client.prompt, "- 1000: Income (Income)")

	// Transactions are listed with 1-based ordinals, absolute amounts and a
	// sign-derived kind.
	assert.Contains(t, client.prompt, "1. [2025-01-15] UBER *TRIP | $42.50 (expense)")
	assert.Contains(t, client.prompt, "2. [2025-01-20] ACME PTY LTD SALARY | $2500.00 (income)")

	assert.Contains(t, client.prompt, "ONLY a JSON array")
}
