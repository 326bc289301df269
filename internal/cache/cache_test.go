package cache

import (
	"os"
	"testing"

	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/models"
	"mkeller/ledgerec/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*MerchantCache, *store.Store) {
	t.Helper()
	s := store.New(t.TempDir(), logging.NewMockLogger())
	return New(s, logging.NewMockLogger()), s
}

func TestLearnAndLookup(t *testing.T) {
	c, _ := newTestCache(t)

	require.NoError(t, c.Learn("woolworths", "100", "tx-1"))

	entry, found, err := c.Lookup("woolworths")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "100", entry.CategoryCode)
	assert.Equal(t, models.ConfidenceHigh, entry.Confidence)
	assert.Equal(t, "tx-1", entry.LearnedFrom)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	c, _ := newTestCache(t)
	require.NoError(t, c.Learn("Woolworths", "100", "tx-1"))

	_, found, err := c.Lookup("WOOLWORTHS")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLookupMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, found, err := c.Lookup("nowhere")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLearnRelearnSameCodeIsNoOp(t *testing.T) {
	c, s := newTestCache(t)
	require.NoError(t, c.Learn("uber", "300", "tx-1"))

	// Relearning the identical mapping must not rewrite the file.
	info, err := os.Stat(s.MerchantCacheFile)
	require.NoError(t, err)
	before := info.ModTime()

	require.NoError(t, c.Learn("uber", "300", "tx-2"))

	entry, found, err := c.Lookup("uber")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "tx-1", entry.LearnedFrom)

	info, err = os.Stat(s.MerchantCacheFile)
	require.NoError(t, err)
	assert.Equal(t, before, info.ModTime())
}

func TestLearnLastWriteWins(t *testing.T) {
	c, _ := newTestCache(t)
	require.NoError(t, c.Learn("uber", "300", "tx-1"))
	require.NoError(t, c.Learn("uber", "500", "tx-2"))

	entry, found, err := c.Lookup("uber")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "500", entry.CategoryCode)
	assert.Equal(t, "tx-2", entry.LearnedFrom)
}

func TestLearnEmptyKeyIgnored(t *testing.T) {
	c, _ := newTestCache(t)
	require.NoError(t, c.Learn("", "100", "tx-1"))
	require.NoError(t, c.Learn("   ", "100", "tx-1"))

	entries, err := c.store.LoadMerchantCache()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClear(t *testing.T) {
	c, _ := newTestCache(t)
	require.NoError(t, c.Learn("woolworths", "100", "tx-1"))
	require.NoError(t, c.Learn("uber", "300", "tx-2"))

	require.NoError(t, c.Clear())

	_, found, err := c.Lookup("woolworths")
	require.NoError(t, err)
	assert.False(t, found)
}
