// Package store provides file-backed persistence for the application's
// collections. Every operation in the engine performs a full load-mutate-save
// cycle against this store; there is no long-lived in-memory state.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/models"

	"gopkg.in/yaml.v3"
)

// Default file names inside the data directory.
const (
	CategoriesFileName    = "categories.yaml"
	TransactionsFileName  = "transactions.json"
	MerchantCacheFileName = "merchant_cache.json"
)

// Store manages loading and saving of the transaction, category and
// merchant-cache collections. A missing file loads as an empty collection;
// a malformed file is an error.
type Store struct {
	CategoriesFile    string
	TransactionsFile  string
	MerchantCacheFile string

	logger logging.Logger
}

// categoriesFile is the on-disk shape of the category catalog.
type categoriesFile struct {
	Categories []models.Category `yaml:"categories"`
}

// New creates a Store rooted at dataDir.
func New(dataDir string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{
		CategoriesFile:    filepath.Join(dataDir, CategoriesFileName),
		TransactionsFile:  filepath.Join(dataDir, TransactionsFileName),
		MerchantCacheFile: filepath.Join(dataDir, MerchantCacheFileName),
		logger:            logger,
	}
}

// LoadCategories loads the category catalog. If the file does not exist the
// default catalog is returned so classifier prompt rules always reference
// real codes.
func (s *Store) LoadCategories() ([]models.Category, error) {
	data, err := os.ReadFile(s.CategoriesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.CategoriesFile).
				Debug("Categories file not found, using default catalog")
			return models.DefaultCategories(), nil
		}
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var cf categoriesFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	if cf.Categories == nil {
		cf.Categories = []models.Category{}
	}
	return cf.Categories, nil
}

// SaveCategories writes the category catalog.
func (s *Store) SaveCategories(categories []models.Category) error {
	data, err := yaml.Marshal(categoriesFile{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}
	return s.writeFile(s.CategoriesFile, data)
}

// LoadTransactions loads the transaction collection.
func (s *Store) LoadTransactions() ([]models.Transaction, error) {
	data, err := os.ReadFile(s.TransactionsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("error reading transactions file: %w", err)
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("error parsing transactions file: %w", err)
	}
	return transactions, nil
}

// SaveTransactions writes the transaction collection.
func (s *Store) SaveTransactions(transactions []models.Transaction) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling transactions: %w", err)
	}
	return s.writeFile(s.TransactionsFile, data)
}

// LoadMerchantCache loads the merchant-to-category cache, keyed by
// normalized merchant key.
func (s *Store) LoadMerchantCache() (map[string]models.CacheEntry, error) {
	data, err := os.ReadFile(s.MerchantCacheFile)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.CacheEntry{}, nil
		}
		return nil, fmt.Errorf("error reading merchant cache file: %w", err)
	}

	var cache map[string]models.CacheEntry
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("error parsing merchant cache file: %w", err)
	}
	if cache == nil {
		cache = map[string]models.CacheEntry{}
	}
	return cache, nil
}

// SaveMerchantCache writes the merchant cache.
func (s *Store) SaveMerchantCache(cache map[string]models.CacheEntry) error {
	if cache == nil {
		cache = map[string]models.CacheEntry{}
	}
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling merchant cache: %w", err)
	}
	return s.writeFile(s.MerchantCacheFile, data)
}

// writeFile writes data to path, creating the parent directory if needed.
func (s *Store) writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", filepath.Base(path), err)
	}
	s.logger.WithField(logging.FieldFile, path).Debug("Saved collection")
	return nil
}
