// Package container provides dependency injection for the ledgerec
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"mkeller/ledgerec/internal/cache"
	"mkeller/ledgerec/internal/catalog"
	"mkeller/ledgerec/internal/categorizer"
	"mkeller/ledgerec/internal/config"
	"mkeller/ledgerec/internal/importer"
	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/reconciler"
	"mkeller/ledgerec/internal/report"
	"mkeller/ledgerec/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation; components are reached through getters only.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	store       *store.Store
	cache       *cache.MerchantCache
	aiClient    categorizer.AIClient
	categorizer *categorizer.BatchCategorizer
	importer    *importer.Importer
	reconciler  *reconciler.Service
	catalog     *catalog.Service
	aggregator  *report.Aggregator
}

// New creates and wires all application dependencies from the given
// configuration.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logger first; everything else logs through it.
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	dataStore := store.New(cfg.Data.Directory, logger)
	merchantCache := cache.New(dataStore, logger)

	var aiClient categorizer.AIClient
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
		client, err := categorizer.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, timeout, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize AI client: %w", err)
		}
		aiClient = client
		logger.Info("AI categorization enabled")
	} else {
		// Without a client every cache miss takes the fallback category;
		// imports still complete.
		logger.Info("AI categorization disabled")
	}

	batchCategorizer := categorizer.New(merchantCache, aiClient, logger)

	delimiter := ','
	if cfg.CSV.Delimiter != "" {
		delimiter = []rune(cfg.CSV.Delimiter)[0]
	}

	return &Container{
		logger:      logger,
		config:      cfg,
		store:       dataStore,
		cache:       merchantCache,
		aiClient:    aiClient,
		categorizer: batchCategorizer,
		importer:    importer.New(dataStore, batchCategorizer, delimiter, logger),
		reconciler:  reconciler.NewService(dataStore, merchantCache, logger),
		catalog:     catalog.NewService(dataStore, logger),
		aggregator:  report.NewAggregator(logger),
	}, nil
}

// Logger returns the configured logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the application configuration.
func (c *Container) Config() *config.Config { return c.config }

// Store returns the persistence layer.
func (c *Container) Store() *store.Store { return c.store }

// MerchantCache returns the merchant learning cache.
func (c *Container) MerchantCache() *cache.MerchantCache { return c.cache }

// Categorizer returns the batch categorizer.
func (c *Container) Categorizer() *categorizer.BatchCategorizer { return c.categorizer }

// Importer returns the statement importer.
func (c *Container) Importer() *importer.Importer { return c.importer }

// Reconciler returns the reconciliation service.
func (c *Container) Reconciler() *reconciler.Service { return c.reconciler }

// Catalog returns the category catalog service.
func (c *Container) Catalog() *catalog.Service { return c.catalog }

// Aggregator returns the report aggregator.
func (c *Container) Aggregator() *report.Aggregator { return c.aggregator }

// Close releases resources held by the container, such as the AI client
// connection.
func (c *Container) Close() error {
	if closer, ok := c.aiClient.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
