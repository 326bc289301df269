// Package catalog manages the category catalog: short unique codes mapped
// to a name, a budgeting type and an expense/income kind.
package catalog

import (
	"fmt"

	"mkeller/ledgerec/internal/logging"
	"mkeller/ledgerec/internal/models"
	"mkeller/ledgerec/internal/store"
)

// Service provides catalog operations over the persisted category
// collection.
type Service struct {
	store  *store.Store
	logger logging.Logger
}

// NewService creates a catalog Service.
func NewService(s *store.Store, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Service{store: s, logger: logger}
}

// Update carries partial changes to a category; nil fields are left
// unchanged.
type Update struct {
	Name         *string
	Type         *string
	CategoryType *string
}

// List returns the full catalog.
func (s *Service) List() ([]models.Category, error) {
	return s.store.LoadCategories()
}

// Create adds a category. Duplicate codes are rejected; empty type fields
// default to "variable" expense.
func (s *Service) Create(category models.Category) error {
	if category.Code == "" {
		return fmt.Errorf("category code is required")
	}
	if category.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if category.Type == "" {
		category.Type = models.CategoryTypeVariable
	}
	if category.CategoryType == "" {
		category.CategoryType = models.CategoryKindExpense
	}

	categories, err := s.store.LoadCategories()
	if err != nil {
		return err
	}

	for _, c := range categories {
		if c.Code == category.Code {
			return fmt.Errorf("category code already exists: %s", category.Code)
		}
	}

	categories = append(categories, category)
	if err := s.store.SaveCategories(categories); err != nil {
		return err
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: category.Code},
		logging.Field{Key: "name", Value: category.Name},
	).Info("Created category")
	return nil
}

// UpdateByCode applies a partial update to the category with the given code.
func (s *Service) UpdateByCode(code string, upd Update) error {
	categories, err := s.store.LoadCategories()
	if err != nil {
		return err
	}

	found := false
	for i := range categories {
		if categories[i].Code != code {
			continue
		}
		if upd.Name != nil {
			categories[i].Name = *upd.Name
		}
		if upd.Type != nil {
			categories[i].Type = *upd.Type
		}
		if upd.CategoryType != nil {
			categories[i].CategoryType = *upd.CategoryType
		}
		found = true
		break
	}
	if !found {
		return fmt.Errorf("category not found: %s", code)
	}

	return s.store.SaveCategories(categories)
}

// Delete removes the category with the given code. Transactions already
// assigned the code keep it; the dangling reference surfaces as "Unknown"
// at aggregation time.
func (s *Service) Delete(code string) error {
	categories, err := s.store.LoadCategories()
	if err != nil {
		return err
	}

	kept := categories[:0]
	for _, c := range categories {
		if c.Code != code {
			kept = append(kept, c)
		}
	}

	if err := s.store.SaveCategories(kept); err != nil {
		return err
	}

	s.logger.WithField(logging.FieldCategory, code).Info("Deleted category")
	return nil
}
