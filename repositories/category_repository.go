package repositories

import (
	"context"
	"fmt"

	"github.com/blogem/export-portal/models"
	"github.com/blogem/export-portal/storage"
)

// CategoryRepository interface defines category collection operations
type CategoryRepository interface {
	EnsureSeeded(ctx context.Context) error
	GetAll(ctx context.Context) ([]models.Category, error)
}

// categoryRepository implements CategoryRepository interface
type categoryRepository struct {
	store *storage.JSONStore
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(store *storage.JSONStore) CategoryRepository {
	return &categoryRepository{store: store}
}

// EnsureSeeded writes the default category dataset if the collection
// was never created. Idempotent across repeated calls.
func (r *categoryRepository) EnsureSeeded(ctx context.Context) error {
	if r.store.Exists(storage.Categories) {
		return nil
	}

	if err := r.store.Write(storage.Categories, SeedCategories()); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	return nil
}

// GetAll retrieves the full category collection in stored order
func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.store.Read(storage.Categories, &categories); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	return categories, nil
}
