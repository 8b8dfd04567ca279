package repositories

import (
	"context"
	"fmt"

	"github.com/blogem/export-portal/models"
	"github.com/blogem/export-portal/storage"
)

// ProductRepository interface defines product collection operations
type ProductRepository interface {
	EnsureSeeded(ctx context.Context) error
	GetAll(ctx context.Context) ([]models.Product, error)
}

// productRepository implements ProductRepository interface
type productRepository struct {
	store *storage.JSONStore
}

// NewProductRepository creates a new product repository
func NewProductRepository(store *storage.JSONStore) ProductRepository {
	return &productRepository{store: store}
}

// EnsureSeeded writes the default product dataset if the collection
// was never created. An existing collection is left untouched, so
// repeated calls are no-ops.
func (r *productRepository) EnsureSeeded(ctx context.Context) error {
	if r.store.Exists(storage.Products) {
		return nil
	}

	if err := r.store.Write(storage.Products, SeedProducts()); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	return nil
}

// GetAll retrieves the full product collection in stored order
func (r *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.store.Read(storage.Products, &products); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	return products, nil
}
