package services

import (
	"context"
	"fmt"

	"github.com/blogem/export-portal/models"
	"github.com/blogem/export-portal/repositories"
	"github.com/blogem/export-portal/search"
)

// CatalogService interface defines read access to the two record
// collections, with optional free-text filtering.
type CatalogService interface {
	GetProducts(ctx context.Context, term string) ([]models.Product, error)
	GetCategories(ctx context.Context, term string) ([]models.Category, error)
}

// catalogService implements CatalogService interface
type catalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// GetProducts retrieves all products, narrowed to term matches when a
// term is given
func (s *catalogService) GetProducts(ctx context.Context, term string) ([]models.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	return search.Filter(products, term), nil
}

// GetCategories retrieves all categories, narrowed to term matches
// when a term is given
func (s *catalogService) GetCategories(ctx context.Context, term string) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return search.Filter(categories, term), nil
}
