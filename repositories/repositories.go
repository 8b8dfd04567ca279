package repositories

import (
	"github.com/blogem/export-portal/storage"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Products    ProductRepository
	Categories  CategoryRepository
	Submissions SubmissionRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(store *storage.JSONStore) *Repositories {
	return &Repositories{
		Products:    NewProductRepository(store),
		Categories:  NewCategoryRepository(store),
		Submissions: NewSubmissionRepository(store),
	}
}
