package services

import (
	"github.com/blogem/export-portal/repositories"
)

// Services holds all service instances
type Services struct {
	Catalog    CatalogService
	Submission SubmissionService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Catalog:    NewCatalogService(repos.Products, repos.Categories),
		Submission: NewSubmissionService(repos.Submissions),
	}
}
