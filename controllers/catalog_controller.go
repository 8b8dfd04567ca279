package controllers

import (
	"errors"
	"net/http"

	"github.com/blogem/export-portal/models"
	"github.com/blogem/export-portal/services"
	"github.com/blogem/export-portal/storage"
)

// CatalogController handles record collection requests
type CatalogController struct {
	services *services.Services
}

// NewCatalogController creates a new catalog controller
func NewCatalogController(services *services.Services) *CatalogController {
	return &CatalogController{
		services: services,
	}
}

// Products handles GET /api/data1
func (c *CatalogController) Products(w http.ResponseWriter, r *http.Request) {
	products, err := c.services.Catalog.GetProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeJSON(w, fetchStatus(err), models.FetchErrorResponse{
			Error:   "Failed to fetch products",
			Details: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Categories handles GET /api/data2
func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.services.Catalog.GetCategories(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeJSON(w, fetchStatus(err), models.FetchErrorResponse{
			Error:   "Failed to fetch categories",
			Details: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// fetchStatus maps a read failure to a status code
func fetchStatus(err error) int {
	if errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
