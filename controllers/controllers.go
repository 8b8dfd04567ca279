package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/blogem/export-portal/services"
	"github.com/blogem/export-portal/storage"
)

// Controllers holds all controller instances
type Controllers struct {
	Catalog    *CatalogController
	Submission *SubmissionController
	Health     *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, store *storage.JSONStore) *Controllers {
	return &Controllers{
		Catalog:    NewCatalogController(services),
		Submission: NewSubmissionController(services),
		Health:     NewHealthController(store),
	}
}

// writeJSON encodes v onto the response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
