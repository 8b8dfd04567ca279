package controllers

import (
	"net/http"
	"time"

	"github.com/blogem/export-portal/models"
	"github.com/blogem/export-portal/storage"
)

// HealthController handles the health probe
type HealthController struct {
	store *storage.JSONStore
}

// NewHealthController creates a new health controller
func NewHealthController(store *storage.JSONStore) *HealthController {
	return &HealthController{
		store: store,
	}
}

// Status handles GET /api/health
func (c *HealthController) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
		DataFiles: map[string]string{
			"products":    c.store.Path(storage.Products),
			"categories":  c.store.Path(storage.Categories),
			"submissions": c.store.Path(storage.Submissions),
		},
	})
}
