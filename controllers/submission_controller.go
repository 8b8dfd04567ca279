package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/export-portal/models"
	"github.com/blogem/export-portal/services"
)

// SubmissionController handles submission log requests
type SubmissionController struct {
	services *services.Services
}

// NewSubmissionController creates a new submission controller
func NewSubmissionController(services *services.Services) *SubmissionController {
	return &SubmissionController{
		services: services,
	}
}

// Submit handles POST /api/submit
func (c *SubmissionController) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}
	defer r.Body.Close()

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "Invalid submission",
			Message: strings.Join(errs, ", "),
		})
		return
	}

	receipt, err := c.services.Submission.Submit(r.Context(), &req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to submit data",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, models.SubmitResponse{
		Success:          true,
		Message:          "Data submitted successfully!",
		SubmissionID:     receipt.SubmissionID,
		TotalItems:       receipt.TotalItems,
		SubmissionsCount: receipt.SubmissionsCount,
	})
}

// List handles GET /api/submissions
func (c *SubmissionController) List(w http.ResponseWriter, r *http.Request) {
	submissions, err := c.services.Submission.ListSubmissions(r.Context())
	if err != nil {
		// Listing degrades to empty rather than failing.
		writeJSON(w, http.StatusOK, []models.Submission{})
		return
	}

	writeJSON(w, http.StatusOK, submissions)
}

// Delete handles DELETE /api/submissions/{id}
func (c *SubmissionController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, remaining, err := c.services.Submission.DeleteSubmission(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Failed to delete submission",
			Message: fmt.Sprintf("failed to delete submission %s: %v", id, err),
		})
		return
	}

	writeJSON(w, http.StatusOK, models.DeleteResponse{
		Success:   true,
		Deleted:   deleted,
		Remaining: remaining,
	})
}
