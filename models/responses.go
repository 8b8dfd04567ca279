package models

import (
	"time"
)

// SubmitResponse is returned on a successful submit.
type SubmitResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	SubmissionID     string `json:"submissionId"`
	TotalItems       int    `json:"totalItems"`
	SubmissionsCount int    `json:"submissionsCount"`
}

// DeleteResponse is returned by the submission delete endpoint.
type DeleteResponse struct {
	Success   bool `json:"success"`
	Deleted   bool `json:"deleted"`
	Remaining int  `json:"remaining"`
}

// ErrorResponse is the failure shape for mutating endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// FetchErrorResponse is the failure shape for read endpoints.
type FetchErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NotFoundResponse is the shape of the router's 404 fallback.
type NotFoundResponse struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

// HealthResponse is the health probe payload.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	DataFiles map[string]string `json:"dataFiles"`
}
