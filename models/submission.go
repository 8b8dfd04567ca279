package models

import (
	"time"
)

// StatusRecorded is the status marker assigned to every stored
// submission.
const StatusRecorded = "send"

// Submission is one persisted export of selected records.
type Submission struct {
	ID                 string     `json:"id"`
	Timestamp          time.Time  `json:"timestamp"`
	SelectedProducts   []Product  `json:"selectedProducts"`
	SelectedCategories []Category `json:"selectedCategories"`
	TotalCount         int        `json:"totalCount"`
	Status             string     `json:"status"`
}

// SubmissionRequest represents the inbound body of a submit call.
type SubmissionRequest struct {
	SelectedProducts   []Product  `json:"selectedProducts"`
	SelectedCategories []Category `json:"selectedCategories"`
	TotalCount         int        `json:"totalCount"`
}

// Validate validates the submission request data. The total count is
// caller-supplied and deliberately not reconciled against the selected
// record counts; only values that can never be a length sum are
// rejected.
func (r *SubmissionRequest) Validate() []string {
	var errors []string

	if r.TotalCount < 0 {
		errors = append(errors, "totalCount must not be negative")
	}

	return errors
}
