package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/blogem/export-portal/models"
	"github.com/blogem/export-portal/storage"
)

// MaxSubmissions is the hard cap on the persisted submission log.
const MaxSubmissions = 50

// SubmissionRepository interface defines submission log operations
type SubmissionRepository interface {
	// Append inserts a submission at the head of the log, dropping the
	// oldest entries beyond the cap, and returns the resulting length.
	Append(ctx context.Context, submission models.Submission) (int, error)
	// GetAll returns the log most-recent-first. A missing or unreadable
	// log reads as empty.
	GetAll(ctx context.Context) ([]models.Submission, error)
	// DeleteByID removes the entry with the given id, reporting whether
	// anything was removed and the remaining length.
	DeleteByID(ctx context.Context, id string) (bool, int, error)
}

// submissionRepository implements SubmissionRepository interface
type submissionRepository struct {
	store *storage.JSONStore

	// mu serializes every read-modify-write so two concurrent appends
	// cannot both work from the same pre-state.
	mu sync.Mutex
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(store *storage.JSONStore) SubmissionRepository {
	return &submissionRepository{store: store}
}

// Append inserts the submission at the head of the persisted log and
// truncates to the most recent MaxSubmissions entries. The write is
// atomic: on failure the prior log remains on disk.
func (r *submissionRepository) Append(ctx context.Context, submission models.Submission) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	submissions := r.loadLenient()
	submissions = append([]models.Submission{submission}, submissions...)
	if len(submissions) > MaxSubmissions {
		submissions = submissions[:MaxSubmissions]
	}

	if err := r.store.Write(storage.Submissions, submissions); err != nil {
		return 0, fmt.Errorf("failed to persist submission log: %w", err)
	}

	return len(submissions), nil
}

// GetAll retrieves the persisted log in its stored order
func (r *submissionRepository) GetAll(ctx context.Context) ([]models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadLenient(), nil
}

// DeleteByID removes the matching entry, preserving the order of the
// rest. Deleting an absent id is a no-op reporting deleted=false. An
// unreadable log is an error here: a delete must not silently succeed
// against unknown state.
func (r *submissionRepository) DeleteByID(ctx context.Context, id string) (bool, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var submissions []models.Submission
	err := r.store.Read(storage.Submissions, &submissions)
	if errors.Is(err, storage.ErrNotFound) {
		// Never-created log is a known empty state.
		return false, 0, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("failed to load submission log: %w", err)
	}

	filtered := make([]models.Submission, 0, len(submissions))
	for _, s := range submissions {
		if s.ID != id {
			filtered = append(filtered, s)
		}
	}

	deleted := len(filtered) != len(submissions)
	if !deleted {
		return false, len(submissions), nil
	}

	if err := r.store.Write(storage.Submissions, filtered); err != nil {
		return false, 0, fmt.Errorf("failed to persist submission log: %w", err)
	}

	return true, len(filtered), nil
}

// loadLenient reads the log, treating a missing or unreadable file as
// an empty log. Callers must hold mu.
func (r *submissionRepository) loadLenient() []models.Submission {
	var submissions []models.Submission
	if err := r.store.Read(storage.Submissions, &submissions); err != nil {
		return []models.Submission{}
	}
	return submissions
}
