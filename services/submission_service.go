package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/blogem/export-portal/models"
	"github.com/blogem/export-portal/repositories"
)

// SubmissionReceipt reports the outcome of a successful submit.
type SubmissionReceipt struct {
	SubmissionID     string
	TotalItems       int
	SubmissionsCount int
}

// SubmissionService interface defines submission log business logic
type SubmissionService interface {
	Submit(ctx context.Context, req *models.SubmissionRequest) (*SubmissionReceipt, error)
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	DeleteSubmission(ctx context.Context, id string) (bool, int, error)
}

// submissionService implements SubmissionService interface
type submissionService struct {
	submissionRepo repositories.SubmissionRepository

	now func() time.Time

	// lastID guards id minting: ids are millisecond timestamps, and two
	// submits in the same millisecond must still get distinct,
	// increasing ids.
	idMu   sync.Mutex
	lastID int64
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(submissionRepo repositories.SubmissionRepository) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		now:            time.Now,
	}
}

// Submit records the selection as a new submission at the head of the
// log and returns its id along with the resulting log length.
func (s *submissionService) Submit(ctx context.Context, req *models.SubmissionRequest) (*SubmissionReceipt, error) {
	now := s.now().UTC()

	selectedProducts := req.SelectedProducts
	if selectedProducts == nil {
		selectedProducts = []models.Product{}
	}
	selectedCategories := req.SelectedCategories
	if selectedCategories == nil {
		selectedCategories = []models.Category{}
	}

	submission := models.Submission{
		ID:                 s.nextID(now),
		Timestamp:          now,
		SelectedProducts:   selectedProducts,
		SelectedCategories: selectedCategories,
		TotalCount:         req.TotalCount,
		Status:             models.StatusRecorded,
	}

	count, err := s.submissionRepo.Append(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}

	return &SubmissionReceipt{
		SubmissionID:     submission.ID,
		TotalItems:       submission.TotalCount,
		SubmissionsCount: count,
	}, nil
}

// ListSubmissions retrieves the full log, most recent first
func (s *submissionService) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	return s.submissionRepo.GetAll(ctx)
}

// DeleteSubmission removes the submission with the given id
func (s *submissionService) DeleteSubmission(ctx context.Context, id string) (bool, int, error) {
	return s.submissionRepo.DeleteByID(ctx, id)
}

// nextID mints a unique, sortable submission id from the creation
// time.
func (s *submissionService) nextID(now time.Time) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	return strconv.FormatInt(id, 10)
}
