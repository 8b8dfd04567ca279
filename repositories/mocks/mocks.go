// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/blogem/export-portal/models"
)

// MockProductRepository is a mock ProductRepository
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock wired to the test lifecycle
func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductRepository) EnsureSeeded(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

// MockCategoryRepository is a mock CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a mock wired to the test lifecycle
func NewMockCategoryRepository(t *testing.T) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCategoryRepository) EnsureSeeded(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

// MockSubmissionRepository is a mock SubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

// NewMockSubmissionRepository creates a mock wired to the test lifecycle
func NewMockSubmissionRepository(t *testing.T) *MockSubmissionRepository {
	m := &MockSubmissionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSubmissionRepository) Append(ctx context.Context, submission models.Submission) (int, error) {
	args := m.Called(ctx, submission)
	return args.Int(0), args.Error(1)
}

func (m *MockSubmissionRepository) GetAll(ctx context.Context) ([]models.Submission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) DeleteByID(ctx context.Context, id string) (bool, int, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Int(1), args.Error(2)
}
