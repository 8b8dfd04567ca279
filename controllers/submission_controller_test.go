package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blogem/export-portal/models"
	"github.com/blogem/export-portal/repositories/mocks"
	"github.com/blogem/export-portal/services"
)

func setupSubmissionController(t *testing.T) (*SubmissionController, *mocks.MockSubmissionRepository) {
	mockRepo := mocks.NewMockSubmissionRepository(t)
	srvs := &services.Services{
		Submission: services.NewSubmissionService(mockRepo),
	}
	return NewSubmissionController(srvs), mockRepo
}

func TestSubmit_ReturnsReceipt(t *testing.T) {
	ctrl, mockRepo := setupSubmissionController(t)
	mockRepo.On("Append", mock.Anything, mock.Anything).Return(5, nil)

	body := `{"selectedProducts":[{"id":1}],"selectedCategories":[],"totalCount":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ctrl.Submit(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SubmitResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.SubmissionID)
	assert.Equal(t, 1, resp.TotalItems)
	assert.Equal(t, 5, resp.SubmissionsCount)
}

func TestSubmit_PersistenceFailureIsNotSuccess(t *testing.T) {
	ctrl, mockRepo := setupSubmissionController(t)
	mockRepo.On("Append", mock.Anything, mock.Anything).Return(0, errors.New("disk full"))

	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(`{"totalCount":2}`))
	rec := httptest.NewRecorder()

	ctrl.Submit(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to submit data", resp.Error)
}

func TestSubmit_InvalidBody(t *testing.T) {
	ctrl, _ := setupSubmissionController(t)

	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	ctrl.Submit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestSubmit_NegativeTotalCountRejected(t *testing.T) {
	ctrl, _ := setupSubmissionController(t)

	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(`{"totalCount":-1}`))
	rec := httptest.NewRecorder()

	ctrl.Submit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete_ReportsOutcome(t *testing.T) {
	ctrl, mockRepo := setupSubmissionController(t)
	mockRepo.On("DeleteByID", mock.Anything, "123").Return(false, 3, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/submissions/123", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "123")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	ctrl.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.DeleteResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Deleted)
	assert.Equal(t, 3, resp.Remaining)
}

func TestList_DegradesToEmpty(t *testing.T) {
	ctrl, mockRepo := setupSubmissionController(t)
	mockRepo.On("GetAll", mock.Anything).Return(nil, errors.New("unreadable"))

	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	rec := httptest.NewRecorder()

	ctrl.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
