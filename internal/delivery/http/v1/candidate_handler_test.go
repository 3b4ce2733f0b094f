package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"valletta-hr-backend/internal/delivery/http/middleware"
	"valletta-hr-backend/internal/delivery/http/response"
	v1 "valletta-hr-backend/internal/delivery/http/v1"
	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCandidateUsecase struct {
	mock.Mock
}

func (m *MockCandidateUsecase) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) CreateCandidate(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateUsecase) UpdateCandidate(ctx context.Context, id int64, candidate *domain.Candidate) (*domain.Candidate, error) {
	args := m.Called(ctx, id, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) DeleteCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func setupCandidateRouter(uc domain.CandidateUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(false))
	v1.NewCandidateHandler(r.Group("/api/v1"), uc)
	return r
}

func TestCandidateListEnvelope(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	router := setupCandidateRouter(mockUC)

	mockUC.On("ListCandidates", mock.Anything).Return([]domain.Candidate{
		{ID: 1, NameRu: "Иван Петров", NameEn: "Ivan Petrov", Email: "ivan@example.com", Vacancy: "Go Developer", Status: domain.StatusNew},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/candidates", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body response.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.RequestID)
}

func TestCandidateCreateStatus(t *testing.T) {
	t.Run("Returns 201 with the created candidate", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		router := setupCandidateRouter(mockUC)

		mockUC.On("CreateCandidate", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil)

		payload, _ := json.Marshal(map[string]string{
			"nameRu":  "Иван Петров",
			"nameEn":  "Ivan Petrov",
			"email":   "ivan@example.com",
			"vacancy": "Go Developer",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/candidates", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Maps usecase errors through the envelope", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		router := setupCandidateRouter(mockUC)

		mockUC.On("CreateCandidate", mock.Anything, mock.AnythingOfType("*domain.Candidate")).
			Return(apperror.Conflict("Email already exists"))

		payload, _ := json.Marshal(map[string]string{
			"nameRu":  "Иван Петров",
			"nameEn":  "Ivan Petrov",
			"email":   "ivan@example.com",
			"vacancy": "Go Developer",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/candidates", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body response.Response
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Email already exists", body.Message)
	})
}

func TestCandidateUpdateErrors(t *testing.T) {
	t.Run("Rejects a non-numeric id", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		router := setupCandidateRouter(mockUC)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/candidates/abc", bytes.NewReader([]byte("{}")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "UpdateCandidate")
	})

	t.Run("Returns 404 for a missing candidate", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		router := setupCandidateRouter(mockUC)

		mockUC.On("UpdateCandidate", mock.Anything, int64(42), mock.AnythingOfType("*domain.Candidate")).
			Return(nil, apperror.NotFound("Candidate not found"))

		payload, _ := json.Marshal(map[string]string{
			"nameRu":  "Иван Петров",
			"nameEn":  "Ivan Petrov",
			"email":   "ivan@example.com",
			"vacancy": "Go Developer",
			"status":  "screening",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/candidates/42", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRequestIDPassthrough(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	router := setupCandidateRouter(mockUC)

	mockUC.On("ListCandidates", mock.Anything).Return([]domain.Candidate{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/candidates", nil)
	req.Header.Set("X-Request-ID", "test-req-123")
	router.ServeHTTP(w, req)

	var body response.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "test-req-123", body.RequestID)
}
