package usecase_test

import (
	"context"
	"testing"

	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/internal/usecase"
	"valletta-hr-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) Update(ctx context.Context, id int64, candidate *domain.Candidate) (*domain.Candidate, error) {
	args := m.Called(ctx, id, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) GetByCandidateID(ctx context.Context, candidateID int64) (*domain.Interview, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) Upsert(ctx context.Context, interview *domain.Interview) error {
	return m.Called(ctx, interview).Error(0)
}

func (m *MockInterviewRepo) Delete(ctx context.Context, candidateID int64) (bool, error) {
	args := m.Called(ctx, candidateID)
	return args.Bool(0), args.Error(1)
}

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Fetch(ctx context.Context) ([]domain.Vacancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	return m.Called(ctx, vacancy).Error(0)
}

func (m *MockVacancyRepo) Update(ctx context.Context, id int64, vacancy *domain.Vacancy) (*domain.Vacancy, error) {
	args := m.Called(ctx, id, vacancy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockDashboardRepo struct {
	mock.Mock
}

func (m *MockDashboardRepo) CountActiveCandidates(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepo) CountOpenVacancies(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepo) CountWeeklyInterviews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func validCandidate() *domain.Candidate {
	return &domain.Candidate{
		NameRu:  "Иван Петров",
		NameEn:  "Ivan Petrov",
		Email:   "ivan@example.com",
		Vacancy: "Go Developer",
	}
}

func TestCandidateCreateDefaults(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	validate := validator.New()
	uc := usecase.NewCandidateUsecase(mockRepo, validate)
	ctx := context.Background()

	t.Run("Should default status and currency when omitted", func(t *testing.T) {
		candidate := validCandidate()

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Candidate)
			assert.Equal(t, domain.StatusNew, c.Status)
			assert.Equal(t, "USD", c.SalaryCurrency)
		}).Once()

		err := uc.CreateCandidate(ctx, candidate)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should keep an explicit status", func(t *testing.T) {
		candidate := validCandidate()
		candidate.Status = domain.StatusScreening

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Candidate)
			assert.Equal(t, domain.StatusScreening, c.Status)
		}).Once()

		err := uc.CreateCandidate(ctx, candidate)
		assert.NoError(t, err)
	})
}

func TestCandidateCreateValidation(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	validate := validator.New()
	uc := usecase.NewCandidateUsecase(mockRepo, validate)
	ctx := context.Background()

	t.Run("Should fail when required fields are missing", func(t *testing.T) {
		err := uc.CreateCandidate(ctx, &domain.Candidate{Email: "ivan@example.com"})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should fail on an unknown status", func(t *testing.T) {
		candidate := validCandidate()
		candidate.Status = "promoted"

		err := uc.CreateCandidate(ctx, candidate)
		assert.Error(t, err)
	})

	t.Run("Should fail on a malformed email", func(t *testing.T) {
		candidate := validCandidate()
		candidate.Email = "not-an-email"

		err := uc.CreateCandidate(ctx, candidate)
		assert.Error(t, err)
	})
}

func TestCandidateUpdate(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Should return 404 when the candidate does not exist", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validate)

		candidate := validCandidate()
		candidate.Status = domain.StatusInterviewing
		mockRepo.On("Update", ctx, int64(42), mock.AnythingOfType("*domain.Candidate")).Return(nil, nil)

		_, err := uc.UpdateCandidate(ctx, 42, candidate)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should accept any status replacing any other", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validate)

		candidate := validCandidate()
		candidate.Status = domain.StatusHired
		updated := *candidate
		updated.ID = 7
		mockRepo.On("Update", ctx, int64(7), mock.AnythingOfType("*domain.Candidate")).Return(&updated, nil)

		got, err := uc.UpdateCandidate(ctx, 7, candidate)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusHired, got.Status)
	})
}

func TestCandidateDelete(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should return the deleted snapshot", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validate)

		snapshot := validCandidate()
		snapshot.ID = 3
		mockRepo.On("Delete", ctx, int64(3)).Return(snapshot, nil)

		got, err := uc.DeleteCandidate(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
	})

	t.Run("Should return 404 when nothing was deleted", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validate)

		mockRepo.On("Delete", ctx, int64(99)).Return(nil, nil)

		_, err := uc.DeleteCandidate(ctx, 99)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestInterviewSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a missing candidateId", func(t *testing.T) {
		mockRepo := new(MockInterviewRepo)
		mockCandidates := new(MockCandidateRepo)
		uc := usecase.NewInterviewUsecase(mockRepo, mockCandidates)

		err := uc.SaveInterview(ctx, &domain.Interview{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "candidateId")
		mockCandidates.AssertNotCalled(t, "GetByID")
	})

	t.Run("Should fail when the candidate does not exist", func(t *testing.T) {
		mockRepo := new(MockInterviewRepo)
		mockCandidates := new(MockCandidateRepo)
		uc := usecase.NewInterviewUsecase(mockRepo, mockCandidates)

		mockCandidates.On("GetByID", ctx, int64(5)).Return(nil, nil)

		err := uc.SaveInterview(ctx, &domain.Interview{CandidateID: 5})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		mockRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("Should upsert for an existing candidate", func(t *testing.T) {
		mockRepo := new(MockInterviewRepo)
		mockCandidates := new(MockCandidateRepo)
		uc := usecase.NewInterviewUsecase(mockRepo, mockCandidates)

		candidate := validCandidate()
		candidate.ID = 5
		mockCandidates.On("GetByID", ctx, int64(5)).Return(candidate, nil)
		mockRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Interview")).Return(nil)

		interview := &domain.Interview{
			CandidateID: 5,
			Screening:   domain.ScreeningSection{Motivation: "интересный стек"},
		}
		err := uc.SaveInterview(ctx, interview)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestInterviewGetAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return 404 when no scorecard exists", func(t *testing.T) {
		mockRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(mockRepo, new(MockCandidateRepo))

		mockRepo.On("GetByCandidateID", ctx, int64(8)).Return(nil, nil)

		_, err := uc.GetInterview(ctx, 8)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should return 404 on deleting a missing scorecard", func(t *testing.T) {
		mockRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(mockRepo, new(MockCandidateRepo))

		mockRepo.On("Delete", ctx, int64(8)).Return(false, nil)

		err := uc.DeleteInterview(ctx, 8)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestVacancyCreateDefaults(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Should default status, currency and client", func(t *testing.T) {
		mockRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(mockRepo, validate)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Vacancy")).Return(nil).Run(func(args mock.Arguments) {
			v := args.Get(1).(*domain.Vacancy)
			assert.Equal(t, domain.VacancyActive, v.Status)
			assert.Equal(t, domain.DefaultCurrency, v.Currency)
			assert.Equal(t, domain.DefaultClient, v.Client)
		})

		err := uc.CreateVacancy(ctx, &domain.Vacancy{Title: "Go Developer", Description: "Бэкенд"})
		assert.NoError(t, err)
	})

	t.Run("Should reject an inverted salary range", func(t *testing.T) {
		mockRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(mockRepo, validate)

		min, max := 300000, 200000
		err := uc.CreateVacancy(ctx, &domain.Vacancy{
			Title:          "Go Developer",
			Description:    "Бэкенд",
			SalaryRangeMin: &min,
			SalaryRangeMax: &max,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "salaryRangeMin")
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestVacancyPatchMerge(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	stored := func() *domain.Vacancy {
		return &domain.Vacancy{
			ID:           10,
			Title:        "Go Developer",
			Description:  "Бэкенд",
			Requirements: []string{"Go", "PostgreSQL"},
			Tags:         []string{"remote"},
			Status:       domain.VacancyActive,
			Currency:     domain.DefaultCurrency,
			Client:       domain.DefaultClient,
		}
	}

	t.Run("Should keep omitted array fields intact", func(t *testing.T) {
		mockRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, int64(10)).Return(stored(), nil)
		mockRepo.On("Update", ctx, int64(10), mock.AnythingOfType("*domain.Vacancy")).Return(stored(), nil).Run(func(args mock.Arguments) {
			v := args.Get(2).(*domain.Vacancy)
			assert.Equal(t, "Senior Go Developer", v.Title)
			assert.Equal(t, []string{"Go", "PostgreSQL"}, v.Requirements)
			assert.Equal(t, []string{"remote"}, v.Tags)
		})

		title := "Senior Go Developer"
		_, err := uc.PatchVacancy(ctx, 10, &domain.VacancyPatch{Title: &title})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should replace an array field when supplied", func(t *testing.T) {
		mockRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, int64(10)).Return(stored(), nil)
		mockRepo.On("Update", ctx, int64(10), mock.AnythingOfType("*domain.Vacancy")).Return(stored(), nil).Run(func(args mock.Arguments) {
			v := args.Get(2).(*domain.Vacancy)
			assert.Equal(t, []string{"Go"}, v.Requirements)
		})

		reqs := []string{"Go"}
		_, err := uc.PatchVacancy(ctx, 10, &domain.VacancyPatch{Requirements: &reqs})
		assert.NoError(t, err)
	})

	t.Run("Should return 404 when the vacancy does not exist", func(t *testing.T) {
		mockRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, int64(77)).Return(nil, nil)

		title := "x"
		_, err := uc.PatchVacancy(ctx, 77, &domain.VacancyPatch{Title: &title})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestDashboardAggregation(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockDashboardRepo)
	uc := usecase.NewDashboardUsecase(mockRepo)

	mockRepo.On("CountActiveCandidates", ctx).Return(int64(12), nil)
	mockRepo.On("CountOpenVacancies", ctx).Return(int64(4), nil)
	mockRepo.On("CountWeeklyInterviews", ctx).Return(int64(6), nil)

	data, err := uc.GetDashboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), data.Stats.ActiveCandidatesCount)
	assert.Equal(t, int64(4), data.Stats.OpenVacanciesCount)
	assert.Equal(t, int64(6), data.Stats.WeeklyInterviewsCount)
}
