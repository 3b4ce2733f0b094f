package usecase

import (
	"context"
	"strings"

	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"
	"valletta-hr-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	return u.repo.Fetch(ctx)
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, candidate *domain.Candidate) error {
	if candidate.Status == "" {
		candidate.Status = domain.StatusNew
	}
	if candidate.SalaryCurrency == "" {
		candidate.SalaryCurrency = "USD"
	}

	if err := u.validate.Struct(candidate); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	return u.repo.Create(ctx, candidate)
}

func (u *candidateUsecase) UpdateCandidate(ctx context.Context, id int64, candidate *domain.Candidate) (*domain.Candidate, error) {
	if candidate.SalaryCurrency == "" {
		candidate.SalaryCurrency = "USD"
	}

	if err := u.validate.Struct(candidate); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	updated, err := u.repo.Update(ctx, id, candidate)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return updated, nil
}

func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	// The candidate's interview row is intentionally left behind; interview
	// history outlives the pipeline record.
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return deleted, nil
}
