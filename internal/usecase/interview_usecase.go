package usecase

import (
	"context"

	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"
)

type interviewUsecase struct {
	repo          domain.InterviewRepository
	candidateRepo domain.CandidateRepository
}

func NewInterviewUsecase(repo domain.InterviewRepository, candidateRepo domain.CandidateRepository) domain.InterviewUsecase {
	return &interviewUsecase{
		repo:          repo,
		candidateRepo: candidateRepo,
	}
}

func (u *interviewUsecase) GetInterview(ctx context.Context, candidateID int64) (*domain.Interview, error) {
	interview, err := u.repo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, apperror.NotFound("Interview not found")
	}
	return interview, nil
}

func (u *interviewUsecase) SaveInterview(ctx context.Context, interview *domain.Interview) error {
	if interview.CandidateID <= 0 {
		return apperror.BadRequest("candidateId is required")
	}

	// Referential check: the scorecard must hang off an existing candidate.
	// The write itself is a single atomic upsert keyed by candidate_id.
	candidate, err := u.candidateRepo.GetByID(ctx, interview.CandidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return apperror.NotFound("Candidate not found")
	}

	return u.repo.Upsert(ctx, interview)
}

func (u *interviewUsecase) DeleteInterview(ctx context.Context, candidateID int64) error {
	deleted, err := u.repo.Delete(ctx, candidateID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Interview not found")
	}
	return nil
}
