package usecase

import (
	"context"

	"valletta-hr-backend/internal/domain"
)

type dashboardUsecase struct {
	repo domain.DashboardRepository
}

func NewDashboardUsecase(repo domain.DashboardRepository) domain.DashboardUsecase {
	return &dashboardUsecase{repo: repo}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context) (*domain.DashboardData, error) {
	active, err := u.repo.CountActiveCandidates(ctx)
	if err != nil {
		return nil, err
	}
	open, err := u.repo.CountOpenVacancies(ctx)
	if err != nil {
		return nil, err
	}
	weekly, err := u.repo.CountWeeklyInterviews(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardData{
		Stats: domain.DashboardStats{
			ActiveCandidatesCount: active,
			OpenVacanciesCount:    open,
			WeeklyInterviewsCount: weekly,
		},
	}, nil
}
