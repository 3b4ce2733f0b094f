package domain

import "context"

// DashboardStats is computed from live rows, not cached.
type DashboardStats struct {
	ActiveCandidatesCount int64 `json:"activeCandidatesCount"`
	OpenVacanciesCount    int64 `json:"openVacanciesCount"`
	WeeklyInterviewsCount int64 `json:"weeklyInterviewsCount"`
}

type DashboardData struct {
	Stats DashboardStats `json:"stats"`
}

type DashboardRepository interface {
	// CountActiveCandidates counts candidates still in the pipeline, i.e.
	// not rejected, hired or archived.
	CountActiveCandidates(ctx context.Context) (int64, error)
	CountOpenVacancies(ctx context.Context) (int64, error)
	// CountWeeklyInterviews counts interview rows touched in the last 7 days.
	CountWeeklyInterviews(ctx context.Context) (int64, error)
}

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*DashboardData, error)
}
