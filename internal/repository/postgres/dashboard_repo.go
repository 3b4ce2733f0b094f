package postgres

import (
	"context"

	"valletta-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type dashboardRepo struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) domain.DashboardRepository {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) CountActiveCandidates(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM candidates WHERE status NOT IN ('rejected', 'hired', 'archived')`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	return count, err
}

func (r *dashboardRepo) CountOpenVacancies(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM vacancies WHERE status = 'active'`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	return count, err
}

func (r *dashboardRepo) CountWeeklyInterviews(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM interviews WHERE updated_at >= CURRENT_TIMESTAMP - INTERVAL '7 days'`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	return count, err
}
