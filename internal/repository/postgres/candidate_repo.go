package postgres

import (
	"context"
	"errors"

	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const pgUniqueViolation = "23505"

// candidateColumns is the stable column order shared by every candidate
// query; scanCandidate must match it.
const candidateColumns = `
	id, name_ru, name_en, email, vacancy,
	COALESCE(resume_file_name, ''), COALESCE(resume_file_url, ''),
	COALESCE(interview_file, ''), COALESCE(tech_stack, ''),
	status, COALESCE(status_comment, ''), screening_date,
	COALESCE(recruiter, ''), COALESCE(telegram, ''), COALESCE(skype, ''),
	COALESCE(phone, ''), COALESCE(location_city_country, ''),
	COALESCE(english_level, ''), min_salary, max_salary,
	COALESCE(salary_currency, 'USD'), COALESCE(comments, ''),
	status_updated_at, created_at, updated_at`

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.NameRu, &c.NameEn, &c.Email, &c.Vacancy,
		&c.ResumeFileName, &c.ResumeFileURL,
		&c.InterviewFile, &c.TechStack,
		&c.Status, &c.StatusComment, &c.ScreeningDate,
		&c.Recruiter, &c.Telegram, &c.Skype,
		&c.Phone, &c.LocationCityCountry,
		&c.EnglishLevel, &c.MinSalary, &c.MaxSalary,
		&c.SalaryCurrency, &c.Comments,
		&c.StatusUpdatedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepo) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (
			name_ru, name_en, email, vacancy, resume_file_name, resume_file_url,
			interview_file, tech_stack, status, status_comment, screening_date,
			recruiter, telegram, skype, phone, location_city_country,
			english_level, min_salary, max_salary, salary_currency, comments
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING ` + candidateColumns

	created, err := scanCandidate(r.db.QueryRow(ctx, query,
		candidate.NameRu, candidate.NameEn, candidate.Email, candidate.Vacancy,
		candidate.ResumeFileName, candidate.ResumeFileURL,
		candidate.InterviewFile, candidate.TechStack,
		candidate.Status, candidate.StatusComment, candidate.ScreeningDate,
		candidate.Recruiter, candidate.Telegram, candidate.Skype, candidate.Phone,
		candidate.LocationCityCountry, candidate.EnglishLevel,
		candidate.MinSalary, candidate.MaxSalary, candidate.SalaryCurrency,
		candidate.Comments,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Email already exists")
		}
		return err
	}

	*candidate = *created
	return nil
}

func (r *candidateRepo) Update(ctx context.Context, id int64, candidate *domain.Candidate) (*domain.Candidate, error) {
	// status_updated_at bumps on every update, whether or not the status
	// value changed. Observed behavior, kept as-is.
	query := `
		UPDATE candidates SET
			name_ru = $1, name_en = $2, email = $3, vacancy = $4,
			resume_file_name = $5, resume_file_url = $6, interview_file = $7,
			tech_stack = $8, status = $9, status_comment = $10,
			screening_date = $11, recruiter = $12, telegram = $13, skype = $14,
			phone = $15, location_city_country = $16, english_level = $17,
			min_salary = $18, max_salary = $19, salary_currency = $20,
			comments = $21,
			status_updated_at = CURRENT_TIMESTAMP,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $22
		RETURNING ` + candidateColumns

	updated, err := scanCandidate(r.db.QueryRow(ctx, query,
		candidate.NameRu, candidate.NameEn, candidate.Email, candidate.Vacancy,
		candidate.ResumeFileName, candidate.ResumeFileURL, candidate.InterviewFile,
		candidate.TechStack, candidate.Status, candidate.StatusComment,
		candidate.ScreeningDate, candidate.Recruiter, candidate.Telegram,
		candidate.Skype, candidate.Phone, candidate.LocationCityCountry,
		candidate.EnglishLevel, candidate.MinSalary, candidate.MaxSalary,
		candidate.SalaryCurrency, candidate.Comments,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.Conflict("Email already exists")
		}
		return nil, err
	}
	return updated, nil
}

func (r *candidateRepo) Delete(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `DELETE FROM candidates WHERE id = $1 RETURNING ` + candidateColumns

	deleted, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return deleted, nil
}
