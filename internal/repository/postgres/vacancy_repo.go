package postgres

import (
	"context"
	"errors"

	"valletta-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// Nullable vacancy columns are normalized here, at the read boundary, so
// every caller sees the same defaults.
const vacancyColumns = `
	id, title, description, requirements, responsibilities,
	salary_range_min, salary_range_max,
	COALESCE(currency, 'RUB'), COALESCE(location, 'Москва'),
	COALESCE(employment_type, 'Полная занятость'), status,
	COALESCE(department, ''), COALESCE(level, ''), tags, benefits,
	COALESCE(contact_person_name, ''), COALESCE(contact_person_email, ''),
	COALESCE(contact_person_phone, ''), COALESCE(client, 'GlobalBit'),
	created_at, updated_at`

type vacancyRepo struct {
	db *pgxpool.Pool
}

func NewVacancyRepository(db *pgxpool.Pool) domain.VacancyRepository {
	return &vacancyRepo{db: db}
}

func scanVacancy(row pgx.Row) (*domain.Vacancy, error) {
	var v domain.Vacancy
	var requirements, responsibilities, tags, benefits []string

	err := row.Scan(
		&v.ID, &v.Title, &v.Description,
		pq.Array(&requirements), pq.Array(&responsibilities),
		&v.SalaryRangeMin, &v.SalaryRangeMax,
		&v.Currency, &v.Location,
		&v.EmploymentType, &v.Status,
		&v.Department, &v.Level,
		pq.Array(&tags), pq.Array(&benefits),
		&v.ContactPerson.Name, &v.ContactPerson.Email,
		&v.ContactPerson.Phone, &v.Client,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.Requirements = emptyIfNil(requirements)
	v.Responsibilities = emptyIfNil(responsibilities)
	v.Tags = emptyIfNil(tags)
	v.Benefits = emptyIfNil(benefits)
	return &v, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (r *vacancyRepo) Fetch(ctx context.Context) ([]domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vacancies := []domain.Vacancy{}
	for rows.Next() {
		v, err := scanVacancy(rows)
		if err != nil {
			return nil, err
		}
		vacancies = append(vacancies, *v)
	}
	return vacancies, rows.Err()
}

func (r *vacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE id = $1`

	v, err := scanVacancy(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

func (r *vacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	query := `
		INSERT INTO vacancies (
			title, description, requirements, responsibilities,
			salary_range_min, salary_range_max, currency, location,
			employment_type, status, department, level, tags, benefits,
			contact_person_name, contact_person_email, contact_person_phone, client
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + vacancyColumns

	created, err := scanVacancy(r.db.QueryRow(ctx, query,
		vacancy.Title, vacancy.Description,
		pq.Array(vacancy.Requirements), pq.Array(vacancy.Responsibilities),
		vacancy.SalaryRangeMin, vacancy.SalaryRangeMax,
		vacancy.Currency, vacancy.Location,
		vacancy.EmploymentType, vacancy.Status,
		vacancy.Department, vacancy.Level,
		pq.Array(vacancy.Tags), pq.Array(vacancy.Benefits),
		vacancy.ContactPerson.Name, vacancy.ContactPerson.Email,
		vacancy.ContactPerson.Phone, vacancy.Client,
	))
	if err != nil {
		return err
	}

	*vacancy = *created
	return nil
}

func (r *vacancyRepo) Update(ctx context.Context, id int64, vacancy *domain.Vacancy) (*domain.Vacancy, error) {
	query := `
		UPDATE vacancies SET
			title = $1, description = $2, requirements = $3, responsibilities = $4,
			salary_range_min = $5, salary_range_max = $6, currency = $7,
			location = $8, employment_type = $9, status = $10, department = $11,
			level = $12, tags = $13, benefits = $14, contact_person_name = $15,
			contact_person_email = $16, contact_person_phone = $17, client = $18,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $19
		RETURNING ` + vacancyColumns

	updated, err := scanVacancy(r.db.QueryRow(ctx, query,
		vacancy.Title, vacancy.Description,
		pq.Array(vacancy.Requirements), pq.Array(vacancy.Responsibilities),
		vacancy.SalaryRangeMin, vacancy.SalaryRangeMax,
		vacancy.Currency, vacancy.Location,
		vacancy.EmploymentType, vacancy.Status,
		vacancy.Department, vacancy.Level,
		pq.Array(vacancy.Tags), pq.Array(vacancy.Benefits),
		vacancy.ContactPerson.Name, vacancy.ContactPerson.Email,
		vacancy.ContactPerson.Phone, vacancy.Client,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return updated, nil
}

func (r *vacancyRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
