package postgres

import (
	"context"
	"errors"
	"time"

	"valletta-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeColumns = `
	id, name_ru, name_en, position,
	COALESCE(employment_type, ''), COALESCE(employment_place, ''),
	COALESCE(department, ''), email, start_date,
	COALESCE(resume_url, ''), COALESCE(comments, ''),
	created_at, updated_at`

type employeeRepo struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) domain.EmployeeRepository {
	return &employeeRepo{db: db}
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	var startDate *time.Time

	err := row.Scan(
		&e.ID, &e.NameRu, &e.NameEn, &e.Position,
		&e.EmploymentType, &e.EmploymentPlace,
		&e.Department, &e.Email, &startDate,
		&e.ResumeURL, &e.Comments,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if startDate != nil {
		e.StartDate = startDate.Format("2006-01-02")
	}
	return &e, nil
}

// parseStartDate turns the YYYY-MM-DD API value into a nullable column value.
func parseStartDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *employeeRepo) Fetch(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *employeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	startDate, err := parseStartDate(employee.StartDate)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO employees (
			name_ru, name_en, position, employment_type, employment_place,
			department, email, start_date, resume_url, comments
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(r.db.QueryRow(ctx, query,
		employee.NameRu, employee.NameEn, employee.Position,
		employee.EmploymentType, employee.EmploymentPlace,
		employee.Department, employee.Email, startDate,
		employee.ResumeURL, employee.Comments,
	))
	if err != nil {
		return err
	}

	*employee = *created
	return nil
}

func (r *employeeRepo) Update(ctx context.Context, id int64, employee *domain.Employee) (*domain.Employee, error) {
	startDate, err := parseStartDate(employee.StartDate)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE employees SET
			name_ru = $1, name_en = $2, position = $3, employment_type = $4,
			employment_place = $5, department = $6, email = $7, start_date = $8,
			resume_url = $9, comments = $10, updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(r.db.QueryRow(ctx, query,
		employee.NameRu, employee.NameEn, employee.Position,
		employee.EmploymentType, employee.EmploymentPlace,
		employee.Department, employee.Email, startDate,
		employee.ResumeURL, employee.Comments,
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

func (r *employeeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
