package postgres

import (
	"context"
	"errors"

	"valletta-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const departmentColumns = `
	id, name, type, COALESCE(description, ''), COALESCE(client, ''),
	employee_ids, created_at, updated_at`

type departmentRepo struct {
	db *pgxpool.Pool
}

func NewDepartmentRepository(db *pgxpool.Pool) domain.DepartmentRepository {
	return &departmentRepo{db: db}
}

func scanDepartment(row pgx.Row) (*domain.Department, error) {
	var d domain.Department
	var employeeIDs []int64

	err := row.Scan(
		&d.ID, &d.Name, &d.Type, &d.Description, &d.Client,
		pq.Array(&employeeIDs), &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if employeeIDs == nil {
		employeeIDs = []int64{}
	}
	d.EmployeeIDs = employeeIDs
	d.EmployeeCount = len(employeeIDs)
	return &d, nil
}

func (r *departmentRepo) Fetch(ctx context.Context) ([]domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := []domain.Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *d)
	}
	return departments, rows.Err()
}

func (r *departmentRepo) Create(ctx context.Context, department *domain.Department) error {
	query := `
		INSERT INTO departments (name, type, description, client, employee_ids)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + departmentColumns

	created, err := scanDepartment(r.db.QueryRow(ctx, query,
		department.Name, department.Type, department.Description,
		department.Client, pq.Array(department.EmployeeIDs),
	))
	if err != nil {
		return err
	}

	*department = *created
	return nil
}

func (r *departmentRepo) Update(ctx context.Context, id int64, department *domain.Department) (*domain.Department, error) {
	query := `
		UPDATE departments SET
			name = $1, type = $2, description = $3, client = $4,
			employee_ids = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING ` + departmentColumns

	updated, err := scanDepartment(r.db.QueryRow(ctx, query,
		department.Name, department.Type, department.Description,
		department.Client, pq.Array(department.EmployeeIDs),
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

func (r *departmentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
