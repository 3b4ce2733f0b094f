package domain

import (
	"context"
	"time"
)

// Department doubles as a project record; type tells the two apart.
const (
	DepartmentTypeUnit    = "Отдел"
	DepartmentTypeProject = "Проект"
)

type Department struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name" validate:"required,min=2"`
	Type        string    `json:"type" validate:"required,oneof=Отдел Проект"`
	Description string    `json:"description"`
	Client      string    `json:"client"`
	EmployeeIDs []int64   `json:"employeeIds"`
	// Derived from EmployeeIDs at the read boundary, never stored.
	EmployeeCount int       `json:"employeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type DepartmentRepository interface {
	Fetch(ctx context.Context) ([]Department, error)
	Create(ctx context.Context, department *Department) error
	Update(ctx context.Context, id int64, department *Department) (*Department, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type DepartmentUsecase interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	CreateDepartment(ctx context.Context, department *Department) error
	UpdateDepartment(ctx context.Context, id int64, department *Department) (*Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
}
