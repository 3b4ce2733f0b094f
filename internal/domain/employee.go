package domain

import (
	"context"
	"time"
)

type Employee struct {
	ID              int64     `json:"id"`
	NameRu          string    `json:"nameRu" validate:"required,min=2"`
	NameEn          string    `json:"nameEn" validate:"required,min=2"`
	Position        string    `json:"position" validate:"required"`
	EmploymentType  string    `json:"employmentType"`
	EmploymentPlace string    `json:"employmentPlace"`
	Department      string    `json:"department"`
	Email           string    `json:"email" validate:"required,email"`
	StartDate       string    `json:"startDate"` // YYYY-MM-DD, empty when unset
	ResumeURL       string    `json:"resumeUrl"`
	Comments        string    `json:"comments"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type EmployeeRepository interface {
	Fetch(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, employee *Employee) error
	Update(ctx context.Context, id int64, employee *Employee) (*Employee, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type EmployeeUsecase interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	CreateEmployee(ctx context.Context, employee *Employee) error
	UpdateEmployee(ctx context.Context, id int64, employee *Employee) (*Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}
