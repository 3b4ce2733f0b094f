package usecase

import (
	"context"
	"strings"

	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"
	"valletta-hr-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type employeeUsecase struct {
	repo     domain.EmployeeRepository
	validate *validator.Validate
}

func NewEmployeeUsecase(repo domain.EmployeeRepository, validate *validator.Validate) domain.EmployeeUsecase {
	return &employeeUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *employeeUsecase) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return u.repo.Fetch(ctx)
}

func (u *employeeUsecase) CreateEmployee(ctx context.Context, employee *domain.Employee) error {
	if err := u.validate.Struct(employee); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	return u.repo.Create(ctx, employee)
}

func (u *employeeUsecase) UpdateEmployee(ctx context.Context, id int64, employee *domain.Employee) (*domain.Employee, error) {
	if err := u.validate.Struct(employee); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	updated, err := u.repo.Update(ctx, id, employee)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Employee not found")
	}
	return updated, nil
}

func (u *employeeUsecase) DeleteEmployee(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Employee not found")
	}
	return nil
}
