package usecase

import (
	"context"
	"strings"

	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"
	"valletta-hr-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type departmentUsecase struct {
	repo     domain.DepartmentRepository
	validate *validator.Validate
}

func NewDepartmentUsecase(repo domain.DepartmentRepository, validate *validator.Validate) domain.DepartmentUsecase {
	return &departmentUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *departmentUsecase) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return u.repo.Fetch(ctx)
}

func (u *departmentUsecase) CreateDepartment(ctx context.Context, department *domain.Department) error {
	if department.EmployeeIDs == nil {
		department.EmployeeIDs = []int64{}
	}

	if err := u.validate.Struct(department); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	return u.repo.Create(ctx, department)
}

func (u *departmentUsecase) UpdateDepartment(ctx context.Context, id int64, department *domain.Department) (*domain.Department, error) {
	if department.EmployeeIDs == nil {
		department.EmployeeIDs = []int64{}
	}

	if err := u.validate.Struct(department); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	updated, err := u.repo.Update(ctx, id, department)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Department not found")
	}
	return updated, nil
}

func (u *departmentUsecase) DeleteDepartment(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Department not found")
	}
	return nil
}
