package usecase

import (
	"context"
	"strings"

	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/apperror"
	"valletta-hr-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type vacancyUsecase struct {
	repo     domain.VacancyRepository
	validate *validator.Validate
}

func NewVacancyUsecase(repo domain.VacancyRepository, validate *validator.Validate) domain.VacancyUsecase {
	return &vacancyUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *vacancyUsecase) ListVacancies(ctx context.Context) ([]domain.Vacancy, error) {
	return u.repo.Fetch(ctx)
}

func (u *vacancyUsecase) GetVacancy(ctx context.Context, id int64) (*domain.Vacancy, error) {
	vacancy, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, apperror.NotFound("Vacancy not found")
	}
	return vacancy, nil
}

func (u *vacancyUsecase) CreateVacancy(ctx context.Context, vacancy *domain.Vacancy) error {
	if vacancy.Status == "" {
		vacancy.Status = domain.VacancyActive
	}
	if vacancy.Currency == "" {
		vacancy.Currency = domain.DefaultCurrency
	}
	if vacancy.Client == "" {
		vacancy.Client = domain.DefaultClient
	}
	if vacancy.SalaryRangeMin != nil && vacancy.SalaryRangeMax != nil &&
		*vacancy.SalaryRangeMin > *vacancy.SalaryRangeMax {
		return apperror.BadRequest("salaryRangeMin cannot be greater than salaryRangeMax")
	}

	if err := u.validate.Struct(vacancy); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	return u.repo.Create(ctx, vacancy)
}

// PatchVacancy merges supplied fields over the stored row. Omitted fields,
// array fields included, keep their stored values.
func (u *vacancyUsecase) PatchVacancy(ctx context.Context, id int64, patch *domain.VacancyPatch) (*domain.Vacancy, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.NotFound("Vacancy not found")
	}

	applyVacancyPatch(current, patch)

	if err := u.validate.Struct(current); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	updated, err := u.repo.Update(ctx, id, current)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Vacancy not found")
	}
	return updated, nil
}

func (u *vacancyUsecase) DeleteVacancy(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Vacancy not found")
	}
	return nil
}

func applyVacancyPatch(v *domain.Vacancy, p *domain.VacancyPatch) {
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Requirements != nil {
		v.Requirements = *p.Requirements
	}
	if p.Responsibilities != nil {
		v.Responsibilities = *p.Responsibilities
	}
	if p.SalaryRangeMin != nil {
		v.SalaryRangeMin = p.SalaryRangeMin
	}
	if p.SalaryRangeMax != nil {
		v.SalaryRangeMax = p.SalaryRangeMax
	}
	if p.Currency != nil {
		v.Currency = *p.Currency
	}
	if p.Location != nil {
		v.Location = *p.Location
	}
	if p.EmploymentType != nil {
		v.EmploymentType = *p.EmploymentType
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.Department != nil {
		v.Department = *p.Department
	}
	if p.Level != nil {
		v.Level = *p.Level
	}
	if p.Tags != nil {
		v.Tags = *p.Tags
	}
	if p.Benefits != nil {
		v.Benefits = *p.Benefits
	}
	if p.ContactPerson != nil {
		v.ContactPerson = *p.ContactPerson
	}
	if p.Client != nil {
		v.Client = *p.Client
	}
}
