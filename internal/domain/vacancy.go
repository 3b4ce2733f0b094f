package domain

import (
	"context"
	"time"
)

// Vacancy statuses.
const (
	VacancyActive = "active"
	VacancyClosed = "closed"
)

// Read-boundary defaults for nullable vacancy columns.
const (
	DefaultCurrency       = "RUB"
	DefaultLocation       = "Москва"
	DefaultEmploymentType = "Полная занятость"
	DefaultClient         = "GlobalBit"
)

type ContactPerson struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Vacancy struct {
	ID               int64         `json:"id,string"`
	Title            string        `json:"title" validate:"required,min=2"`
	Description      string        `json:"description" validate:"required"`
	Requirements     []string      `json:"requirements"`
	Responsibilities []string      `json:"responsibilities"`
	SalaryRangeMin   *int          `json:"salaryRangeMin"`
	SalaryRangeMax   *int          `json:"salaryRangeMax"`
	Currency         string        `json:"currency"`
	Location         string        `json:"location"`
	EmploymentType   string        `json:"employmentType"`
	Status           string        `json:"status" validate:"omitempty,oneof=active closed"`
	Department       string        `json:"department"`
	Level            string        `json:"level"`
	Tags             []string      `json:"tags"`
	Benefits         []string      `json:"benefits"`
	ContactPerson    ContactPerson `json:"contactPerson"`
	Client           string        `json:"client"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// VacancyPatch carries partial-update fields. Nil means "leave the stored
// value alone", including the array fields.
type VacancyPatch struct {
	Title            *string        `json:"title"`
	Description      *string        `json:"description"`
	Requirements     *[]string      `json:"requirements"`
	Responsibilities *[]string      `json:"responsibilities"`
	SalaryRangeMin   *int           `json:"salaryRangeMin"`
	SalaryRangeMax   *int           `json:"salaryRangeMax"`
	Currency         *string        `json:"currency"`
	Location         *string        `json:"location"`
	EmploymentType   *string        `json:"employmentType"`
	Status           *string        `json:"status"`
	Department       *string        `json:"department"`
	Level            *string        `json:"level"`
	Tags             *[]string      `json:"tags"`
	Benefits         *[]string      `json:"benefits"`
	ContactPerson    *ContactPerson `json:"contactPerson"`
	Client           *string        `json:"client"`
}

type VacancyRepository interface {
	Fetch(ctx context.Context) ([]Vacancy, error)
	GetByID(ctx context.Context, id int64) (*Vacancy, error)
	Create(ctx context.Context, vacancy *Vacancy) error
	// Update writes all fields of the merged vacancy, nil, nil when absent.
	Update(ctx context.Context, id int64, vacancy *Vacancy) (*Vacancy, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type VacancyUsecase interface {
	ListVacancies(ctx context.Context) ([]Vacancy, error)
	GetVacancy(ctx context.Context, id int64) (*Vacancy, error)
	CreateVacancy(ctx context.Context, vacancy *Vacancy) error
	PatchVacancy(ctx context.Context, id int64, patch *VacancyPatch) (*Vacancy, error)
	DeleteVacancy(ctx context.Context, id int64) error
}
