package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Candidate pipeline statuses. The status field carries no transition
// rules: any value may replace any other on update.
const (
	StatusNew          = "new"
	StatusScreening    = "screening"
	StatusInterviewing = "interviewing"
	StatusTestTask     = "test_task"
	StatusOffered      = "offered"
	StatusRejected     = "rejected"
	StatusHired        = "hired"
	StatusArchived     = "archived"
)

type Candidate struct {
	ID                  int64      `json:"id"`
	NameRu              string     `json:"nameRu" validate:"required,min=2"`
	NameEn              string     `json:"nameEn" validate:"required,min=2"`
	Email               string     `json:"email" validate:"required,email"`
	Vacancy             string     `json:"vacancy" validate:"required,min=2"`
	ResumeFileName      string     `json:"resumeFileName"`
	ResumeFileURL       string     `json:"resumeFileUrl"`
	InterviewFile       string     `json:"interviewFile"`
	TechStack           string     `json:"techStack"`
	Status              string     `json:"status" validate:"required,oneof=new screening interviewing test_task offered rejected hired archived"`
	StatusComment       string     `json:"statusComment"`
	ScreeningDate       *time.Time `json:"screeningDate"`
	Recruiter           string     `json:"recruiter"`
	Telegram            string     `json:"telegram"`
	Skype               string     `json:"skype"`
	Phone               string     `json:"phone"`
	LocationCityCountry string     `json:"locationCityCountry"`
	EnglishLevel        string     `json:"englishLevel"`
	MinSalary           *int       `json:"minSalary"`
	MaxSalary           *int       `json:"maxSalary"`
	SalaryCurrency      string     `json:"salaryCurrency"`
	Comments            string     `json:"comments"`
	StatusUpdatedAt     time.Time  `json:"statusUpdatedAt"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

type CandidateRepository interface {
	Fetch(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	// Update replaces all mutable fields and bumps status_updated_at and
	// updated_at to server time. Returns nil, nil when the row is absent.
	Update(ctx context.Context, id int64, candidate *Candidate) (*Candidate, error)
	// Delete removes the row and returns its last snapshot, nil when absent.
	// The candidate's interview row is left in place (orphan).
	Delete(ctx context.Context, id int64) (*Candidate, error)
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context) ([]Candidate, error)
	CreateCandidate(ctx context.Context, candidate *Candidate) error
	UpdateCandidate(ctx context.Context, id int64, candidate *Candidate) (*Candidate, error)
	DeleteCandidate(ctx context.Context, id int64) (*Candidate, error)
}
