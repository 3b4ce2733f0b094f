package domain

import (
	"context"
	"time"
)

// Interview is the single scorecard attached to one candidate. Storage is
// flat columns; the API reshapes them into the three sections below with
// missing values normalized to empty strings.
type Interview struct {
	ID          int64            `json:"id"`
	CandidateID int64            `json:"candidateId" validate:"required"`
	Screening   ScreeningSection `json:"screening"`
	Technical   TechnicalSection `json:"technical"`
	Final       FinalSection     `json:"final"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type ScreeningSection struct {
	Motivation         string `json:"motivation"`
	ExpectedSalary     string `json:"expectedSalary"`
	NoticeTime         string `json:"noticeTime"`
	WorkFormat         string `json:"workFormat"`
	EnglishLevel       string `json:"englishLevel"`
	AdditionalComments string `json:"additionalComments"`
}

type TechnicalSection struct {
	Experience         string `json:"experience"`
	MainTechnologies   string `json:"mainTechnologies"`
	CodingTask         string `json:"codingTask"`
	AlgorithmTask      string `json:"algorithmTask"`
	SystemDesign       string `json:"systemDesign"`
	AdditionalComments string `json:"additionalComments"`
}

type FinalSection struct {
	TeamWork           string `json:"teamWork"`
	ProblemSolving     string `json:"problemSolving"`
	Communication      string `json:"communication"`
	CareerGoals        string `json:"careerGoals"`
	AdditionalComments string `json:"additionalComments"`
}

type InterviewRepository interface {
	GetByCandidateID(ctx context.Context, candidateID int64) (*Interview, error)
	// Upsert inserts the row or, when one already exists for the candidate,
	// updates it in place and bumps updated_at. Atomic: backed by the unique
	// constraint on candidate_id, so concurrent saves cannot duplicate rows.
	Upsert(ctx context.Context, interview *Interview) error
	// Delete removes the row, false when none exists.
	Delete(ctx context.Context, candidateID int64) (bool, error)
}

type InterviewUsecase interface {
	GetInterview(ctx context.Context, candidateID int64) (*Interview, error)
	SaveInterview(ctx context.Context, interview *Interview) error
	DeleteInterview(ctx context.Context, candidateID int64) error
}
