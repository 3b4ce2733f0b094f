package postgres

import (
	"context"
	"errors"

	"valletta-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// interviewColumns keeps the flat storage order; scanInterview reshapes
// the columns into the three scorecard sections.
const interviewColumns = `
	id, candidate_id,
	COALESCE(screening_motivation, ''), COALESCE(screening_expected_salary, ''),
	COALESCE(screening_notice_time, ''), COALESCE(screening_work_format, ''),
	COALESCE(screening_english_level, ''), COALESCE(screening_comments, ''),
	COALESCE(technical_experience, ''), COALESCE(technical_main_technologies, ''),
	COALESCE(technical_coding_task, ''), COALESCE(technical_algorithm_task, ''),
	COALESCE(technical_system_design, ''), COALESCE(technical_comments, ''),
	COALESCE(final_team_work, ''), COALESCE(final_problem_solving, ''),
	COALESCE(final_communication, ''), COALESCE(final_career_goals, ''),
	COALESCE(final_comments, ''),
	created_at, updated_at`

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

func scanInterview(row pgx.Row) (*domain.Interview, error) {
	var iv domain.Interview
	err := row.Scan(
		&iv.ID, &iv.CandidateID,
		&iv.Screening.Motivation, &iv.Screening.ExpectedSalary,
		&iv.Screening.NoticeTime, &iv.Screening.WorkFormat,
		&iv.Screening.EnglishLevel, &iv.Screening.AdditionalComments,
		&iv.Technical.Experience, &iv.Technical.MainTechnologies,
		&iv.Technical.CodingTask, &iv.Technical.AlgorithmTask,
		&iv.Technical.SystemDesign, &iv.Technical.AdditionalComments,
		&iv.Final.TeamWork, &iv.Final.ProblemSolving,
		&iv.Final.Communication, &iv.Final.CareerGoals,
		&iv.Final.AdditionalComments,
		&iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepo) GetByCandidateID(ctx context.Context, candidateID int64) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE candidate_id = $1`

	iv, err := scanInterview(r.db.QueryRow(ctx, query, candidateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return iv, nil
}

func (r *interviewRepo) Upsert(ctx context.Context, interview *domain.Interview) error {
	// Single atomic statement instead of the old check-then-insert, so two
	// concurrent saves for the same candidate cannot produce duplicate rows.
	query := `
		INSERT INTO interviews (
			candidate_id,
			screening_motivation, screening_expected_salary, screening_notice_time,
			screening_work_format, screening_english_level, screening_comments,
			technical_experience, technical_main_technologies, technical_coding_task,
			technical_algorithm_task, technical_system_design, technical_comments,
			final_team_work, final_problem_solving, final_communication,
			final_career_goals, final_comments
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (candidate_id) DO UPDATE SET
			screening_motivation = EXCLUDED.screening_motivation,
			screening_expected_salary = EXCLUDED.screening_expected_salary,
			screening_notice_time = EXCLUDED.screening_notice_time,
			screening_work_format = EXCLUDED.screening_work_format,
			screening_english_level = EXCLUDED.screening_english_level,
			screening_comments = EXCLUDED.screening_comments,
			technical_experience = EXCLUDED.technical_experience,
			technical_main_technologies = EXCLUDED.technical_main_technologies,
			technical_coding_task = EXCLUDED.technical_coding_task,
			technical_algorithm_task = EXCLUDED.technical_algorithm_task,
			technical_system_design = EXCLUDED.technical_system_design,
			technical_comments = EXCLUDED.technical_comments,
			final_team_work = EXCLUDED.final_team_work,
			final_problem_solving = EXCLUDED.final_problem_solving,
			final_communication = EXCLUDED.final_communication,
			final_career_goals = EXCLUDED.final_career_goals,
			final_comments = EXCLUDED.final_comments,
			updated_at = CURRENT_TIMESTAMP
		RETURNING ` + interviewColumns

	saved, err := scanInterview(r.db.QueryRow(ctx, query,
		interview.CandidateID,
		interview.Screening.Motivation, interview.Screening.ExpectedSalary,
		interview.Screening.NoticeTime, interview.Screening.WorkFormat,
		interview.Screening.EnglishLevel, interview.Screening.AdditionalComments,
		interview.Technical.Experience, interview.Technical.MainTechnologies,
		interview.Technical.CodingTask, interview.Technical.AlgorithmTask,
		interview.Technical.SystemDesign, interview.Technical.AdditionalComments,
		interview.Final.TeamWork, interview.Final.ProblemSolving,
		interview.Final.Communication, interview.Final.CareerGoals,
		interview.Final.AdditionalComments,
	))
	if err != nil {
		return err
	}

	*interview = *saved
	return nil
}

func (r *interviewRepo) Delete(ctx context.Context, candidateID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE candidate_id = $1`, candidateID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
