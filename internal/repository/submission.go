package repository

import (
	"context"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository/dao"
	"strings"
	"time"
)

var (
	ErrSubmissionNotFound     = dao.ErrSubmissionNotFound
	ErrSubmissionExists       = dao.ErrSubmissionExists
	ErrSubmissionFrozen       = dao.ErrSubmissionFrozen
	ErrSubmissionNotEvaluable = dao.ErrSubmissionNotEvaluable
)

type SubmissionDAO interface {
	Upsert(ctx context.Context, submission dao.Submission) (dao.Submission, error)
	InsertOnce(ctx context.Context, submission dao.Submission) (dao.Submission, error)
	Evaluate(ctx context.Context, id string, marks int, feedback string, at time.Time) (dao.Submission, error)
	FindByID(ctx context.Context, id string) (dao.Submission, error)
	FindByCompetitionAndSubmitter(ctx context.Context, competitionID, submittedBy string) (dao.Submission, error)
	FindIndividualBySubmitter(ctx context.Context, submittedBy string) ([]dao.Submission, error)
	FindByTeamIDs(ctx context.Context, teamIDs []string) ([]dao.Submission, error)
	FindByCompetitionIDs(ctx context.Context, competitionIDs []string) ([]dao.Submission, error)
}

type SubmissionRepository struct {
	dao SubmissionDAO
}

func NewSubmissionRepository(dao SubmissionDAO) *SubmissionRepository {
	return &SubmissionRepository{
		dao: dao,
	}
}

// Upsert creates the submission or replaces the payload of the one already
// stored for the same competition and submitter.
func (r *SubmissionRepository) Upsert(ctx context.Context, submission domain.Submission) (domain.Submission, error) {
	saved, err := r.dao.Upsert(ctx, r.domainToDao(submission))
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *SubmissionRepository) CreateOnce(ctx context.Context, submission domain.Submission) (domain.Submission, error) {
	created, err := r.dao.InsertOnce(ctx, r.domainToDao(submission))
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.InsertOnce -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SubmissionRepository) Evaluate(ctx context.Context, id string, evaluation domain.Evaluation) (domain.Submission, error) {
	evaluated, err := r.dao.Evaluate(ctx, id, evaluation.MarksAwarded, evaluation.Feedback, evaluation.EvaluatedAt)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.Evaluate -> %w", err)
	}

	return r.daoToDomain(evaluated), nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (domain.Submission, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SubmissionRepository) FindByCompetitionAndSubmitter(ctx context.Context, competitionID, submittedBy string) (domain.Submission, error) {
	found, err := r.dao.FindByCompetitionAndSubmitter(ctx, competitionID, submittedBy)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.FindByCompetitionAndSubmitter -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SubmissionRepository) FindIndividualBySubmitter(ctx context.Context, submittedBy string) ([]domain.Submission, error) {
	found, err := r.dao.FindIndividualBySubmitter(ctx, submittedBy)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindIndividualBySubmitter -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SubmissionRepository) FindByTeamIDs(ctx context.Context, teamIDs []string) ([]domain.Submission, error) {
	found, err := r.dao.FindByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTeamIDs -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SubmissionRepository) FindByCompetitionIDs(ctx context.Context, competitionIDs []string) ([]domain.Submission, error) {
	found, err := r.dao.FindByCompetitionIDs(ctx, competitionIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCompetitionIDs -> %w", err)
	}

	return r.daosToDomain(found), nil
}

// domainToDao flattens the payload variant into its columns; the columns of
// the other variants are left empty so an update clears them.
func (r *SubmissionRepository) domainToDao(s domain.Submission) dao.Submission {
	submission := dao.Submission{
		ID:               s.ID,
		CompetitionID:    s.CompetitionID,
		SubmittedBy:      s.SubmittedBy,
		TeamID:           optionalString(s.TeamID),
		IsTeamSubmission: s.IsTeamSubmission,
		SubmissionType:   string(s.Type()),
		Status:           string(s.Status),
		SubmittedAt:      s.SubmittedAt,
	}

	switch p := s.Payload.(type) {
	case domain.AssignmentPayload:
		submission.File = &p.File
		submission.Description = p.Description
	case domain.ProjectPayload:
		submission.RepoLink = &p.RepoLink
		submission.Description = p.Description
	case domain.QuizPayload:
		submission.QuizAnswers = p.Answers
	}

	if s.Evaluation != nil {
		submission.MarksAwarded = &s.Evaluation.MarksAwarded
		submission.Feedback = &s.Evaluation.Feedback
		submission.EvaluatedAt = &s.Evaluation.EvaluatedAt
	}

	return submission
}

func (r *SubmissionRepository) daoToDomain(s dao.Submission) domain.Submission {
	submission := domain.Submission{
		ID:               s.ID,
		CompetitionID:    s.CompetitionID,
		SubmittedBy:      s.SubmittedBy,
		TeamID:           stringValue(s.TeamID),
		IsTeamSubmission: s.IsTeamSubmission,
		Status:           domain.SubmissionStatus(s.Status),
		SubmittedAt:      s.SubmittedAt,
	}

	switch domain.Format(strings.ToUpper(s.SubmissionType)) {
	case domain.FormatAssignment:
		submission.Payload = domain.AssignmentPayload{File: stringValue(s.File), Description: s.Description}
	case domain.FormatProject:
		submission.Payload = domain.ProjectPayload{RepoLink: stringValue(s.RepoLink), Description: s.Description}
	case domain.FormatQuiz:
		submission.Payload = domain.QuizPayload{Answers: s.QuizAnswers}
	}

	if s.EvaluatedAt != nil {
		evaluation := domain.Evaluation{EvaluatedAt: *s.EvaluatedAt}
		if s.MarksAwarded != nil {
			evaluation.MarksAwarded = *s.MarksAwarded
		}
		evaluation.Feedback = stringValue(s.Feedback)
		submission.Evaluation = &evaluation
	}

	return submission
}

func (r *SubmissionRepository) daosToDomain(submissions []dao.Submission) []domain.Submission {
	result := make([]domain.Submission, len(submissions))
	for i, s := range submissions {
		result[i] = r.daoToDomain(s)
	}
	return result
}
