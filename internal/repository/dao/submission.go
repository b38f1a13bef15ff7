package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSubmissionNotFound     = errors.New("submission not found")
	ErrSubmissionExists       = errors.New("submission already exists")
	ErrSubmissionFrozen       = errors.New("submission already evaluated")
	ErrSubmissionNotEvaluable = errors.New("submission cannot be evaluated in current status")
)

const (
	SubmissionStatusSubmitted = "SUBMITTED"
	SubmissionStatusEvaluated = "EVALUATED"

	submissionIdentityIndex = "idx_submissions_competition_submitter"
)

// Submission keeps one payload column set per submission type. Only the
// column matching SubmissionType is populated.
type Submission struct {
	ID               string  `gorm:"primaryKey;type:varchar(64)"`
	CompetitionID    string  `gorm:"not null;index;uniqueIndex:idx_submissions_competition_submitter"`
	SubmittedBy      string  `gorm:"not null;index;uniqueIndex:idx_submissions_competition_submitter"`
	TeamID           *string `gorm:"index"`
	IsTeamSubmission bool    `gorm:"not null;default:false"`
	SubmissionType   string  `gorm:"not null"` // "QUIZ", "ASSIGNMENT" or "PROJECT"
	File             *string
	RepoLink         *string
	QuizAnswers      datatypes.JSONSlice[string]
	Description      string
	Status           string `gorm:"not null"`
	MarksAwarded     *int
	Feedback         *string
	EvaluatedAt      *time.Time
	SubmittedAt      time.Time `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type SubmissionDAO struct {
	db *gorm.DB
}

func NewSubmissionDAO(db *gorm.DB) *SubmissionDAO {
	return &SubmissionDAO{
		db: db,
	}
}

// Upsert inserts the submission or overwrites the payload of the existing one
// for the same competition and submitter. An evaluated submission is never
// overwritten; ErrSubmissionFrozen is returned instead.
func (d *SubmissionDAO) Upsert(ctx context.Context, submission Submission) (Submission, error) {
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "competition_id"}, {Name: "submitted_by"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"team_id",
				"is_team_submission",
				"submission_type",
				"file",
				"repo_link",
				"quiz_answers",
				"description",
				"submitted_at",
				"updated_at",
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Eq{Column: clause.Column{Table: "submissions", Name: "status"}, Value: SubmissionStatusSubmitted},
			}},
		}).
		Create(&submission)
	if result.Error != nil {
		return Submission{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Submission{}, ErrSubmissionFrozen
	}

	return d.FindByCompetitionAndSubmitter(ctx, submission.CompetitionID, submission.SubmittedBy)
}

// InsertOnce creates the submission and fails with ErrSubmissionExists when
// the submitter already has one for the competition.
func (d *SubmissionDAO) InsertOnce(ctx context.Context, submission Submission) (Submission, error) {
	result := d.db.WithContext(ctx).Create(&submission)
	if result.Error != nil {
		if isUniqueViolation(result.Error, submissionIdentityIndex) {
			return Submission{}, ErrSubmissionExists
		}

		return Submission{}, result.Error
	}

	return submission, nil
}

// Evaluate records the evaluation only if the submission is still SUBMITTED.
func (d *SubmissionDAO) Evaluate(ctx context.Context, id string, marks int, feedback string, at time.Time) (Submission, error) {
	result := d.db.WithContext(ctx).
		Model(&Submission{}).
		Where("id = ? AND status = ?", id, SubmissionStatusSubmitted).
		Updates(map[string]any{
			"status":        SubmissionStatusEvaluated,
			"marks_awarded": marks,
			"feedback":      feedback,
			"evaluated_at":  at,
			"updated_at":    at,
		})
	if result.Error != nil {
		return Submission{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Submission{}, ErrSubmissionNotEvaluable
	}

	return d.FindByID(ctx, id)
}

func (d *SubmissionDAO) FindByID(ctx context.Context, id string) (Submission, error) {
	var submission Submission

	result := d.db.WithContext(ctx).First(&submission, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Submission{}, ErrSubmissionNotFound
		}

		return Submission{}, result.Error
	}

	return submission, nil
}

func (d *SubmissionDAO) FindByCompetitionAndSubmitter(ctx context.Context, competitionID, submittedBy string) (Submission, error) {
	var submission Submission

	result := d.db.WithContext(ctx).
		Where("competition_id = ? AND submitted_by = ?", competitionID, submittedBy).
		First(&submission)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Submission{}, ErrSubmissionNotFound
		}

		return Submission{}, result.Error
	}

	return submission, nil
}

// FindIndividualBySubmitter returns the non-team submissions made by the student.
func (d *SubmissionDAO) FindIndividualBySubmitter(ctx context.Context, submittedBy string) ([]Submission, error) {
	var submissions []Submission

	result := d.db.WithContext(ctx).
		Where("submitted_by = ? AND is_team_submission = ?", submittedBy, false).
		Order("submitted_at DESC").
		Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}

func (d *SubmissionDAO) FindByTeamIDs(ctx context.Context, teamIDs []string) ([]Submission, error) {
	var submissions []Submission
	if len(teamIDs) == 0 {
		return submissions, nil
	}

	result := d.db.WithContext(ctx).
		Where("team_id IN ?", teamIDs).
		Order("submitted_at DESC").
		Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}

func (d *SubmissionDAO) FindByCompetitionIDs(ctx context.Context, competitionIDs []string) ([]Submission, error) {
	var submissions []Submission
	if len(competitionIDs) == 0 {
		return submissions, nil
	}

	result := d.db.WithContext(ctx).
		Where("competition_id IN ?", competitionIDs).
		Order("submitted_at DESC").
		Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}
