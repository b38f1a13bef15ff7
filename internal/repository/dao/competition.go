package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCompetitionNotFound = errors.New("competition not found")

type Competition struct {
	ID                   string `gorm:"primaryKey;type:varchar(64)"`
	Title                string `gorm:"not null"`
	Description          string
	CompetitionType      string `gorm:"not null"` // "INTERNAL" or "EXTERNAL"
	Format               string `gorm:"not null"` // "QUIZ", "ASSIGNMENT" or "PROJECT"
	ParticipationType    string `gorm:"not null"` // "INDIVIDUAL" or "TEAM"
	CreatedBy            string `gorm:"not null;index"`
	RegistrationDeadline *time.Time
	SubmissionDeadline   *time.Time
	ProofDeadline        *time.Time
	QuizDurationMinutes  *int
	MinTeamSize          *int
	MaxTeamSize          *int
	TotalMarks           int `gorm:"not null;default:0"`
	Materials            string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CompetitionDAO struct {
	db *gorm.DB
}

func NewCompetitionDAO(db *gorm.DB) *CompetitionDAO {
	return &CompetitionDAO{
		db: db,
	}
}

func (d *CompetitionDAO) FindByID(ctx context.Context, id string) (Competition, error) {
	var competition Competition

	result := d.db.WithContext(ctx).First(&competition, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Competition{}, ErrCompetitionNotFound
		}

		return Competition{}, result.Error
	}

	return competition, nil
}

func (d *CompetitionDAO) FindByIDs(ctx context.Context, ids []string) ([]Competition, error) {
	var competitions []Competition
	if len(ids) == 0 {
		return competitions, nil
	}

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}

	return competitions, nil
}

func (d *CompetitionDAO) FindAll(ctx context.Context) ([]Competition, error) {
	var competitions []Competition

	result := d.db.WithContext(ctx).Order("registration_deadline ASC NULLS LAST, title").Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}

	return competitions, nil
}

func (d *CompetitionDAO) FindByCreator(ctx context.Context, createdBy string) ([]Competition, error) {
	var competitions []Competition

	result := d.db.WithContext(ctx).Where("created_by = ?", createdBy).Order("title").Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}

	return competitions, nil
}

// Upsert writes the competition, replacing every column of an existing row
// with the same id.
func (d *CompetitionDAO) Upsert(ctx context.Context, competition Competition) (Competition, error) {
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&competition)
	if result.Error != nil {
		return Competition{}, result.Error
	}

	return competition, nil
}
