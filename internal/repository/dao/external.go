package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrExternalParticipationNotFound = errors.New("external participation not found")

type ExternalParticipation struct {
	ID                   string `gorm:"primaryKey;type:varchar(64)"`
	OwnerID              string `gorm:"not null;index"`
	Title                string `gorm:"not null"`
	Category             string
	Organizer            string
	Mode                 string
	Location             string
	Description          string
	ParticipationType    string
	TeamSizeMin          *int
	TeamSizeMax          *int
	StartDate            *time.Time `gorm:"type:date"`
	EndDate              *time.Time `gorm:"type:date"`
	WebsiteLink          string
	Result               string
	Prizes               string
	SubmissionNotes      string
	DeclarationConfirmed bool `gorm:"not null;default:false"`
	ProofFiles           datatypes.JSONSlice[string]
	Source               string `gorm:"not null"`
	Status               string `gorm:"not null;index"` // "PENDING", "APPROVED" or "REJECTED"
	AdminNote            string
	SubmittedAt          time.Time `gorm:"not null;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// detailColumns are the columns the owner may change on resubmission.
var detailColumns = []string{
	"title", "category", "organizer", "mode", "location", "description",
	"participation_type", "team_size_min", "team_size_max", "start_date", "end_date",
	"website_link", "result", "prizes", "submission_notes", "declaration_confirmed",
	"status", "submitted_at", "updated_at",
}

type ExternalParticipationDAO struct {
	db *gorm.DB
}

func NewExternalParticipationDAO(db *gorm.DB) *ExternalParticipationDAO {
	return &ExternalParticipationDAO{
		db: db,
	}
}

func (d *ExternalParticipationDAO) Insert(ctx context.Context, participation ExternalParticipation) (ExternalParticipation, error) {
	result := d.db.WithContext(ctx).Create(&participation)
	if result.Error != nil {
		return ExternalParticipation{}, result.Error
	}

	return participation, nil
}

// UpdateDetails overwrites the owner editable columns together with the
// review status and submission time. Proof files and the admin note stay.
func (d *ExternalParticipationDAO) UpdateDetails(ctx context.Context, participation ExternalParticipation) (ExternalParticipation, error) {
	result := d.db.WithContext(ctx).
		Model(&ExternalParticipation{}).
		Where("id = ?", participation.ID).
		Select(detailColumns).
		Updates(&participation)
	if result.Error != nil {
		return ExternalParticipation{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ExternalParticipation{}, ErrExternalParticipationNotFound
	}

	return d.FindByID(ctx, participation.ID)
}

// AppendProof adds a proof reference while holding the row lock so concurrent
// uploads are all kept.
func (d *ExternalParticipationDAO) AppendProof(ctx context.Context, id, reference string, at time.Time) (ExternalParticipation, error) {
	var participation ExternalParticipation

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&participation, "id = ?", id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrExternalParticipationNotFound
			}

			return result.Error
		}

		participation.ProofFiles = append(participation.ProofFiles, reference)
		participation.UpdatedAt = at

		return tx.Model(&participation).
			Select("proof_files", "updated_at").
			Updates(&participation).Error
	})
	if err != nil {
		return ExternalParticipation{}, err
	}

	return participation, nil
}

// Review moves every participation among ids whose status is in from to the
// status to, and returns the rows it changed. A nil note leaves the admin note
// untouched.
func (d *ExternalParticipationDAO) Review(
	ctx context.Context,
	ids []string,
	from []string,
	to string,
	note *string,
	at time.Time,
) ([]ExternalParticipation, error) {
	changes := map[string]any{
		"status":     to,
		"updated_at": at,
	}
	if note != nil {
		changes["admin_note"] = *note
	}

	var reviewed []ExternalParticipation
	result := d.db.WithContext(ctx).
		Model(&reviewed).
		Clauses(clause.Returning{}).
		Where("id IN ? AND status IN ?", ids, from).
		Updates(changes)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviewed, nil
}

func (d *ExternalParticipationDAO) FindByID(ctx context.Context, id string) (ExternalParticipation, error) {
	var participation ExternalParticipation

	result := d.db.WithContext(ctx).First(&participation, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ExternalParticipation{}, ErrExternalParticipationNotFound
		}

		return ExternalParticipation{}, result.Error
	}

	return participation, nil
}

func (d *ExternalParticipationDAO) FindByOwner(ctx context.Context, ownerID string) ([]ExternalParticipation, error) {
	var participations []ExternalParticipation

	result := d.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("submitted_at DESC").
		Find(&participations)
	if result.Error != nil {
		return nil, result.Error
	}

	return participations, nil
}

// FindByStatus lists participations newest submission first. An empty status
// matches every participation.
func (d *ExternalParticipationDAO) FindByStatus(ctx context.Context, status string) ([]ExternalParticipation, error) {
	var participations []ExternalParticipation

	query := d.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	result := query.Order("submitted_at DESC").Find(&participations)
	if result.Error != nil {
		return nil, result.Error
	}

	return participations, nil
}
