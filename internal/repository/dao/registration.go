package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAlreadyRegistered    = errors.New("already registered")
)

const (
	RegistrationStatusRegistered = "REGISTERED"

	activeStudentRegistrationIndex = "idx_registrations_active_student"
	activeTeamRegistrationIndex    = "idx_registrations_active_team"
)

// Registration holds either StudentID or TeamID. The partial unique indexes
// allow at most one REGISTERED row per competition and registrant.
type Registration struct {
	ID               string    `gorm:"primaryKey;type:varchar(64)"`
	CompetitionID    string    `gorm:"not null;uniqueIndex:idx_registrations_active_student,where:status = 'REGISTERED';uniqueIndex:idx_registrations_active_team,where:status = 'REGISTERED'"`
	StudentID        *string   `gorm:"index;uniqueIndex:idx_registrations_active_student,where:status = 'REGISTERED'"`
	TeamID           *string   `gorm:"index;uniqueIndex:idx_registrations_active_team,where:status = 'REGISTERED'"`
	TeamRegistration bool      `gorm:"not null;default:false"`
	Status           string    `gorm:"not null"` // "REGISTERED" or "CANCELLED"
	RegisteredAt     time.Time `gorm:"not null"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

func (d *RegistrationDAO) Insert(ctx context.Context, registration Registration) (Registration, error) {
	result := d.db.WithContext(ctx).Create(&registration)
	if result.Error != nil {
		if isUniqueViolation(result.Error, activeStudentRegistrationIndex) ||
			isUniqueViolation(result.Error, activeTeamRegistrationIndex) {
			return Registration{}, ErrAlreadyRegistered
		}

		return Registration{}, result.Error
	}

	return registration, nil
}

// EnsureTeamRegistration inserts a REGISTERED row for the team unless one
// already exists. It reports whether a row was created.
func (d *RegistrationDAO) EnsureTeamRegistration(ctx context.Context, registration Registration) (bool, error) {
	return ensureTeamRegistration(d.db.WithContext(ctx), registration)
}

func ensureTeamRegistration(tx *gorm.DB, registration Registration) (bool, error) {
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&registration)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (d *RegistrationDAO) FindActiveByStudent(ctx context.Context, competitionID, studentID string) (Registration, error) {
	return d.findActive(ctx, "competition_id = ? AND student_id = ?", competitionID, studentID)
}

func (d *RegistrationDAO) FindActiveByTeam(ctx context.Context, competitionID, teamID string) (Registration, error) {
	return d.findActive(ctx, "competition_id = ? AND team_id = ?", competitionID, teamID)
}

func (d *RegistrationDAO) findActive(ctx context.Context, query string, args ...any) (Registration, error) {
	var registration Registration

	result := d.db.WithContext(ctx).
		Where(query, args...).
		Where("status = ?", RegistrationStatusRegistered).
		First(&registration)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Registration{}, ErrRegistrationNotFound
		}

		return Registration{}, result.Error
	}

	return registration, nil
}

func (d *RegistrationDAO) FindActiveByStudentID(ctx context.Context, studentID string) ([]Registration, error) {
	var registrations []Registration

	result := d.db.WithContext(ctx).
		Where("student_id = ? AND status = ?", studentID, RegistrationStatusRegistered).
		Order("registered_at DESC").
		Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}

func (d *RegistrationDAO) FindActiveByTeamIDs(ctx context.Context, teamIDs []string) ([]Registration, error) {
	var registrations []Registration
	if len(teamIDs) == 0 {
		return registrations, nil
	}

	result := d.db.WithContext(ctx).
		Where("team_id IN ? AND status = ?", teamIDs, RegistrationStatusRegistered).
		Order("registered_at DESC").
		Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}
