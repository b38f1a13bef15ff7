package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTeamNotFound         = errors.New("team not found")
	ErrStudentAlreadyInTeam = errors.New("student is already in a team for this competition")
)

const (
	TeamStatusActive = "ACTIVE"

	MemberRoleLeader = "LEADER"
	MemberRoleMember = "MEMBER"

	teamMemberCompetitionIndex = "idx_team_members_competition_student"
)

type Team struct {
	ID            string       `gorm:"primaryKey;type:varchar(64)"`
	Name          string       `gorm:"not null"`
	CompetitionID string       `gorm:"not null;index"`
	LeaderID      string       `gorm:"not null;index"`
	Status        string       `gorm:"not null"` // "PENDING" or "ACTIVE"
	Members       []TeamMember `gorm:"foreignKey:TeamID"`
	Invites       []TeamInvite `gorm:"foreignKey:TeamID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TeamMember is an accepted member, leader included. A student holds at most
// one membership per competition.
type TeamMember struct {
	ID            uint      `gorm:"primaryKey"`
	TeamID        string    `gorm:"not null;index"`
	CompetitionID string    `gorm:"not null;uniqueIndex:idx_team_members_competition_student"`
	StudentID     string    `gorm:"not null;uniqueIndex:idx_team_members_competition_student"`
	Role          string    `gorm:"not null"`
	JoinedAt      time.Time `gorm:"not null"`
}

type TeamInvite struct {
	ID        uint   `gorm:"primaryKey"`
	TeamID    string `gorm:"not null;uniqueIndex:idx_team_invites_team_student"`
	StudentID string `gorm:"not null;index;uniqueIndex:idx_team_invites_team_student"`
}

// MemberChange is what a MemberGuard decided to do with a join request after
// inspecting the locked team.
type MemberChange struct {
	// Skip leaves the team untouched.
	Skip bool
	// Activate flips the team to ACTIVE together with the new member.
	Activate bool
	// Registration is ensured when the team ends up ACTIVE.
	Registration *Registration
}

// MemberGuard inspects the team row while it is locked and decides whether a
// new member may be added. Returning an error aborts the transaction.
type MemberGuard func(team Team) (MemberChange, error)

type TeamDAO struct {
	db *gorm.DB
}

func NewTeamDAO(db *gorm.DB) *TeamDAO {
	return &TeamDAO{
		db: db,
	}
}

func orderedMembers(db *gorm.DB) *gorm.DB {
	return db.Order("team_members.id")
}

func orderedInvites(db *gorm.DB) *gorm.DB {
	return db.Order("team_invites.id")
}

func (d *TeamDAO) withMembers(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Preload("Members", orderedMembers).
		Preload("Invites", orderedInvites)
}

// Insert stores the team with its leader membership and invites. When
// registration is non-nil it is ensured in the same transaction.
func (d *TeamDAO) Insert(ctx context.Context, team Team, registration *Registration) (Team, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&team).Error; err != nil {
			return err
		}

		for i := range team.Members {
			team.Members[i].TeamID = team.ID
			team.Members[i].CompetitionID = team.CompetitionID
		}
		if len(team.Members) > 0 {
			if err := tx.Create(&team.Members).Error; err != nil {
				if isUniqueViolation(err, teamMemberCompetitionIndex) {
					return ErrStudentAlreadyInTeam
				}
				return err
			}
		}

		for i := range team.Invites {
			team.Invites[i].TeamID = team.ID
		}
		if len(team.Invites) > 0 {
			if err := tx.Create(&team.Invites).Error; err != nil {
				return err
			}
		}

		if registration != nil && team.Status == TeamStatusActive {
			if _, err := ensureTeamRegistration(tx, *registration); err != nil {
				return fmt.Errorf("ensureTeamRegistration -> %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return Team{}, err
	}

	return team, nil
}

// AddMember locks the team row, lets guard decide on the locked state, then
// inserts the membership, flips the status and ensures the team registration
// as a single unit.
func (d *TeamDAO) AddMember(ctx context.Context, teamID, studentID string, guard MemberGuard, now time.Time) (Team, error) {
	var team Team

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Omit(clause.Associations).
			First(&team, "id = ?", teamID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return result.Error
		}
		if err := loadMembership(tx, &team); err != nil {
			return err
		}

		change, err := guard(team)
		if err != nil {
			return err
		}
		if change.Skip {
			return nil
		}

		member := TeamMember{
			TeamID:        team.ID,
			CompetitionID: team.CompetitionID,
			StudentID:     studentID,
			Role:          MemberRoleMember,
			JoinedAt:      now,
		}
		if err := tx.Create(&member).Error; err != nil {
			if isUniqueViolation(err, teamMemberCompetitionIndex) {
				return ErrStudentAlreadyInTeam
			}
			return err
		}
		team.Members = append(team.Members, member)

		if change.Activate && team.Status != TeamStatusActive {
			if err := tx.Model(&Team{}).Where("id = ?", team.ID).
				Updates(map[string]any{"status": TeamStatusActive, "updated_at": now}).Error; err != nil {
				return err
			}
			team.Status = TeamStatusActive
		}

		if change.Registration != nil && team.Status == TeamStatusActive {
			if _, err := ensureTeamRegistration(tx, *change.Registration); err != nil {
				return fmt.Errorf("ensureTeamRegistration -> %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return Team{}, err
	}

	return team, nil
}

func loadMembership(tx *gorm.DB, team *Team) error {
	if err := tx.Where("team_id = ?", team.ID).Order("id").Find(&team.Members).Error; err != nil {
		return err
	}

	return tx.Where("team_id = ?", team.ID).Order("id").Find(&team.Invites).Error
}

func (d *TeamDAO) FindByID(ctx context.Context, id string) (Team, error) {
	var team Team

	result := d.withMembers(ctx).First(&team, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) FindByCompetition(ctx context.Context, competitionID string) ([]Team, error) {
	var teams []Team

	result := d.withMembers(ctx).Where("competition_id = ?", competitionID).Order("created_at").Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

// FindByMember returns every team where the student is leader or accepted member.
func (d *TeamDAO) FindByMember(ctx context.Context, studentID string) ([]Team, error) {
	var teams []Team

	memberOf := d.db.WithContext(ctx).Model(&TeamMember{}).Select("team_id").Where("student_id = ?", studentID)
	result := d.withMembers(ctx).Where("id IN (?)", memberOf).Order("created_at").Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

// FindByMemberInCompetition returns the single team the student belongs to in
// the competition.
func (d *TeamDAO) FindByMemberInCompetition(ctx context.Context, competitionID, studentID string) (Team, error) {
	var team Team

	memberOf := d.db.WithContext(ctx).Model(&TeamMember{}).Select("team_id").
		Where("competition_id = ? AND student_id = ?", competitionID, studentID)
	result := d.withMembers(ctx).Where("id IN (?)", memberOf).First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) FindLedBy(ctx context.Context, competitionID, leaderID string) (Team, error) {
	var team Team

	result := d.withMembers(ctx).
		Where("competition_id = ? AND leader_id = ?", competitionID, leaderID).
		First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}
