package repository

import (
	"context"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository/dao"
	"time"
)

var (
	ErrTeamNotFound         = dao.ErrTeamNotFound
	ErrStudentAlreadyInTeam = dao.ErrStudentAlreadyInTeam
)

type TeamDAO interface {
	Insert(ctx context.Context, team dao.Team, registration *dao.Registration) (dao.Team, error)
	AddMember(ctx context.Context, teamID, studentID string, guard dao.MemberGuard, now time.Time) (dao.Team, error)
	FindByID(ctx context.Context, id string) (dao.Team, error)
	FindByCompetition(ctx context.Context, competitionID string) ([]dao.Team, error)
	FindByMember(ctx context.Context, studentID string) ([]dao.Team, error)
	FindByMemberInCompetition(ctx context.Context, competitionID, studentID string) (dao.Team, error)
	FindLedBy(ctx context.Context, competitionID, leaderID string) (dao.Team, error)
}

type TeamRepository struct {
	dao TeamDAO
}

func NewTeamRepository(dao TeamDAO) *TeamRepository {
	return &TeamRepository{
		dao: dao,
	}
}

// Create stores a new team. registration is only written when the team is
// already ACTIVE.
func (r *TeamRepository) Create(ctx context.Context, team domain.Team, registration *domain.Registration) (domain.Team, error) {
	var reg *dao.Registration
	if registration != nil {
		converted := registrationDomainToDao(*registration)
		reg = &converted
	}

	created, err := r.dao.Insert(ctx, r.domainToDao(team), reg)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

// AddMember admits studentID into the team. guard sees the team while it is
// locked against concurrent joins and decides the change to apply.
func (r *TeamRepository) AddMember(
	ctx context.Context,
	teamID, studentID string,
	guard func(team domain.Team) (domain.MemberChange, error),
	now time.Time,
) (domain.Team, error) {
	updated, err := r.dao.AddMember(ctx, teamID, studentID, func(locked dao.Team) (dao.MemberChange, error) {
		change, err := guard(r.daoToDomain(locked))
		if err != nil {
			return dao.MemberChange{}, err
		}

		daoChange := dao.MemberChange{Skip: change.Skip, Activate: change.Activate}
		if change.Registration != nil {
			reg := registrationDomainToDao(*change.Registration)
			daoChange.Registration = &reg
		}
		return daoChange, nil
	}, now)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.AddMember -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (domain.Team, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TeamRepository) FindByCompetition(ctx context.Context, competitionID string) ([]domain.Team, error) {
	found, err := r.dao.FindByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCompetition -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *TeamRepository) FindByMember(ctx context.Context, studentID string) ([]domain.Team, error) {
	found, err := r.dao.FindByMember(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByMember -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *TeamRepository) FindByMemberInCompetition(ctx context.Context, competitionID, studentID string) (domain.Team, error) {
	found, err := r.dao.FindByMemberInCompetition(ctx, competitionID, studentID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindByMemberInCompetition -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TeamRepository) FindLedBy(ctx context.Context, competitionID, leaderID string) (domain.Team, error) {
	found, err := r.dao.FindLedBy(ctx, competitionID, leaderID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindLedBy -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TeamRepository) domainToDao(t domain.Team) dao.Team {
	team := dao.Team{
		ID:            t.ID,
		Name:          t.Name,
		CompetitionID: t.CompetitionID,
		LeaderID:      t.LeaderID,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
	}

	for _, studentID := range t.AcceptedMemberIDs {
		role := dao.MemberRoleMember
		if studentID == t.LeaderID {
			role = dao.MemberRoleLeader
		}
		team.Members = append(team.Members, dao.TeamMember{
			TeamID:        t.ID,
			CompetitionID: t.CompetitionID,
			StudentID:     studentID,
			Role:          role,
			JoinedAt:      t.CreatedAt,
		})
	}

	for _, studentID := range t.InvitedMemberIDs {
		team.Invites = append(team.Invites, dao.TeamInvite{
			TeamID:    t.ID,
			StudentID: studentID,
		})
	}

	return team
}

func (r *TeamRepository) daoToDomain(t dao.Team) domain.Team {
	team := domain.Team{
		ID:                t.ID,
		Name:              t.Name,
		CompetitionID:     t.CompetitionID,
		LeaderID:          t.LeaderID,
		InvitedMemberIDs:  make([]string, 0, len(t.Invites)),
		AcceptedMemberIDs: make([]string, 0, len(t.Members)),
		Status:            domain.TeamStatus(t.Status),
		CreatedAt:         t.CreatedAt,
	}

	for _, member := range t.Members {
		team.AcceptedMemberIDs = append(team.AcceptedMemberIDs, member.StudentID)
	}
	for _, invite := range t.Invites {
		team.InvitedMemberIDs = append(team.InvitedMemberIDs, invite.StudentID)
	}

	return team
}

func (r *TeamRepository) daosToDomain(teams []dao.Team) []domain.Team {
	result := make([]domain.Team, len(teams))
	for i, t := range teams {
		result[i] = r.daoToDomain(t)
	}
	return result
}
