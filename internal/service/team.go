package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"time"
)

type TeamRepository interface {
	Create(ctx context.Context, team domain.Team, registration *domain.Registration) (domain.Team, error)
	AddMember(
		ctx context.Context,
		teamID, studentID string,
		guard func(team domain.Team) (domain.MemberChange, error),
		now time.Time,
	) (domain.Team, error)
	FindByID(ctx context.Context, id string) (domain.Team, error)
	FindByCompetition(ctx context.Context, competitionID string) ([]domain.Team, error)
	FindByMember(ctx context.Context, studentID string) ([]domain.Team, error)
	FindByMemberInCompetition(ctx context.Context, competitionID, studentID string) (domain.Team, error)
	FindLedBy(ctx context.Context, competitionID, leaderID string) (domain.Team, error)
}

type TeamRegistrar interface {
	EnsureTeamRegistration(ctx context.Context, team domain.Team) (bool, error)
}

type TeamService struct {
	competitions CompetitionRepository
	teams        TeamRepository
	registrar    TeamRegistrar
	notifier     Notifier

	now   func() time.Time
	newID func() string
}

func NewTeamService(
	competitions CompetitionRepository,
	teams TeamRepository,
	registrar TeamRegistrar,
	notifier Notifier,
) *TeamService {
	if notifier == nil {
		notifier = noopNotifier{}
	}

	return &TeamService{
		competitions: competitions,
		teams:        teams,
		registrar:    registrar,
		notifier:     notifier,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// CreateTeam creates a team led by leaderID and invites invitedIDs. A team
// whose minimum size is met by the leader alone is registered right away.
func (s *TeamService) CreateTeam(
	ctx context.Context,
	competitionID, name string,
	invitedIDs []string,
	leaderID string,
) (domain.Team, error) {
	competition, err := findCompetition(ctx, s.competitions, competitionID)
	if err != nil {
		return domain.Team{}, err
	}
	if !competition.IsTeam() {
		return domain.Team{}, ErrNotTeamCompetition
	}

	now := s.now()
	if !competition.RegistrationOpen(now) {
		return domain.Team{}, ErrRegistrationDeadlinePassed
	}

	if err = s.assertNotInOtherTeam(ctx, competition.ID, leaderID, ""); err != nil {
		return domain.Team{}, err
	}

	team, err := domain.NewTeam(s.newID(), name, competition, leaderID, invitedIDs, now)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNameRequired) {
			return domain.Team{}, ErrTeamNameRequired
		}

		return domain.Team{}, fmt.Errorf("domain.NewTeam -> %w", err)
	}

	var registration *domain.Registration
	if team.IsActive() {
		reg := domain.NewTeamRegistration(s.newID(), competition.ID, team.ID, now)
		registration = &reg
	}

	created, err := s.teams.Create(ctx, team, registration)
	if err != nil {
		if errors.Is(err, repository.ErrStudentAlreadyInTeam) {
			return domain.Team{}, ErrStudentAlreadyInTeam
		}

		return domain.Team{}, fmt.Errorf("s.teams.Create -> %w", err)
	}

	zap.L().Info("team created",
		zap.String("team_id", created.ID),
		zap.String("competition_id", created.CompetitionID),
		zap.String("status", string(created.Status)))

	for _, invitee := range created.InvitedMemberIDs {
		s.notifier.Notify(domain.TeamInvitationNotification(invitee, created))
	}
	if created.IsActive() {
		s.notifier.Notify(domain.TeamActivatedNotification(created))
	}

	return created, nil
}

// JoinTeam adds studentID to the team without requiring an invitation.
func (s *TeamService) JoinTeam(ctx context.Context, teamID, studentID string) (domain.Team, error) {
	return s.admit(ctx, teamID, studentID, false)
}

// AcceptInvitation adds studentID to the team they were invited to.
func (s *TeamService) AcceptInvitation(ctx context.Context, teamID, studentID string) (domain.Team, error) {
	return s.admit(ctx, teamID, studentID, true)
}

func (s *TeamService) admit(ctx context.Context, teamID, studentID string, invitationRequired bool) (domain.Team, error) {
	team, err := findTeam(ctx, s.teams, teamID)
	if err != nil {
		return domain.Team{}, err
	}

	if team.IsMember(studentID) {
		if _, err = s.registrar.EnsureTeamRegistration(ctx, team); err != nil {
			return domain.Team{}, fmt.Errorf("s.registrar.EnsureTeamRegistration -> %w", err)
		}
		return team, nil
	}
	if invitationRequired && !team.IsInvited(studentID) {
		return domain.Team{}, ErrNotInvited
	}

	competition, err := findCompetition(ctx, s.competitions, team.CompetitionID)
	if err != nil {
		return domain.Team{}, err
	}

	now := s.now()
	if !competition.RegistrationOpen(now) {
		return domain.Team{}, ErrRegistrationDeadlinePassed
	}
	if err = s.assertNotInOtherTeam(ctx, competition.ID, studentID, team.ID); err != nil {
		return domain.Team{}, err
	}

	guard := func(locked domain.Team) (domain.MemberChange, error) {
		if locked.IsMember(studentID) {
			return domain.MemberChange{Skip: true}, nil
		}
		if invitationRequired && !locked.IsInvited(studentID) {
			return domain.MemberChange{}, ErrNotInvited
		}

		size := locked.AcceptedCount() + 1
		if !competition.AllowsTeamSize(size) {
			return domain.MemberChange{}, ErrTeamFull
		}

		change := domain.MemberChange{Activate: competition.ReachesMinTeamSize(size)}
		if change.Activate || locked.IsActive() {
			reg := domain.NewTeamRegistration(s.newID(), competition.ID, locked.ID, now)
			change.Registration = &reg
		}
		return change, nil
	}

	updated, err := s.teams.AddMember(ctx, team.ID, studentID, guard, now)
	if err != nil {
		var svcErr *Error
		switch {
		case errors.As(err, &svcErr):
			return domain.Team{}, svcErr
		case errors.Is(err, repository.ErrStudentAlreadyInTeam):
			return domain.Team{}, ErrStudentAlreadyInTeam
		case errors.Is(err, repository.ErrTeamNotFound):
			return domain.Team{}, ErrTeamNotFound
		}

		return domain.Team{}, fmt.Errorf("s.teams.AddMember -> %w", err)
	}

	zap.L().Info("student joined team",
		zap.String("team_id", updated.ID),
		zap.String("student_id", studentID),
		zap.Int("accepted", updated.AcceptedCount()))
	s.notifier.Notify(domain.TeamJoinedNotification(studentID, updated))

	if !team.IsActive() && updated.IsActive() {
		zap.L().Info("team activated",
			zap.String("team_id", updated.ID),
			zap.String("competition_id", updated.CompetitionID))
		s.notifier.Notify(domain.TeamActivatedNotification(updated))
	}

	return updated, nil
}

// assertNotInOtherTeam fails when studentID already belongs to a team of the
// competition other than exceptTeamID.
func (s *TeamService) assertNotInOtherTeam(ctx context.Context, competitionID, studentID, exceptTeamID string) error {
	current, err := s.teams.FindByMemberInCompetition(ctx, competitionID, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil
		}

		return fmt.Errorf("s.teams.FindByMemberInCompetition -> %w", err)
	}
	if current.ID != exceptTeamID {
		return ErrStudentAlreadyInTeam
	}

	return nil
}

func (s *TeamService) ListByCompetition(ctx context.Context, competitionID string) ([]domain.Team, error) {
	if _, err := findCompetition(ctx, s.competitions, competitionID); err != nil {
		return nil, err
	}

	teams, err := s.teams.FindByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("s.teams.FindByCompetition -> %w", err)
	}

	return teams, nil
}

func (s *TeamService) ListMine(ctx context.Context, studentID string) ([]domain.Team, error) {
	teams, err := s.teams.FindByMember(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.teams.FindByMember -> %w", err)
	}

	return teams, nil
}

func findTeam(ctx context.Context, repo TeamRepository, id string) (domain.Team, error) {
	team, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return domain.Team{}, ErrTeamNotFound
		}

		return domain.Team{}, fmt.Errorf("repo.FindByID -> %w", err)
	}

	return team, nil
}

func teamIDs(teams []domain.Team) []string {
	ids := make([]string, len(teams))
	for i, team := range teams {
		ids[i] = team.ID
	}
	return ids
}
