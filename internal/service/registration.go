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

type RegistrationRepository interface {
	Create(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	EnsureTeamRegistration(ctx context.Context, registration domain.Registration) (bool, error)
	FindActiveByStudent(ctx context.Context, competitionID, studentID string) (domain.Registration, error)
	FindActiveByTeam(ctx context.Context, competitionID, teamID string) (domain.Registration, error)
	FindActiveByStudentID(ctx context.Context, studentID string) ([]domain.Registration, error)
	FindActiveByTeamIDs(ctx context.Context, teamIDs []string) ([]domain.Registration, error)
}

type RegistrationService struct {
	competitions  CompetitionRepository
	registrations RegistrationRepository
	teams         TeamRepository

	now   func() time.Time
	newID func() string
}

func NewRegistrationService(
	competitions CompetitionRepository,
	registrations RegistrationRepository,
	teams TeamRepository,
) *RegistrationService {
	return &RegistrationService{
		competitions:  competitions,
		registrations: registrations,
		teams:         teams,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// Register enters studentID into the competition, either alone or, for team
// competitions, on behalf of the team they lead.
func (s *RegistrationService) Register(ctx context.Context, competitionID, studentID, teamID string) (domain.Registration, error) {
	competition, err := findCompetition(ctx, s.competitions, competitionID)
	if err != nil {
		return domain.Registration{}, err
	}

	now := s.now()
	if !competition.RegistrationOpen(now) {
		return domain.Registration{}, ErrRegistrationDeadlinePassed
	}

	if competition.IsTeam() {
		return s.registerTeam(ctx, competition, studentID, teamID, now)
	}

	if teamID != "" {
		return domain.Registration{}, ErrTeamNotAllowed
	}

	registered, err := hasActiveRegistration(s.registrations.FindActiveByStudent(ctx, competition.ID, studentID))
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.registrations.FindActiveByStudent -> %w", err)
	}
	if registered {
		return domain.Registration{}, ErrAlreadyRegistered
	}

	created, err := s.registrations.Create(ctx, domain.NewIndividualRegistration(s.newID(), competition.ID, studentID, now))
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyRegistered) {
			return domain.Registration{}, ErrAlreadyRegistered
		}

		return domain.Registration{}, fmt.Errorf("s.registrations.Create -> %w", err)
	}

	zap.L().Info("student registered",
		zap.String("competition_id", competition.ID),
		zap.String("student_id", studentID))

	return created, nil
}

func (s *RegistrationService) registerTeam(
	ctx context.Context,
	competition domain.Competition,
	studentID, teamID string,
	now time.Time,
) (domain.Registration, error) {
	if teamID == "" {
		return domain.Registration{}, ErrTeamRequired
	}

	team, err := findTeam(ctx, s.teams, teamID)
	if err != nil {
		return domain.Registration{}, err
	}
	if team.CompetitionID != competition.ID {
		return domain.Registration{}, ErrTeamNotInCompetition
	}
	if !team.IsLeader(studentID) {
		return domain.Registration{}, ErrOnlyLeaderCanRegister
	}
	if !team.IsActive() {
		return domain.Registration{}, ErrTeamNotActive
	}

	registered, err := hasActiveRegistration(s.registrations.FindActiveByTeam(ctx, competition.ID, team.ID))
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.registrations.FindActiveByTeam -> %w", err)
	}
	if registered {
		return domain.Registration{}, ErrTeamAlreadyRegistered
	}

	created, err := s.registrations.Create(ctx, domain.NewTeamRegistration(s.newID(), competition.ID, team.ID, now))
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyRegistered) {
			return domain.Registration{}, ErrTeamAlreadyRegistered
		}

		return domain.Registration{}, fmt.Errorf("s.registrations.Create -> %w", err)
	}

	zap.L().Info("team registered",
		zap.String("competition_id", competition.ID),
		zap.String("team_id", team.ID))

	return created, nil
}

// EnsureTeamRegistration registers an ACTIVE team that has no REGISTERED
// record yet. Calling it repeatedly never creates a second record. It
// reports whether a record was created.
func (s *RegistrationService) EnsureTeamRegistration(ctx context.Context, team domain.Team) (bool, error) {
	if !team.IsActive() {
		return false, nil
	}

	registered, err := hasActiveRegistration(s.registrations.FindActiveByTeam(ctx, team.CompetitionID, team.ID))
	if err != nil {
		return false, fmt.Errorf("s.registrations.FindActiveByTeam -> %w", err)
	}
	if registered {
		return false, nil
	}

	created, err := s.registrations.EnsureTeamRegistration(ctx,
		domain.NewTeamRegistration(s.newID(), team.CompetitionID, team.ID, s.now()))
	if err != nil {
		return false, fmt.Errorf("s.registrations.EnsureTeamRegistration -> %w", err)
	}
	if created {
		zap.L().Info("team registered on activation",
			zap.String("competition_id", team.CompetitionID),
			zap.String("team_id", team.ID))
	}

	return created, nil
}

// ListMine returns the student's own registrations and those of every team
// they lead or belong to.
func (s *RegistrationService) ListMine(ctx context.Context, studentID string) ([]domain.Registration, error) {
	individual, err := s.registrations.FindActiveByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.registrations.FindActiveByStudentID -> %w", err)
	}

	teams, err := s.teams.FindByMember(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.teams.FindByMember -> %w", err)
	}

	byTeam, err := s.registrations.FindActiveByTeamIDs(ctx, teamIDs(teams))
	if err != nil {
		return nil, fmt.Errorf("s.registrations.FindActiveByTeamIDs -> %w", err)
	}

	seen := make(map[string]struct{}, len(individual)+len(byTeam))
	registrations := make([]domain.Registration, 0, len(individual)+len(byTeam))
	for _, reg := range append(individual, byTeam...) {
		if _, ok := seen[reg.ID]; ok {
			continue
		}
		seen[reg.ID] = struct{}{}
		registrations = append(registrations, reg)
	}

	return registrations, nil
}

// hasActiveRegistration folds a lookup result into a presence flag.
func hasActiveRegistration(_ domain.Registration, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrRegistrationNotFound) {
		return false, nil
	}

	return false, err
}
