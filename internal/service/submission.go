package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"sort"
	"time"
)

type SubmissionRepository interface {
	Upsert(ctx context.Context, submission domain.Submission) (domain.Submission, error)
	CreateOnce(ctx context.Context, submission domain.Submission) (domain.Submission, error)
	Evaluate(ctx context.Context, id string, evaluation domain.Evaluation) (domain.Submission, error)
	FindByID(ctx context.Context, id string) (domain.Submission, error)
	FindByCompetitionAndSubmitter(ctx context.Context, competitionID, submittedBy string) (domain.Submission, error)
	FindIndividualBySubmitter(ctx context.Context, submittedBy string) ([]domain.Submission, error)
	FindByTeamIDs(ctx context.Context, teamIDs []string) ([]domain.Submission, error)
	FindByCompetitionIDs(ctx context.Context, competitionIDs []string) ([]domain.Submission, error)
}

type SubmissionService struct {
	competitions  CompetitionRepository
	registrations RegistrationRepository
	teams         TeamRepository
	submissions   SubmissionRepository
	notifier      Notifier

	now   func() time.Time
	newID func() string
}

func NewSubmissionService(
	competitions CompetitionRepository,
	registrations RegistrationRepository,
	teams TeamRepository,
	submissions SubmissionRepository,
	notifier Notifier,
) *SubmissionService {
	if notifier == nil {
		notifier = noopNotifier{}
	}

	return &SubmissionService{
		competitions:  competitions,
		registrations: registrations,
		teams:         teams,
		submissions:   submissions,
		notifier:      notifier,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// validateAndGetCompetition loads the competition and checks that it accepts
// a submission of format right now.
func (s *SubmissionService) validateAndGetCompetition(
	ctx context.Context,
	competitionID string,
	format domain.Format,
	now time.Time,
) (domain.Competition, error) {
	competition, err := findCompetition(ctx, s.competitions, competitionID)
	if err != nil {
		return domain.Competition{}, err
	}

	switch competition.SubmissionWindow(now) {
	case domain.WindowNotOpen:
		return domain.Competition{}, ErrSubmissionNotOpen
	case domain.WindowClosed:
		return domain.Competition{}, ErrSubmissionDeadlinePassed
	}

	if !competition.Format.Matches(format) {
		return domain.Competition{}, ErrInvalidSubmissionType
	}

	return competition, nil
}

// resolveActingIdentity works out who studentID submits for. In team
// competitions only the leader of a registered team may submit.
func (s *SubmissionService) resolveActingIdentity(
	ctx context.Context,
	competition domain.Competition,
	studentID string,
) (domain.ActingIdentity, error) {
	if !competition.IsTeam() {
		return domain.IndividualIdentity(studentID), nil
	}

	team, err := s.teams.FindLedBy(ctx, competition.ID, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return domain.ActingIdentity{}, ErrNotTeamLeader
		}

		return domain.ActingIdentity{}, fmt.Errorf("s.teams.FindLedBy -> %w", err)
	}

	registered, err := hasActiveRegistration(s.registrations.FindActiveByTeam(ctx, competition.ID, team.ID))
	if err != nil {
		return domain.ActingIdentity{}, fmt.Errorf("s.registrations.FindActiveByTeam -> %w", err)
	}
	if !registered {
		return domain.ActingIdentity{}, ErrTeamNotRegistered
	}

	return domain.TeamIdentity(team.ID, studentID), nil
}

// assertRegistered checks the identity's registration again right before
// the write.
func (s *SubmissionService) assertRegistered(
	ctx context.Context,
	competition domain.Competition,
	identity domain.ActingIdentity,
) error {
	if identity.IsTeam() {
		registered, err := hasActiveRegistration(s.registrations.FindActiveByTeam(ctx, competition.ID, identity.TeamID))
		if err != nil {
			return fmt.Errorf("s.registrations.FindActiveByTeam -> %w", err)
		}
		if !registered {
			return ErrTeamNotRegistered
		}
		return nil
	}

	registered, err := hasActiveRegistration(s.registrations.FindActiveByStudent(ctx, competition.ID, identity.SubmittedBy))
	if err != nil {
		return fmt.Errorf("s.registrations.FindActiveByStudent -> %w", err)
	}
	if !registered {
		return ErrStudentNotRegistered
	}

	return nil
}

// prepare runs every check shared by all formats and builds the submission.
func (s *SubmissionService) prepare(
	ctx context.Context,
	competitionID, studentID string,
	payload domain.Payload,
	now time.Time,
) (domain.Competition, domain.Submission, error) {
	competition, err := s.validateAndGetCompetition(ctx, competitionID, payload.Format(), now)
	if err != nil {
		return domain.Competition{}, domain.Submission{}, err
	}

	identity, err := s.resolveActingIdentity(ctx, competition, studentID)
	if err != nil {
		return domain.Competition{}, domain.Submission{}, err
	}
	if err = s.assertRegistered(ctx, competition, identity); err != nil {
		return domain.Competition{}, domain.Submission{}, err
	}

	submission, err := domain.NewSubmission(s.newID(), competition.ID, identity, payload, now)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAssignmentFileRequired):
			return domain.Competition{}, domain.Submission{}, ErrAssignmentFileRequired
		case errors.Is(err, domain.ErrRepoLinkRequired):
			return domain.Competition{}, domain.Submission{}, ErrRepoLinkRequired
		}

		return domain.Competition{}, domain.Submission{}, fmt.Errorf("domain.NewSubmission -> %w", err)
	}

	return competition, submission, nil
}

func (s *SubmissionService) SubmitOrUpdateAssignment(
	ctx context.Context,
	competitionID, studentID string,
	payload domain.AssignmentPayload,
) (domain.SubmissionView, error) {
	return s.upsert(ctx, competitionID, studentID, payload)
}

func (s *SubmissionService) SubmitOrUpdateProject(
	ctx context.Context,
	competitionID, studentID string,
	payload domain.ProjectPayload,
) (domain.SubmissionView, error) {
	return s.upsert(ctx, competitionID, studentID, payload)
}

func (s *SubmissionService) upsert(
	ctx context.Context,
	competitionID, studentID string,
	payload domain.Payload,
) (domain.SubmissionView, error) {
	now := s.now()

	competition, submission, err := s.prepare(ctx, competitionID, studentID, payload, now)
	if err != nil {
		return domain.SubmissionView{}, err
	}

	saved, err := s.submissions.Upsert(ctx, submission)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionFrozen) {
			return domain.SubmissionView{}, ErrSubmissionEvaluated
		}

		return domain.SubmissionView{}, fmt.Errorf("s.submissions.Upsert -> %w", err)
	}

	s.submitted(saved, competition)

	return domain.NewSubmissionView(saved, &competition, now), nil
}

// SubmitQuiz records the quiz answers. A quiz is accepted once per identity.
func (s *SubmissionService) SubmitQuiz(
	ctx context.Context,
	competitionID, studentID string,
	answers []string,
) (domain.SubmissionView, error) {
	now := s.now()

	competition, submission, err := s.prepare(ctx, competitionID, studentID, domain.QuizPayload{Answers: answers}, now)
	if err != nil {
		return domain.SubmissionView{}, err
	}

	_, err = s.submissions.FindByCompetitionAndSubmitter(ctx, competition.ID, submission.SubmittedBy)
	switch {
	case err == nil:
		return domain.SubmissionView{}, ErrQuizAlreadySubmitted
	case !errors.Is(err, repository.ErrSubmissionNotFound):
		return domain.SubmissionView{}, fmt.Errorf("s.submissions.FindByCompetitionAndSubmitter -> %w", err)
	}

	created, err := s.submissions.CreateOnce(ctx, submission)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionExists) {
			return domain.SubmissionView{}, ErrQuizAlreadySubmitted
		}

		return domain.SubmissionView{}, fmt.Errorf("s.submissions.CreateOnce -> %w", err)
	}

	s.submitted(created, competition)

	return domain.NewSubmissionView(created, &competition, now), nil
}

func (s *SubmissionService) submitted(submission domain.Submission, competition domain.Competition) {
	zap.L().Info("submission stored",
		zap.String("submission_id", submission.ID),
		zap.String("competition_id", competition.ID),
		zap.String("submitted_by", submission.SubmittedBy),
		zap.String("type", string(submission.Type())))

	s.notifier.Notify(domain.SubmissionSuccessNotification(submission, competition))
}

// ListMine returns the student's individual submissions plus those of every
// registered team they lead or belong to, newest first.
func (s *SubmissionService) ListMine(ctx context.Context, studentID string) ([]domain.SubmissionView, error) {
	individual, err := s.submissions.FindIndividualBySubmitter(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.submissions.FindIndividualBySubmitter -> %w", err)
	}

	teams, err := s.teams.FindByMember(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.teams.FindByMember -> %w", err)
	}

	registrations, err := s.registrations.FindActiveByTeamIDs(ctx, teamIDs(teams))
	if err != nil {
		return nil, fmt.Errorf("s.registrations.FindActiveByTeamIDs -> %w", err)
	}

	registeredTeams := make([]string, 0, len(registrations))
	for _, reg := range registrations {
		registeredTeams = append(registeredTeams, reg.TeamID)
	}

	byTeam, err := s.submissions.FindByTeamIDs(ctx, registeredTeams)
	if err != nil {
		return nil, fmt.Errorf("s.submissions.FindByTeamIDs -> %w", err)
	}

	return s.views(ctx, append(individual, byTeam...))
}

func (s *SubmissionService) ListMineByCompetition(
	ctx context.Context,
	competitionID, studentID string,
) ([]domain.SubmissionView, error) {
	if _, err := findCompetition(ctx, s.competitions, competitionID); err != nil {
		return nil, err
	}

	mine, err := s.ListMine(ctx, studentID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.SubmissionView, 0, len(mine))
	for _, view := range mine {
		if view.CompetitionID == competitionID {
			views = append(views, view)
		}
	}

	return views, nil
}

// GetByID returns the submission to its submitter, to members of the owning
// team, and to the teacher who owns the competition.
func (s *SubmissionService) GetByID(ctx context.Context, id string, actor domain.Actor) (domain.SubmissionView, error) {
	submission, err := s.submissions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return domain.SubmissionView{}, ErrSubmissionNotFound
		}

		return domain.SubmissionView{}, fmt.Errorf("s.submissions.FindByID -> %w", err)
	}

	competition, err := findCompetition(ctx, s.competitions, submission.CompetitionID)
	if err != nil {
		return domain.SubmissionView{}, err
	}

	allowed, err := s.canView(ctx, submission, competition, actor)
	if err != nil {
		return domain.SubmissionView{}, err
	}
	if !allowed {
		return domain.SubmissionView{}, ErrSubmissionAccessDenied
	}

	return domain.NewSubmissionView(submission, &competition, s.now()), nil
}

func (s *SubmissionService) canView(
	ctx context.Context,
	submission domain.Submission,
	competition domain.Competition,
	actor domain.Actor,
) (bool, error) {
	if actor.HasRole(domain.RoleTeacher, domain.RoleAdmin) && competition.OwnedBy(actor.ID) {
		return true, nil
	}
	if !submission.IsTeamSubmission {
		return submission.SubmittedBy == actor.ID, nil
	}

	team, err := s.teams.FindByID(ctx, submission.TeamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("s.teams.FindByID -> %w", err)
	}

	return team.IsMember(actor.ID), nil
}

// ListForTeacher returns every submission to the competitions teacherID owns.
func (s *SubmissionService) ListForTeacher(ctx context.Context, teacherID string) ([]domain.SubmissionView, error) {
	owned, err := s.competitions.FindByCreator(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("s.competitions.FindByCreator -> %w", err)
	}

	ids := make([]string, len(owned))
	for i, competition := range owned {
		ids[i] = competition.ID
	}

	submissions, err := s.submissions.FindByCompetitionIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("s.submissions.FindByCompetitionIDs -> %w", err)
	}

	return s.viewsFor(submissions, owned), nil
}

// ListForTeacherCompetition returns the submissions to one internal
// competition owned by teacherID.
func (s *SubmissionService) ListForTeacherCompetition(
	ctx context.Context,
	competitionID, teacherID string,
) ([]domain.SubmissionView, error) {
	competition, err := findCompetition(ctx, s.competitions, competitionID)
	if err != nil {
		return nil, err
	}
	if !competition.IsInternal() {
		return nil, ErrExternalCompetition
	}
	if !competition.OwnedBy(teacherID) {
		return nil, ErrCompetitionNotOwned
	}

	submissions, err := s.submissions.FindByCompetitionIDs(ctx, []string{competition.ID})
	if err != nil {
		return nil, fmt.Errorf("s.submissions.FindByCompetitionIDs -> %w", err)
	}

	return s.viewsFor(submissions, []domain.Competition{competition}), nil
}

// views dedupes submissions and decorates them with their competition's
// window flags.
func (s *SubmissionService) views(ctx context.Context, submissions []domain.Submission) ([]domain.SubmissionView, error) {
	ids := make([]string, 0, len(submissions))
	seen := make(map[string]struct{}, len(submissions))
	for _, submission := range submissions {
		if _, ok := seen[submission.CompetitionID]; ok {
			continue
		}
		seen[submission.CompetitionID] = struct{}{}
		ids = append(ids, submission.CompetitionID)
	}

	competitions, err := s.competitions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("s.competitions.FindByIDs -> %w", err)
	}

	return s.viewsFor(submissions, competitions), nil
}

func (s *SubmissionService) viewsFor(submissions []domain.Submission, competitions []domain.Competition) []domain.SubmissionView {
	byID := make(map[string]*domain.Competition, len(competitions))
	for i := range competitions {
		byID[competitions[i].ID] = &competitions[i]
	}

	now := s.now()
	seen := make(map[string]struct{}, len(submissions))
	views := make([]domain.SubmissionView, 0, len(submissions))
	for _, submission := range submissions {
		if _, ok := seen[submission.ID]; ok {
			continue
		}
		seen[submission.ID] = struct{}{}
		views = append(views, domain.NewSubmissionView(submission, byID[submission.CompetitionID], now))
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].SubmittedAt.After(views[j].SubmittedAt)
	})

	return views
}
