package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository"
)

// store is an in-memory stand-in for postgres. A single mutex serialises all
// access the way row locks and unique indexes do in the real database.
type store struct {
	mu sync.Mutex

	competitions  map[string]domain.Competition
	teams         map[string]domain.Team
	registrations []domain.Registration
	submissions   map[string]domain.Submission
	notifications map[string]domain.Notification
}

func newStore(competitions ...domain.Competition) *store {
	s := &store{
		competitions:  map[string]domain.Competition{},
		teams:         map[string]domain.Team{},
		submissions:   map[string]domain.Submission{},
		notifications: map[string]domain.Notification{},
	}
	for _, c := range competitions {
		s.competitions[c.ID] = c
	}
	return s
}

func (s *store) activeTeamRegistrations(teamID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, reg := range s.registrations {
		if reg.TeamID == teamID && reg.IsActive() {
			count++
		}
	}
	return count
}

type fakeCompetitions struct{ *store }

func (f fakeCompetitions) FindByID(_ context.Context, id string) (domain.Competition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.competitions[id]
	if !ok {
		return domain.Competition{}, fmt.Errorf("dao -> %w", repository.ErrCompetitionNotFound)
	}
	return c, nil
}

func (f fakeCompetitions) FindByIDs(_ context.Context, ids []string) ([]domain.Competition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Competition
	for _, id := range ids {
		if c, ok := f.competitions[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f fakeCompetitions) FindAll(_ context.Context) ([]domain.Competition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Competition
	for _, c := range f.competitions {
		result = append(result, c)
	}
	slices.SortFunc(result, func(a, b domain.Competition) int {
		if a.ID < b.ID {
			return -1
		}
		return 1
	})
	return result, nil
}

func (f fakeCompetitions) FindByCreator(_ context.Context, createdBy string) ([]domain.Competition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Competition
	for _, c := range f.competitions {
		if c.CreatedBy == createdBy {
			result = append(result, c)
		}
	}
	return result, nil
}

type fakeRegistrations struct{ *store }

func (f fakeRegistrations) insertLocked(reg domain.Registration) bool {
	for _, existing := range f.registrations {
		if !existing.IsActive() || existing.CompetitionID != reg.CompetitionID {
			continue
		}
		if reg.StudentID != "" && existing.StudentID == reg.StudentID {
			return false
		}
		if reg.TeamID != "" && existing.TeamID == reg.TeamID {
			return false
		}
	}
	f.registrations = append(f.registrations, reg)
	return true
}

func (f fakeRegistrations) Create(_ context.Context, reg domain.Registration) (domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.insertLocked(reg) {
		return domain.Registration{}, fmt.Errorf("dao -> %w", repository.ErrAlreadyRegistered)
	}
	return reg, nil
}

func (f fakeRegistrations) EnsureTeamRegistration(_ context.Context, reg domain.Registration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.insertLocked(reg), nil
}

func (f fakeRegistrations) find(match func(domain.Registration) bool) (domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, reg := range f.registrations {
		if reg.IsActive() && match(reg) {
			return reg, nil
		}
	}
	return domain.Registration{}, repository.ErrRegistrationNotFound
}

func (f fakeRegistrations) FindActiveByStudent(_ context.Context, competitionID, studentID string) (domain.Registration, error) {
	return f.find(func(r domain.Registration) bool {
		return r.CompetitionID == competitionID && r.StudentID == studentID
	})
}

func (f fakeRegistrations) FindActiveByTeam(_ context.Context, competitionID, teamID string) (domain.Registration, error) {
	return f.find(func(r domain.Registration) bool {
		return r.CompetitionID == competitionID && r.TeamID == teamID
	})
}

func (f fakeRegistrations) FindActiveByStudentID(_ context.Context, studentID string) ([]domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Registration
	for _, reg := range f.registrations {
		if reg.IsActive() && reg.StudentID == studentID {
			result = append(result, reg)
		}
	}
	return result, nil
}

func (f fakeRegistrations) FindActiveByTeamIDs(_ context.Context, teamIDs []string) ([]domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Registration
	for _, reg := range f.registrations {
		if reg.IsActive() && reg.TeamID != "" && slices.Contains(teamIDs, reg.TeamID) {
			result = append(result, reg)
		}
	}
	return result, nil
}

type fakeTeams struct{ *store }

func (f fakeTeams) memberElsewhereLocked(competitionID, studentID, exceptTeamID string) bool {
	for _, team := range f.teams {
		if team.ID != exceptTeamID && team.CompetitionID == competitionID && team.IsMember(studentID) {
			return true
		}
	}
	return false
}

func (f fakeTeams) Create(_ context.Context, team domain.Team, reg *domain.Registration) (domain.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.memberElsewhereLocked(team.CompetitionID, team.LeaderID, "") {
		return domain.Team{}, fmt.Errorf("dao -> %w", repository.ErrStudentAlreadyInTeam)
	}
	f.teams[team.ID] = team
	if reg != nil && team.IsActive() {
		fakeRegistrations(f).insertLocked(*reg)
	}
	return team, nil
}

func (f fakeTeams) AddMember(
	_ context.Context,
	teamID, studentID string,
	guard func(team domain.Team) (domain.MemberChange, error),
	_ time.Time,
) (domain.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	team, ok := f.teams[teamID]
	if !ok {
		return domain.Team{}, repository.ErrTeamNotFound
	}

	change, err := guard(team)
	if err != nil {
		return domain.Team{}, fmt.Errorf("guard -> %w", err)
	}
	if change.Skip {
		return team, nil
	}
	if f.memberElsewhereLocked(team.CompetitionID, studentID, team.ID) {
		return domain.Team{}, fmt.Errorf("dao -> %w", repository.ErrStudentAlreadyInTeam)
	}

	team.AcceptedMemberIDs = append(slices.Clone(team.AcceptedMemberIDs), studentID)
	if change.Activate {
		team.Status = domain.TeamActive
	}
	f.teams[teamID] = team
	if change.Registration != nil && team.IsActive() {
		fakeRegistrations(f).insertLocked(*change.Registration)
	}

	return team, nil
}

func (f fakeTeams) FindByID(_ context.Context, id string) (domain.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	team, ok := f.teams[id]
	if !ok {
		return domain.Team{}, repository.ErrTeamNotFound
	}
	return team, nil
}

func (f fakeTeams) filter(match func(domain.Team) bool) []domain.Team {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Team
	for _, team := range f.teams {
		if match(team) {
			result = append(result, team)
		}
	}
	return result
}

func (f fakeTeams) FindByCompetition(_ context.Context, competitionID string) ([]domain.Team, error) {
	return f.filter(func(t domain.Team) bool { return t.CompetitionID == competitionID }), nil
}

func (f fakeTeams) FindByMember(_ context.Context, studentID string) ([]domain.Team, error) {
	return f.filter(func(t domain.Team) bool { return t.IsMember(studentID) }), nil
}

func (f fakeTeams) FindByMemberInCompetition(_ context.Context, competitionID, studentID string) (domain.Team, error) {
	teams := f.filter(func(t domain.Team) bool { return t.CompetitionID == competitionID && t.IsMember(studentID) })
	if len(teams) == 0 {
		return domain.Team{}, repository.ErrTeamNotFound
	}
	return teams[0], nil
}

func (f fakeTeams) FindLedBy(_ context.Context, competitionID, leaderID string) (domain.Team, error) {
	teams := f.filter(func(t domain.Team) bool { return t.CompetitionID == competitionID && t.LeaderID == leaderID })
	if len(teams) == 0 {
		return domain.Team{}, repository.ErrTeamNotFound
	}
	return teams[0], nil
}

type fakeSubmissions struct{ *store }

func (f fakeSubmissions) byIdentityLocked(competitionID, submittedBy string) (domain.Submission, bool) {
	for _, sub := range f.submissions {
		if sub.CompetitionID == competitionID && sub.SubmittedBy == submittedBy {
			return sub, true
		}
	}
	return domain.Submission{}, false
}

func (f fakeSubmissions) Upsert(_ context.Context, submission domain.Submission) (domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.byIdentityLocked(submission.CompetitionID, submission.SubmittedBy); ok {
		if existing.Status != domain.SubmissionSubmitted {
			return domain.Submission{}, repository.ErrSubmissionFrozen
		}
		submission.ID = existing.ID
		submission.Status = existing.Status
	}
	f.submissions[submission.ID] = submission
	return submission, nil
}

func (f fakeSubmissions) CreateOnce(_ context.Context, submission domain.Submission) (domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.byIdentityLocked(submission.CompetitionID, submission.SubmittedBy); ok {
		return domain.Submission{}, fmt.Errorf("dao -> %w", repository.ErrSubmissionExists)
	}
	f.submissions[submission.ID] = submission
	return submission, nil
}

func (f fakeSubmissions) Evaluate(_ context.Context, id string, evaluation domain.Evaluation) (domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub, ok := f.submissions[id]
	if !ok || sub.Status != domain.SubmissionSubmitted {
		return domain.Submission{}, repository.ErrSubmissionNotEvaluable
	}
	sub.Status = domain.SubmissionEvaluated
	sub.Evaluation = &evaluation
	f.submissions[id] = sub
	return sub, nil
}

func (f fakeSubmissions) FindByID(_ context.Context, id string) (domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub, ok := f.submissions[id]
	if !ok {
		return domain.Submission{}, repository.ErrSubmissionNotFound
	}
	return sub, nil
}

func (f fakeSubmissions) FindByCompetitionAndSubmitter(_ context.Context, competitionID, submittedBy string) (domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub, ok := f.byIdentityLocked(competitionID, submittedBy)
	if !ok {
		return domain.Submission{}, repository.ErrSubmissionNotFound
	}
	return sub, nil
}

func (f fakeSubmissions) filter(match func(domain.Submission) bool) []domain.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Submission
	for _, sub := range f.submissions {
		if match(sub) {
			result = append(result, sub)
		}
	}
	return result
}

func (f fakeSubmissions) FindIndividualBySubmitter(_ context.Context, submittedBy string) ([]domain.Submission, error) {
	return f.filter(func(s domain.Submission) bool { return !s.IsTeamSubmission && s.SubmittedBy == submittedBy }), nil
}

func (f fakeSubmissions) FindByTeamIDs(_ context.Context, teamIDs []string) ([]domain.Submission, error) {
	return f.filter(func(s domain.Submission) bool { return s.TeamID != "" && slices.Contains(teamIDs, s.TeamID) }), nil
}

func (f fakeSubmissions) FindByCompetitionIDs(_ context.Context, competitionIDs []string) ([]domain.Submission, error) {
	return f.filter(func(s domain.Submission) bool { return slices.Contains(competitionIDs, s.CompetitionID) }), nil
}

type fakeNotifications struct {
	*store
	failures atomic.Bool
}

func (f *fakeNotifications) Create(_ context.Context, n domain.Notification) (domain.Notification, error) {
	if f.failures.Load() {
		return domain.Notification{}, fmt.Errorf("connection refused")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.notifications[n.ID] = n
	return n, nil
}

func (f *fakeNotifications) FindByID(_ context.Context, id string) (domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, ok := f.notifications[id]
	if !ok {
		return domain.Notification{}, repository.ErrNotificationNotFound
	}
	return n, nil
}

func (f *fakeNotifications) FindByRecipient(_ context.Context, recipientID string, unreadOnly bool) ([]domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Notification
	for _, n := range f.notifications {
		if n.RecipientID == recipientID && (!unreadOnly || !n.Read) {
			result = append(result, n)
		}
	}
	slices.SortFunc(result, func(a, b domain.Notification) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return result, nil
}

func (f *fakeNotifications) MarkRead(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, ok := f.notifications[id]
	if !ok {
		return repository.ErrNotificationNotFound
	}
	n.Read = true
	f.notifications[id] = n
	return nil
}

func (f *fakeNotifications) MarkAllRead(_ context.Context, recipientID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var updated int64
	for id, n := range f.notifications {
		if n.RecipientID == recipientID && !n.Read {
			n.Read = true
			f.notifications[id] = n
			updated++
		}
	}
	return updated, nil
}

// recordingNotifier keeps every notification handed to it.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (r *recordingNotifier) Notify(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) ofType(t domain.NotificationType) []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Notification
	for _, n := range r.sent {
		if n.Type == t {
			result = append(result, n)
		}
	}
	return result
}

// sequence returns an id generator yielding prefix-1, prefix-2, ...
func sequence(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T { return &v }

// fixture wires every service over one store with a frozen clock.
type fixture struct {
	store    *store
	notifier *recordingNotifier
	now      time.Time

	registrations *RegistrationService
	teams         *TeamService
	submissions   *SubmissionService
	evaluations   *EvaluationService
}

func newFixture(now time.Time, competitions ...domain.Competition) *fixture {
	st := newStore(competitions...)
	notifier := &recordingNotifier{}

	registrations := NewRegistrationService(fakeCompetitions{st}, fakeRegistrations{st}, fakeTeams{st})
	registrations.now = fixedClock(now)
	registrations.newID = sequence("reg")

	teams := NewTeamService(fakeCompetitions{st}, fakeTeams{st}, registrations, notifier)
	teams.now = fixedClock(now)
	teams.newID = sequence("team")

	submissions := NewSubmissionService(fakeCompetitions{st}, fakeRegistrations{st}, fakeTeams{st}, fakeSubmissions{st}, notifier)
	submissions.now = fixedClock(now)
	submissions.newID = sequence("sub")

	evaluations := NewEvaluationService(fakeCompetitions{st}, fakeSubmissions{st}, notifier)
	evaluations.now = fixedClock(now)

	return &fixture{
		store:         st,
		notifier:      notifier,
		now:           now,
		registrations: registrations,
		teams:         teams,
		submissions:   submissions,
		evaluations:   evaluations,
	}
}
