package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusarena/competition-api/internal/domain"
)

func TestTeamService_FormationScenario(t *testing.T) {
	f := newFixture(testNow, teamCompetition("c2", 2, 3))
	ctx := context.Background()

	team, err := f.teams.CreateTeam(ctx, "c2", "Alpha", []string{"b", "c"}, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.TeamPending, team.Status)
	assert.Equal(t, []string{"a"}, team.AcceptedMemberIDs)
	assert.Len(t, f.notifier.ofType(domain.NotificationTeamInvitation), 2)
	assert.Equal(t, 0, f.store.activeTeamRegistrations(team.ID))

	team, err = f.teams.JoinTeam(ctx, team.ID, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, team.AcceptedMemberIDs)
	assert.Equal(t, domain.TeamActive, team.Status)
	assert.Equal(t, 1, f.store.activeTeamRegistrations(team.ID))

	team, err = f.teams.AcceptInvitation(ctx, team.ID, "c")
	require.NoError(t, err)
	assert.Len(t, team.AcceptedMemberIDs, 3)
	assert.Equal(t, 1, f.store.activeTeamRegistrations(team.ID))

	_, err = f.teams.JoinTeam(ctx, team.ID, "d")
	assert.ErrorIs(t, err, ErrTeamFull)

	confirmations := f.notifier.ofType(domain.NotificationTeamConfirmation)
	// b and c joined, and the leader heard about activation once.
	assert.Len(t, confirmations, 3)
}

func TestTeamService_CreateTeam_ActiveWhenLeaderSuffices(t *testing.T) {
	f := newFixture(testNow, teamCompetition("c2", 1, 3))
	ctx := context.Background()

	team, err := f.teams.CreateTeam(ctx, "c2", "Solo", nil, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.TeamActive, team.Status)
	assert.Equal(t, 1, f.store.activeTeamRegistrations(team.ID))
}

func TestTeamService_CreateTeam_Errors(t *testing.T) {
	closed := teamCompetition("closed", 2, 3)
	closed.RegistrationDeadline = ptr(testNow.Add(-time.Hour))

	f := newFixture(testNow,
		teamCompetition("c2", 2, 3),
		closed,
		individualCompetition("solo", testNow.Add(time.Hour)),
	)
	ctx := context.Background()

	_, err := f.teams.CreateTeam(ctx, "c2", "Alpha", nil, "a")
	require.NoError(t, err)

	tests := []struct {
		name          string
		competitionID string
		teamName      string
		leaderID      string
		wantErr       error
	}{
		{name: "unknown competition", competitionID: "missing", teamName: "X", leaderID: "z", wantErr: ErrCompetitionNotFound},
		{name: "individual competition", competitionID: "solo", teamName: "X", leaderID: "z", wantErr: ErrNotTeamCompetition},
		{name: "deadline passed", competitionID: "closed", teamName: "X", leaderID: "z", wantErr: ErrRegistrationDeadlinePassed},
		{name: "blank name", competitionID: "c2", teamName: "  ", leaderID: "z", wantErr: ErrTeamNameRequired},
		{name: "leader already in a team", competitionID: "c2", teamName: "Beta", leaderID: "a", wantErr: ErrStudentAlreadyInTeam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.teams.CreateTeam(ctx, tt.competitionID, tt.teamName, nil, tt.leaderID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTeamService_Join_NoOpForMembers(t *testing.T) {
	f := newFixture(testNow, teamCompetition("c2", 2, 3))
	ctx := context.Background()

	team, err := f.teams.CreateTeam(ctx, "c2", "Alpha", nil, "a")
	require.NoError(t, err)

	again, err := f.teams.AcceptInvitation(ctx, team.ID, "a")
	require.NoError(t, err)
	assert.Equal(t, team, again)

	_, err = f.teams.JoinTeam(ctx, team.ID, "b")
	require.NoError(t, err)

	again, err = f.teams.JoinTeam(ctx, team.ID, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, again.AcceptedMemberIDs)
	assert.Equal(t, 1, f.store.activeTeamRegistrations(team.ID))
}

func TestTeamService_Join_Errors(t *testing.T) {
	f := newFixture(testNow, teamCompetition("c2", 3, 4))
	ctx := context.Background()

	alpha, err := f.teams.CreateTeam(ctx, "c2", "Alpha", []string{"b"}, "a")
	require.NoError(t, err)
	_, err = f.teams.CreateTeam(ctx, "c2", "Beta", nil, "x")
	require.NoError(t, err)

	_, err = f.teams.JoinTeam(ctx, "missing", "b")
	assert.ErrorIs(t, err, ErrTeamNotFound)

	_, err = f.teams.AcceptInvitation(ctx, alpha.ID, "c")
	assert.ErrorIs(t, err, ErrNotInvited)

	_, err = f.teams.JoinTeam(ctx, alpha.ID, "x")
	assert.ErrorIs(t, err, ErrStudentAlreadyInTeam)

	later := newFixture(testNow, teamCompetition("c2", 3, 4))
	team, err := later.teams.CreateTeam(ctx, "c2", "Gamma", []string{"b"}, "a")
	require.NoError(t, err)
	later.teams.now = fixedClock(testNow.Add(48 * time.Hour))

	_, err = later.teams.AcceptInvitation(ctx, team.ID, "b")
	assert.ErrorIs(t, err, ErrRegistrationDeadlinePassed)
}

func TestTeamService_Join_ConcurrentNeverExceedsMax(t *testing.T) {
	f := newFixture(testNow, teamCompetition("c2", 2, 3))
	ctx := context.Background()

	team, err := f.teams.CreateTeam(ctx, "c2", "Alpha", nil, "leader")
	require.NoError(t, err)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		joined int
		full   int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.teams.JoinTeam(ctx, team.ID, fmt.Sprintf("student-%d", i))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				joined++
			case assert.ErrorIs(t, err, ErrTeamFull):
				full++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 2, joined)
	assert.Equal(t, 18, full)

	stored, err := f.teams.teams.FindByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, stored.AcceptedMemberIDs, 3)
	assert.Equal(t, domain.TeamActive, stored.Status)
	assert.Equal(t, 1, f.store.activeTeamRegistrations(team.ID))
}

func TestTeamService_Lists(t *testing.T) {
	f := newFixture(testNow, teamCompetition("c2", 2, 3), teamCompetition("c3", 2, 3))
	ctx := context.Background()

	_, err := f.teams.CreateTeam(ctx, "c2", "Alpha", nil, "a")
	require.NoError(t, err)
	_, err = f.teams.CreateTeam(ctx, "c2", "Beta", nil, "b")
	require.NoError(t, err)
	_, err = f.teams.CreateTeam(ctx, "c3", "Gamma", nil, "a")
	require.NoError(t, err)

	byCompetition, err := f.teams.ListByCompetition(ctx, "c2")
	require.NoError(t, err)
	assert.Len(t, byCompetition, 2)

	_, err = f.teams.ListByCompetition(ctx, "missing")
	assert.ErrorIs(t, err, ErrCompetitionNotFound)

	mine, err := f.teams.ListMine(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
