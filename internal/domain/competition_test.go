package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestCompetition_SubmissionWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		registration *time.Time
		submission   *time.Time
		want         WindowState
	}{
		{name: "no deadlines", want: WindowOpen},
		{name: "registration still open", registration: ptr(now.Add(time.Hour)), want: WindowNotOpen},
		{name: "between deadlines", registration: ptr(now.Add(-time.Hour)), submission: ptr(now.Add(time.Hour)), want: WindowOpen},
		{name: "at registration deadline", registration: ptr(now), want: WindowOpen},
		{name: "after submission deadline", registration: ptr(now.Add(-2 * time.Hour)), submission: ptr(now.Add(-time.Hour)), want: WindowClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Competition{RegistrationDeadline: tt.registration, SubmissionDeadline: tt.submission}
			assert.Equal(t, tt.want, c.SubmissionWindow(now))
			assert.Equal(t, tt.want == WindowOpen, c.CanSubmit(now))
		})
	}
}

func TestCompetition_CanEditNeverForQuiz(t *testing.T) {
	now := time.Now()
	windows := []Competition{
		{},
		{RegistrationDeadline: ptr(now.Add(time.Hour))},
		{SubmissionDeadline: ptr(now.Add(-time.Hour))},
	}

	for _, c := range windows {
		c.Format = FormatQuiz
		assert.False(t, c.CanEdit(now))

		c.Format = "quiz"
		assert.False(t, c.CanEdit(now))
	}

	open := Competition{Format: FormatAssignment}
	assert.True(t, open.CanEdit(now))
}

func TestCompetition_RegistrationOpen(t *testing.T) {
	now := time.Now()

	assert.True(t, Competition{}.RegistrationOpen(now))
	assert.True(t, Competition{RegistrationDeadline: ptr(now)}.RegistrationOpen(now))
	assert.False(t, Competition{RegistrationDeadline: ptr(now.Add(-time.Second))}.RegistrationOpen(now))
}

func TestCompetition_TeamSizes(t *testing.T) {
	c := Competition{MinTeamSize: ptr(2), MaxTeamSize: ptr(3)}

	assert.False(t, c.ReachesMinTeamSize(1))
	assert.True(t, c.ReachesMinTeamSize(2))
	assert.True(t, c.AllowsTeamSize(3))
	assert.False(t, c.AllowsTeamSize(4))

	unbounded := Competition{}
	assert.True(t, unbounded.ReachesMinTeamSize(1))
	assert.True(t, unbounded.AllowsTeamSize(100))
}

func TestCompetition_Kinds(t *testing.T) {
	c := Competition{ParticipationType: "team", CompetitionType: "internal", CreatedBy: "t1"}

	assert.True(t, c.IsTeam())
	assert.False(t, c.IsIndividual())
	assert.True(t, c.IsInternal())
	assert.True(t, c.OwnedBy("t1"))
	assert.False(t, c.OwnedBy(""))
}
