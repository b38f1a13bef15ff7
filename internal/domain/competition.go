package domain

import (
	"strings"
	"time"
)

type CompetitionType string

const (
	CompetitionInternal CompetitionType = "INTERNAL"
	CompetitionExternal CompetitionType = "EXTERNAL"
)

type Format string

const (
	FormatQuiz       Format = "QUIZ"
	FormatAssignment Format = "ASSIGNMENT"
	FormatProject    Format = "PROJECT"
)

// Matches compares formats case-insensitively.
func (f Format) Matches(other Format) bool {
	return strings.EqualFold(string(f), string(other))
}

type ParticipationType string

const (
	ParticipationIndividual ParticipationType = "INDIVIDUAL"
	ParticipationTeam       ParticipationType = "TEAM"
)

// WindowState is the position of an instant relative to the submission window.
type WindowState int

const (
	WindowNotOpen WindowState = iota
	WindowOpen
	WindowClosed
)

type Competition struct {
	ID                   string            `json:"competitionId"`
	Title                string            `json:"title"`
	Description          string            `json:"description,omitempty"`
	CompetitionType      CompetitionType   `json:"competitionType"`
	Format               Format            `json:"format"`
	ParticipationType    ParticipationType `json:"participationType"`
	CreatedBy            string            `json:"createdBy"`
	RegistrationDeadline *time.Time        `json:"registrationDeadline,omitempty"`
	SubmissionDeadline   *time.Time        `json:"submissionDeadline,omitempty"`
	ProofDeadline        *time.Time        `json:"proofDeadline,omitempty"`
	QuizDurationMinutes  *int              `json:"quizDurationMinutes,omitempty"`
	MinTeamSize          *int              `json:"minTeamSize,omitempty"`
	MaxTeamSize          *int              `json:"maxTeamSize,omitempty"`
	TotalMarks           int               `json:"totalMarks"`
	Materials            string            `json:"materials,omitempty"`
}

func (c Competition) IsTeam() bool {
	return strings.EqualFold(string(c.ParticipationType), string(ParticipationTeam))
}

func (c Competition) IsIndividual() bool {
	return strings.EqualFold(string(c.ParticipationType), string(ParticipationIndividual))
}

func (c Competition) IsInternal() bool {
	return strings.EqualFold(string(c.CompetitionType), string(CompetitionInternal))
}

func (c Competition) OwnedBy(userID string) bool {
	return userID != "" && c.CreatedBy == userID
}

// RegistrationOpen reports whether now is on or before the registration deadline.
func (c Competition) RegistrationOpen(now time.Time) bool {
	return c.RegistrationDeadline == nil || !now.After(*c.RegistrationDeadline)
}

// SubmissionWindow places now relative to the submission window, which opens
// once registration closes and ends at the submission deadline.
func (c Competition) SubmissionWindow(now time.Time) WindowState {
	if c.RegistrationDeadline != nil && now.Before(*c.RegistrationDeadline) {
		return WindowNotOpen
	}
	if c.SubmissionDeadline != nil && now.After(*c.SubmissionDeadline) {
		return WindowClosed
	}

	return WindowOpen
}

func (c Competition) CanSubmit(now time.Time) bool {
	return c.SubmissionWindow(now) == WindowOpen
}

// CanEdit is false for quizzes regardless of the window.
func (c Competition) CanEdit(now time.Time) bool {
	return c.CanSubmit(now) && !c.Format.Matches(FormatQuiz)
}

// AllowsTeamSize reports whether a team of size members fits under the maximum.
func (c Competition) AllowsTeamSize(size int) bool {
	return c.MaxTeamSize == nil || size <= *c.MaxTeamSize
}

// ReachesMinTeamSize reports whether size members is enough to activate a team.
func (c Competition) ReachesMinTeamSize(size int) bool {
	return c.MinTeamSize == nil || size >= *c.MinTeamSize
}
