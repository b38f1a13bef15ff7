package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrAssignmentFileRequired = errors.New("assignment file is required")
	ErrRepoLinkRequired       = errors.New("repository link is required")
	ErrPayloadRequired        = errors.New("submission payload is required")
)

type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "SUBMITTED"
	// SubmissionUnderReview is reserved; no operation produces it.
	SubmissionUnderReview SubmissionStatus = "UNDER_REVIEW"
	SubmissionEvaluated   SubmissionStatus = "EVALUATED"
)

// Payload is the format-specific content of a submission. Exactly one variant
// is carried by a submission, selected by its format.
type Payload interface {
	Format() Format
	Validate() error
}

type AssignmentPayload struct {
	// File is an opaque blob-store reference.
	File        string
	Description string
}

func (AssignmentPayload) Format() Format { return FormatAssignment }

func (p AssignmentPayload) Validate() error {
	if strings.TrimSpace(p.File) == "" {
		return ErrAssignmentFileRequired
	}
	return nil
}

type ProjectPayload struct {
	RepoLink    string
	Description string
}

func (ProjectPayload) Format() Format { return FormatProject }

func (p ProjectPayload) Validate() error {
	if strings.TrimSpace(p.RepoLink) == "" {
		return ErrRepoLinkRequired
	}
	return nil
}

type QuizPayload struct {
	Answers []string
}

func (QuizPayload) Format() Format { return FormatQuiz }

func (QuizPayload) Validate() error { return nil }

type Evaluation struct {
	MarksAwarded int       `json:"marksAwarded"`
	Feedback     string    `json:"feedback"`
	EvaluatedAt  time.Time `json:"evaluatedAt"`
}

// ActingIdentity is who a submission is made for: a student alone, or a team
// represented by its leader.
type ActingIdentity struct {
	SubmittedBy string
	TeamID      string
}

func IndividualIdentity(studentID string) ActingIdentity {
	return ActingIdentity{SubmittedBy: studentID}
}

func TeamIdentity(teamID, leaderID string) ActingIdentity {
	return ActingIdentity{SubmittedBy: leaderID, TeamID: teamID}
}

func (i ActingIdentity) IsTeam() bool {
	return i.TeamID != ""
}

type Submission struct {
	ID               string
	CompetitionID    string
	SubmittedBy      string
	TeamID           string
	IsTeamSubmission bool
	Payload          Payload
	Status           SubmissionStatus
	Evaluation       *Evaluation
	SubmittedAt      time.Time
}

// NewSubmission creates a SUBMITTED submission for identity.
func NewSubmission(id, competitionID string, identity ActingIdentity, payload Payload, now time.Time) (Submission, error) {
	if payload == nil {
		return Submission{}, ErrPayloadRequired
	}
	if err := payload.Validate(); err != nil {
		return Submission{}, err
	}

	return Submission{
		ID:               id,
		CompetitionID:    competitionID,
		SubmittedBy:      identity.SubmittedBy,
		TeamID:           identity.TeamID,
		IsTeamSubmission: identity.IsTeam(),
		Payload:          payload,
		Status:           SubmissionSubmitted,
		SubmittedAt:      now,
	}, nil
}

func (s Submission) Type() Format {
	if s.Payload == nil {
		return ""
	}
	return s.Payload.Format()
}

func (s Submission) IsEvaluated() bool {
	return s.Status == SubmissionEvaluated
}

// Evaluate moves a SUBMITTED submission to EVALUATED. It reports false when
// the submission is in any other status.
func (s *Submission) Evaluate(marks int, feedback string, now time.Time) bool {
	if s.Status != SubmissionSubmitted {
		return false
	}

	s.Evaluation = &Evaluation{
		MarksAwarded: marks,
		Feedback:     feedback,
		EvaluatedAt:  now,
	}
	s.Status = SubmissionEvaluated

	return true
}

// SubmissionView is a submission with flags derived from its competition at read time.
type SubmissionView struct {
	Submission
	CanSubmit bool
	CanEdit   bool
}

func NewSubmissionView(s Submission, competition *Competition, now time.Time) SubmissionView {
	view := SubmissionView{Submission: s}
	if competition != nil {
		view.CanSubmit = competition.CanSubmit(now)
		view.CanEdit = competition.CanEdit(now)
	}

	return view
}
