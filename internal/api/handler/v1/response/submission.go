package response

import (
	"time"

	"github.com/campusarena/competition-api/internal/domain"
)

type SubmissionResponse struct {
	SubmissionID     string                  `json:"submissionId"`
	CompetitionID    string                  `json:"competitionId"`
	TeamID           string                  `json:"teamId,omitempty"`
	SubmittedBy      string                  `json:"submittedBy"`
	SubmissionType   domain.Format           `json:"submissionType"`
	File             string                  `json:"file,omitempty"`
	RepoLink         string                  `json:"repoLink,omitempty"`
	QuizAnswers      []string                `json:"quizAnswers,omitempty"`
	Description      string                  `json:"description,omitempty"`
	IsTeamSubmission bool                    `json:"isTeamSubmission"`
	SubmissionStatus domain.SubmissionStatus `json:"submissionStatus"`
	SubmittedAt      time.Time               `json:"submittedAt"`
	Evaluation       *domain.Evaluation      `json:"evaluation,omitempty"`
	CanSubmit        bool                    `json:"canSubmit"`
	CanEdit          bool                    `json:"canEdit"`
}

func NewSubmissionResponse(view domain.SubmissionView) SubmissionResponse {
	resp := SubmissionResponse{
		SubmissionID:     view.ID,
		CompetitionID:    view.CompetitionID,
		TeamID:           view.TeamID,
		SubmittedBy:      view.SubmittedBy,
		SubmissionType:   view.Type(),
		IsTeamSubmission: view.IsTeamSubmission,
		SubmissionStatus: view.Status,
		SubmittedAt:      view.SubmittedAt,
		Evaluation:       view.Evaluation,
		CanSubmit:        view.CanSubmit,
		CanEdit:          view.CanEdit,
	}

	switch p := view.Payload.(type) {
	case domain.AssignmentPayload:
		resp.File = p.File
		resp.Description = p.Description
	case domain.ProjectPayload:
		resp.RepoLink = p.RepoLink
		resp.Description = p.Description
	case domain.QuizPayload:
		resp.QuizAnswers = p.Answers
	}

	return resp
}

func NewSubmissionResponses(views []domain.SubmissionView) []SubmissionResponse {
	resp := make([]SubmissionResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, NewSubmissionResponse(v))
	}

	return resp
}

// EvaluationResponse is the graded submission together with its grade.
type EvaluationResponse struct {
	Submission   SubmissionResponse `json:"submission"`
	MarksAwarded int                `json:"marksAwarded"`
	Feedback     string             `json:"feedback"`
	EvaluatedAt  time.Time          `json:"evaluatedAt"`
}

func NewEvaluationResponse(view domain.SubmissionView) EvaluationResponse {
	resp := EvaluationResponse{
		Submission: NewSubmissionResponse(view),
	}
	if view.Evaluation != nil {
		resp.MarksAwarded = view.Evaluation.MarksAwarded
		resp.Feedback = view.Evaluation.Feedback
		resp.EvaluatedAt = view.Evaluation.EvaluatedAt
	}

	return resp
}
