package response

import (
	"time"

	"github.com/campusarena/competition-api/internal/domain"
)

const dateLayout = "2006-01-02"

type ExternalParticipationResponse struct {
	ID                   string                   `json:"id"`
	OwnerID              string                   `json:"ownerId"`
	Title                string                   `json:"title"`
	Category             string                   `json:"category,omitempty"`
	Organizer            string                   `json:"organizer,omitempty"`
	Mode                 string                   `json:"mode,omitempty"`
	Location             string                   `json:"location,omitempty"`
	Description          string                   `json:"description,omitempty"`
	ParticipationType    domain.ParticipationType `json:"participationType,omitempty"`
	TeamSizeMin          *int                     `json:"teamSizeMin,omitempty"`
	TeamSizeMax          *int                     `json:"teamSizeMax,omitempty"`
	StartDate            string                   `json:"startDate,omitempty" example:"2026-03-14"`
	EndDate              string                   `json:"endDate,omitempty" example:"2026-03-16"`
	WebsiteLink          string                   `json:"websiteLink,omitempty"`
	Result               string                   `json:"result,omitempty"`
	Prizes               string                   `json:"prizes,omitempty"`
	SubmissionNotes      string                   `json:"submissionNotes,omitempty"`
	DeclarationConfirmed bool                     `json:"declarationConfirmed"`
	ProofFiles           []string                 `json:"proofFiles"`
	Source               string                   `json:"source"`
	Status               domain.ExternalStatus    `json:"status"`
	AdminNote            string                   `json:"adminNote,omitempty"`
	SubmittedAt          time.Time                `json:"submittedAt"`
	UpdatedAt            time.Time                `json:"updatedAt"`
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(dateLayout)
}

func NewExternalParticipationResponse(p domain.ExternalParticipation) ExternalParticipationResponse {
	proofFiles := p.ProofFiles
	if proofFiles == nil {
		proofFiles = []string{}
	}

	return ExternalParticipationResponse{
		ID:                   p.ID,
		OwnerID:              p.OwnerID,
		Title:                p.Title,
		Category:             p.Category,
		Organizer:            p.Organizer,
		Mode:                 p.Mode,
		Location:             p.Location,
		Description:          p.Description,
		ParticipationType:    p.ParticipationType,
		TeamSizeMin:          p.TeamSizeMin,
		TeamSizeMax:          p.TeamSizeMax,
		StartDate:            formatDate(p.StartDate),
		EndDate:              formatDate(p.EndDate),
		WebsiteLink:          p.WebsiteLink,
		Result:               p.Result,
		Prizes:               p.Prizes,
		SubmissionNotes:      p.SubmissionNotes,
		DeclarationConfirmed: p.DeclarationConfirmed,
		ProofFiles:           proofFiles,
		Source:               p.Source,
		Status:               p.Status,
		AdminNote:            p.AdminNote,
		SubmittedAt:          p.SubmittedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func NewExternalParticipationResponses(participations []domain.ExternalParticipation) []ExternalParticipationResponse {
	resp := make([]ExternalParticipationResponse, 0, len(participations))
	for _, p := range participations {
		resp = append(resp, NewExternalParticipationResponse(p))
	}

	return resp
}

type BulkReviewResponse struct {
	Reviewed       int                             `json:"reviewed"`
	Participations []ExternalParticipationResponse `json:"participations"`
}
