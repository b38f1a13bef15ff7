package request

import (
	"github.com/campusarena/competition-api/internal/domain"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"strings"
	"time"
)

const (
	dateLayout        = "2006-01-02"
	maxExternalText   = 255
	maxProofFiles     = 20
	maxReviewNote     = 1000
	maxBulkReviewSize = 200
)

type ExternalParticipationRequest struct {
	Title                string   `json:"title"`
	Category             string   `json:"category"`
	Organizer            string   `json:"organizer"`
	Mode                 string   `json:"mode"`
	Location             string   `json:"location"`
	Description          string   `json:"description"`
	ParticipationType    string   `json:"participationType"`
	TeamSizeMin          *int     `json:"teamSizeMin"`
	TeamSizeMax          *int     `json:"teamSizeMax"`
	StartDate            string   `json:"startDate" example:"2026-03-14"`
	EndDate              string   `json:"endDate" example:"2026-03-16"`
	WebsiteLink          string   `json:"websiteLink"`
	Result               string   `json:"result"`
	Prizes               string   `json:"prizes"`
	SubmissionNotes      string   `json:"submissionNotes"`
	DeclarationConfirmed bool     `json:"declarationConfirmed"`
	ProofFiles           []string `json:"proofFiles"`
}

func (req *ExternalParticipationRequest) Validate() error {
	req.Title = strings.TrimSpace(req.Title)
	req.ParticipationType = strings.ToUpper(strings.TrimSpace(req.ParticipationType))

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(0, maxExternalText)),
		validation.Field(&req.Category, validation.Length(0, maxExternalText)),
		validation.Field(&req.Organizer, validation.Length(0, maxExternalText)),
		validation.Field(&req.Description, validation.Length(0, maxDescriptionLength)),
		validation.Field(&req.ParticipationType,
			validation.In(string(domain.ParticipationIndividual), string(domain.ParticipationTeam))),
		validation.Field(&req.TeamSizeMin, validation.Min(1)),
		validation.Field(&req.TeamSizeMax, validation.Min(1)),
		validation.Field(&req.StartDate, validation.Date(dateLayout)),
		validation.Field(&req.EndDate, validation.Date(dateLayout)),
		validation.Field(&req.WebsiteLink, is.URL),
		validation.Field(&req.ProofFiles, validation.Length(0, maxProofFiles)),
	)
}

// Details converts a validated request.
func (req *ExternalParticipationRequest) Details() domain.ExternalDetails {
	return domain.ExternalDetails{
		Title:                req.Title,
		Category:             req.Category,
		Organizer:            req.Organizer,
		Mode:                 req.Mode,
		Location:             req.Location,
		Description:          req.Description,
		ParticipationType:    domain.ParticipationType(req.ParticipationType),
		TeamSizeMin:          req.TeamSizeMin,
		TeamSizeMax:          req.TeamSizeMax,
		StartDate:            parseDate(req.StartDate),
		EndDate:              parseDate(req.EndDate),
		WebsiteLink:          req.WebsiteLink,
		Result:               req.Result,
		Prizes:               req.Prizes,
		SubmissionNotes:      req.SubmissionNotes,
		DeclarationConfirmed: req.DeclarationConfirmed,
	}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}

	return &t
}

type ProofRequest struct {
	// File is the reference returned by the blob store.
	File string `json:"file"`
}

func (req *ProofRequest) Validate() error {
	req.File = strings.TrimSpace(req.File)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.File, validation.Required.Error("proof file is required")),
	)
}

// ReviewRequest carries the optional admin note. Approvals read Notes,
// rejections read Reason.
type ReviewRequest struct {
	Notes  string `json:"notes"`
	Reason string `json:"reason"`
}

func (req *ReviewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Notes, validation.Length(0, maxReviewNote)),
		validation.Field(&req.Reason, validation.Length(0, maxReviewNote)),
	)
}

type BulkReviewRequest struct {
	IDs    []string `json:"ids"`
	Notes  string   `json:"notes"`
	Reason string   `json:"reason"`
}

func (req *BulkReviewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.IDs, validation.Required.Error("ids required"), validation.Length(1, maxBulkReviewSize)),
		validation.Field(&req.Notes, validation.Length(0, maxReviewNote)),
		validation.Field(&req.Reason, validation.Length(0, maxReviewNote)),
	)
}
