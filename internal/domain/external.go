package domain

import (
	"strings"
	"time"
)

// ExternalStatus is the review state of a participation a student reports in
// a competition run outside the platform.
type ExternalStatus string

const (
	ExternalPending  ExternalStatus = "PENDING"
	ExternalApproved ExternalStatus = "APPROVED"
	ExternalRejected ExternalStatus = "REJECTED"
)

const ExternalSourceStudent = "STUDENT_CREATED"

// ExternalDetails is the part of an external participation its owner edits.
type ExternalDetails struct {
	Title                string            `json:"title"`
	Category             string            `json:"category"`
	Organizer            string            `json:"organizer"`
	Mode                 string            `json:"mode"`
	Location             string            `json:"location"`
	Description          string            `json:"description"`
	ParticipationType    ParticipationType `json:"participationType,omitempty"`
	TeamSizeMin          *int              `json:"teamSizeMin,omitempty"`
	TeamSizeMax          *int              `json:"teamSizeMax,omitempty"`
	StartDate            *time.Time        `json:"startDate,omitempty"`
	EndDate              *time.Time        `json:"endDate,omitempty"`
	WebsiteLink          string            `json:"websiteLink"`
	Result               string            `json:"result"`
	Prizes               string            `json:"prizes"`
	SubmissionNotes      string            `json:"submissionNotes"`
	DeclarationConfirmed bool              `json:"declarationConfirmed"`
}

type ExternalParticipation struct {
	ExternalDetails

	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	// ProofFiles are blob store references, oldest first.
	ProofFiles  []string       `json:"proofFiles"`
	Source      string         `json:"source"`
	Status      ExternalStatus `json:"status"`
	AdminNote   string         `json:"adminNote,omitempty"`
	SubmittedAt time.Time      `json:"submittedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func NewExternalParticipation(id, ownerID string, details ExternalDetails, proofFiles []string, now time.Time) ExternalParticipation {
	if proofFiles == nil {
		proofFiles = []string{}
	}

	return ExternalParticipation{
		ExternalDetails: details,
		ID:              id,
		OwnerID:         ownerID,
		ProofFiles:      proofFiles,
		Source:          ExternalSourceStudent,
		Status:          ExternalPending,
		SubmittedAt:     now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Resubmit replaces the details and puts the participation back in the
// review queue, whatever its previous decision was.
func (p *ExternalParticipation) Resubmit(details ExternalDetails, now time.Time) {
	p.ExternalDetails = details
	p.Status = ExternalPending
	p.SubmittedAt = now
	p.UpdatedAt = now
}

func (p ExternalParticipation) OwnedBy(userID string) bool {
	return p.OwnerID == userID
}

// ExternalDecision is a reviewer's verdict on a pending participation.
type ExternalDecision struct {
	Status ExternalStatus
	Note   string
}

func Approval(note string) ExternalDecision {
	return ExternalDecision{Status: ExternalApproved, Note: strings.TrimSpace(note)}
}

func Rejection(reason string) ExternalDecision {
	return ExternalDecision{Status: ExternalRejected, Note: strings.TrimSpace(reason)}
}

// Rollback reopens a decided participation. The previous note is kept.
func Rollback() ExternalDecision {
	return ExternalDecision{Status: ExternalPending}
}

// From lists the statuses the decision may be applied to.
func (d ExternalDecision) From() []ExternalStatus {
	if d.Status == ExternalPending {
		return []ExternalStatus{ExternalApproved, ExternalRejected}
	}

	return []ExternalStatus{ExternalPending}
}

// ParseExternalStatus accepts a status in any letter case. The empty string
// is not a status.
func ParseExternalStatus(s string) (ExternalStatus, bool) {
	switch status := ExternalStatus(strings.ToUpper(strings.TrimSpace(s))); status {
	case ExternalPending, ExternalApproved, ExternalRejected:
		return status, true
	default:
		return "", false
	}
}
