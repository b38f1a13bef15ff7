package domain

import "time"

type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "REGISTERED"
	// RegistrationCancelled is persisted by external tooling only.
	RegistrationCancelled RegistrationStatus = "CANCELLED"
)

type Registration struct {
	ID               string             `json:"id"`
	CompetitionID    string             `json:"competitionId"`
	StudentID        string             `json:"studentId,omitempty"`
	TeamID           string             `json:"teamId,omitempty"`
	TeamRegistration bool               `json:"teamRegistration"`
	Status           RegistrationStatus `json:"status"`
	RegisteredAt     time.Time          `json:"registeredAt"`
}

func NewIndividualRegistration(id, competitionID, studentID string, now time.Time) Registration {
	return Registration{
		ID:            id,
		CompetitionID: competitionID,
		StudentID:     studentID,
		Status:        RegistrationRegistered,
		RegisteredAt:  now,
	}
}

func NewTeamRegistration(id, competitionID, teamID string, now time.Time) Registration {
	return Registration{
		ID:               id,
		CompetitionID:    competitionID,
		TeamID:           teamID,
		TeamRegistration: true,
		Status:           RegistrationRegistered,
		RegisteredAt:     now,
	}
}

func (r Registration) IsActive() bool {
	return r.Status == RegistrationRegistered
}
