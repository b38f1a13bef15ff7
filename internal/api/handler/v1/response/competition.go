package response

import (
	"time"

	"github.com/campusarena/competition-api/internal/domain"
)

type CompetitionResponse struct {
	domain.Competition
	CanRegister bool `json:"canRegister"`
	CanSubmit   bool `json:"canSubmit"`
}

func NewCompetitionResponse(c domain.Competition, now time.Time) CompetitionResponse {
	return CompetitionResponse{
		Competition: c,
		CanRegister: c.RegistrationOpen(now),
		CanSubmit:   c.CanSubmit(now),
	}
}

func NewCompetitionResponses(competitions []domain.Competition, now time.Time) []CompetitionResponse {
	resp := make([]CompetitionResponse, 0, len(competitions))
	for _, c := range competitions {
		resp = append(resp, NewCompetitionResponse(c, now))
	}

	return resp
}
