package request

import (
	"errors"
	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"strings"
)

const (
	// A team name needs at least one letter; digits and separators alone are rejected.
	teamNameRegexPattern = `^(?=.*\p{L})[\p{L}\p{N} _.-]{2,50}$`
	maxInvitedMembers    = 50
)

var (
	teamNameExp = regexp2.MustCompile(teamNameRegexPattern, regexp2.None)

	errInvalidTeamName = errors.New("the team name must be 2 to 50 letters, digits, spaces or _.- and contain a letter")
)

type CreateTeamRequest struct {
	CompetitionID    string   `json:"competitionId"`
	TeamName         string   `json:"teamName"`
	InvitedMemberIDs []string `json:"invitedMemberIds"`
}

func (req *CreateTeamRequest) Validate() error {
	req.TeamName = strings.TrimSpace(req.TeamName)

	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CompetitionID, validation.Required),
		validation.Field(&req.TeamName, validation.Required),
		validation.Field(&req.InvitedMemberIDs, validation.Length(0, maxInvitedMembers)),
	)
	if err != nil {
		return err
	}

	ok, err := teamNameExp.MatchString(req.TeamName)
	if err != nil || !ok {
		return errInvalidTeamName
	}

	return nil
}
