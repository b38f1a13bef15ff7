package domain

import (
	"errors"
	"slices"
	"strings"
	"time"
)

var (
	ErrTeamNameRequired   = errors.New("team name is required")
	ErrTeamLeaderRequired = errors.New("team leader is required")
)

type TeamStatus string

const (
	TeamPending TeamStatus = "PENDING"
	TeamActive  TeamStatus = "ACTIVE"
)

type Team struct {
	ID                string     `json:"teamId"`
	Name              string     `json:"teamName"`
	CompetitionID     string     `json:"competitionId"`
	LeaderID          string     `json:"leaderId"`
	InvitedMemberIDs  []string   `json:"invitedMemberIds"`
	AcceptedMemberIDs []string   `json:"acceptedMemberIds"`
	Status            TeamStatus `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// NewTeam builds a team led by leaderID. The leader is the first accepted
// member and is never kept in the invited set. The team starts ACTIVE when
// the leader alone satisfies the competition's minimum size.
func NewTeam(id, name string, competition Competition, leaderID string, invited []string, now time.Time) (Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Team{}, ErrTeamNameRequired
	}
	if leaderID == "" {
		return Team{}, ErrTeamLeaderRequired
	}

	invitedIDs := make([]string, 0, len(invited))
	for _, studentID := range invited {
		studentID = strings.TrimSpace(studentID)
		if studentID == "" || studentID == leaderID || slices.Contains(invitedIDs, studentID) {
			continue
		}
		invitedIDs = append(invitedIDs, studentID)
	}

	status := TeamPending
	if competition.ReachesMinTeamSize(1) {
		status = TeamActive
	}

	return Team{
		ID:                id,
		Name:              name,
		CompetitionID:     competition.ID,
		LeaderID:          leaderID,
		InvitedMemberIDs:  invitedIDs,
		AcceptedMemberIDs: []string{leaderID},
		Status:            status,
		CreatedAt:         now,
	}, nil
}

func (t Team) IsLeader(studentID string) bool {
	return t.LeaderID == studentID
}

// IsMember reports whether studentID is the leader or an accepted member.
func (t Team) IsMember(studentID string) bool {
	return t.IsLeader(studentID) || slices.Contains(t.AcceptedMemberIDs, studentID)
}

func (t Team) IsInvited(studentID string) bool {
	return slices.Contains(t.InvitedMemberIDs, studentID)
}

func (t Team) IsActive() bool {
	return t.Status == TeamActive
}

func (t Team) AcceptedCount() int {
	return len(t.AcceptedMemberIDs)
}

// MemberChange describes how a team is mutated when a student is admitted.
type MemberChange struct {
	// Skip leaves the team as it is.
	Skip bool
	// Activate moves the team to ACTIVE along with the new member.
	Activate bool
	// Registration is created for the team if it has none and ends up ACTIVE.
	Registration *Registration
}
