package domain

import (
	"fmt"
	"strings"
	"time"
)

type NotificationType string

const (
	NotificationTeamInvitation      NotificationType = "TEAM_INVITATION"
	NotificationTeamConfirmation    NotificationType = "TEAM_CONFIRMATION"
	NotificationSubmissionSuccess   NotificationType = "SUBMISSION_SUCCESS"
	NotificationSubmissionEvaluated NotificationType = "SUBMISSION_EVALUATED"
	NotificationGeneral             NotificationType = "GENERAL"
	NotificationExternalSubmitted   NotificationType = "EXTERNAL_PARTICIPATION_SUBMITTED"
	NotificationRejection           NotificationType = "REJECTION"
	NotificationRollback            NotificationType = "ROLLBACK"
)

type Notification struct {
	ID              string           `json:"id"`
	RecipientID     string           `json:"recipientId"`
	Title           string           `json:"title"`
	Message         string           `json:"message"`
	Type            NotificationType `json:"type"`
	RelatedEntityID string           `json:"relatedEntityId"`
	Read            bool             `json:"read"`
	CreatedAt       time.Time        `json:"createdAt"`
}

func TeamInvitationNotification(recipientID string, team Team) Notification {
	return Notification{
		RecipientID:     recipientID,
		Title:           "Team Invitation",
		Message:         fmt.Sprintf("You have been invited to join team '%s'.", team.Name),
		Type:            NotificationTeamInvitation,
		RelatedEntityID: team.ID,
	}
}

func TeamJoinedNotification(recipientID string, team Team) Notification {
	return Notification{
		RecipientID:     recipientID,
		Title:           "Team Joined",
		Message:         fmt.Sprintf("You have successfully joined team '%s'.", team.Name),
		Type:            NotificationTeamConfirmation,
		RelatedEntityID: team.ID,
	}
}

func TeamActivatedNotification(team Team) Notification {
	return Notification{
		RecipientID:     team.LeaderID,
		Title:           "Team Active",
		Message:         fmt.Sprintf("Team '%s' reached its minimum size and is now registered.", team.Name),
		Type:            NotificationTeamConfirmation,
		RelatedEntityID: team.ID,
	}
}

func SubmissionSuccessNotification(submission Submission, competition Competition) Notification {
	return Notification{
		RecipientID:     submission.SubmittedBy,
		Title:           "Submission Successful",
		Message:         fmt.Sprintf("Your submission for '%s' was successful.", competition.Title),
		Type:            NotificationSubmissionSuccess,
		RelatedEntityID: submission.ID,
	}
}

func SubmissionEvaluatedNotification(submission Submission, competition Competition) Notification {
	return Notification{
		RecipientID:     submission.SubmittedBy,
		Title:           "Submission Evaluated",
		Message:         fmt.Sprintf("Your submission for '%s' has been evaluated.", competition.Title),
		Type:            NotificationSubmissionEvaluated,
		RelatedEntityID: submission.ID,
	}
}

// ExternalSubmittedNotification tells a reviewer that p is waiting for a
// decision. action is "Submitted" or "Resubmitted".
func ExternalSubmittedNotification(reviewerID, action string, p ExternalParticipation) Notification {
	title := p.Title
	if title == "" {
		title = "Untitled"
	}

	return Notification{
		RecipientID:     reviewerID,
		Title:           "External Participation " + action,
		Message:         fmt.Sprintf("A student %s an external participation: %s", strings.ToLower(action), title),
		Type:            NotificationExternalSubmitted,
		RelatedEntityID: p.ID,
	}
}

// ExternalReviewedNotification tells the owner about the decision taken on p.
func ExternalReviewedNotification(p ExternalParticipation) Notification {
	n := Notification{
		RecipientID:     p.OwnerID,
		RelatedEntityID: p.ID,
	}

	switch p.Status {
	case ExternalApproved:
		n.Title = "Participation Approved"
		n.Message = fmt.Sprintf("Your participation in '%s' has been approved by the admin.", p.Title)
		n.Type = NotificationGeneral
	case ExternalRejected:
		reason := p.AdminNote
		if reason == "" {
			reason = "No reason provided."
		}
		n.Title = "Participation Rejected"
		n.Message = fmt.Sprintf("Your participation in '%s' was rejected. Reason: %s", p.Title, reason)
		n.Type = NotificationRejection
	default:
		n.Title = "Participation Rollback"
		n.Message = fmt.Sprintf("Your participation in '%s' has been rolled back to pending by the admin.", p.Title)
		n.Type = NotificationRollback
	}

	return n
}
