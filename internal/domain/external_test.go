package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewExternalParticipation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	p := NewExternalParticipation("e1", "s1", ExternalDetails{Title: "Regional ICPC"}, nil, now)

	assert.Equal(t, ExternalPending, p.Status)
	assert.Equal(t, ExternalSourceStudent, p.Source)
	assert.NotNil(t, p.ProofFiles)
	assert.Empty(t, p.ProofFiles)
	assert.Equal(t, now, p.SubmittedAt)
	assert.True(t, p.OwnedBy("s1"))
	assert.False(t, p.OwnedBy("s2"))

	p.Status = ExternalRejected
	p.AdminNote = "missing certificate"
	p.Resubmit(ExternalDetails{Title: "Regional ICPC 2026"}, now.Add(time.Hour))

	assert.Equal(t, ExternalPending, p.Status)
	assert.Equal(t, "Regional ICPC 2026", p.Title)
	assert.Equal(t, now.Add(time.Hour), p.SubmittedAt)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, "missing certificate", p.AdminNote)
}

func TestExternalDecision_From(t *testing.T) {
	assert.Equal(t, []ExternalStatus{ExternalPending}, Approval(" ok ").From())
	assert.Equal(t, "ok", Approval(" ok ").Note)
	assert.Equal(t, []ExternalStatus{ExternalPending}, Rejection("late").From())
	assert.Equal(t, []ExternalStatus{ExternalApproved, ExternalRejected}, Rollback().From())
	assert.Empty(t, Rollback().Note)
}

func TestParseExternalStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   ExternalStatus
		wantOK bool
	}{
		{in: "pending", want: ExternalPending, wantOK: true},
		{in: " Approved ", want: ExternalApproved, wantOK: true},
		{in: "REJECTED", want: ExternalRejected, wantOK: true},
		{in: ""},
		{in: "ALL"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseExternalStatus(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExternalReviewedNotification(t *testing.T) {
	p := ExternalParticipation{ID: "e1", OwnerID: "s1", ExternalDetails: ExternalDetails{Title: "Hack"}}

	p.Status = ExternalRejected
	n := ExternalReviewedNotification(p)
	assert.Equal(t, NotificationRejection, n.Type)
	assert.Equal(t, "s1", n.RecipientID)
	assert.Contains(t, n.Message, "No reason provided.")

	p.Status = ExternalApproved
	assert.Equal(t, NotificationGeneral, ExternalReviewedNotification(p).Type)

	p.Status = ExternalPending
	assert.Equal(t, NotificationRollback, ExternalReviewedNotification(p).Type)
}
