package v1

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/service"
)

var admin = &domain.Actor{ID: "a1", Roles: []domain.Role{domain.RoleAdmin}}

type stubExternals struct {
	created     domain.ExternalParticipation
	reviewNote  string
	reviewIDs   []string
	reviewQuery string
}

func (s *stubExternals) participation(id string, status domain.ExternalStatus) domain.ExternalParticipation {
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return domain.ExternalParticipation{
		ID:              id,
		OwnerID:         "s1",
		ExternalDetails: domain.ExternalDetails{Title: "City Hackathon", StartDate: &start},
		Source:          domain.ExternalSourceStudent,
		Status:          status,
	}
}

func (s *stubExternals) Create(_ context.Context, ownerID string, details domain.ExternalDetails, proofFiles []string) (domain.ExternalParticipation, error) {
	s.created = domain.NewExternalParticipation("e1", ownerID, details, proofFiles, time.Now())
	return s.created, nil
}

func (s *stubExternals) Update(_ context.Context, id, ownerID string, _ domain.ExternalDetails) (domain.ExternalParticipation, error) {
	if ownerID != "s1" {
		return domain.ExternalParticipation{}, service.ErrExternalAccessDenied
	}
	return s.participation(id, domain.ExternalPending), nil
}

func (s *stubExternals) AddProof(_ context.Context, id, _, reference string) (domain.ExternalParticipation, error) {
	p := s.participation(id, domain.ExternalPending)
	p.ProofFiles = []string{reference}
	return p, nil
}

func (s *stubExternals) ListMine(context.Context, string) ([]domain.ExternalParticipation, error) {
	return nil, nil
}

func (s *stubExternals) Get(_ context.Context, id string, _ domain.Actor) (domain.ExternalParticipation, error) {
	if id == "missing" {
		return domain.ExternalParticipation{}, service.ErrExternalParticipationNotFound
	}
	return s.participation(id, domain.ExternalPending), nil
}

func (s *stubExternals) ListForReview(_ context.Context, status string) ([]domain.ExternalParticipation, error) {
	s.reviewQuery = status
	if status == "archived" {
		return nil, service.ErrInvalidExternalStatus
	}
	return []domain.ExternalParticipation{s.participation("e1", domain.ExternalPending)}, nil
}

func (s *stubExternals) Approve(_ context.Context, id, note string) (domain.ExternalParticipation, error) {
	s.reviewNote = note
	return s.participation(id, domain.ExternalApproved), nil
}

func (s *stubExternals) Reject(_ context.Context, id, reason string) (domain.ExternalParticipation, error) {
	s.reviewNote = reason
	if id == "decided" {
		return domain.ExternalParticipation{}, service.ErrExternalNotReviewable
	}
	return s.participation(id, domain.ExternalRejected), nil
}

func (s *stubExternals) Rollback(_ context.Context, id string) (domain.ExternalParticipation, error) {
	return s.participation(id, domain.ExternalPending), nil
}

func (s *stubExternals) BulkApprove(_ context.Context, ids []string, note string) ([]domain.ExternalParticipation, error) {
	s.reviewIDs, s.reviewNote = ids, note
	return []domain.ExternalParticipation{s.participation(ids[0], domain.ExternalApproved)}, nil
}

func (s *stubExternals) BulkReject(_ context.Context, ids []string, reason string) ([]domain.ExternalParticipation, error) {
	s.reviewIDs, s.reviewNote = ids, reason
	return nil, nil
}

func TestExternalParticipationHandler_StudentRoutes(t *testing.T) {
	stub := &stubExternals{}
	h := NewExternalParticipationHandler(stub)

	t.Run("create", func(t *testing.T) {
		body := `{"title":" City Hackathon ","participationType":"team","startDate":"2026-03-14","proofFiles":["blob://cert"]}`
		rec := serve(student, http.MethodPost, "/external-participations", "/external-participations", body, h.HandleCreate)
		require.Equal(t, http.StatusCreated, rec.Code)

		got := decode[map[string]any](t, rec)
		assert.Equal(t, "City Hackathon", got["title"])
		assert.Equal(t, "TEAM", got["participationType"])
		assert.Equal(t, "2026-03-14", got["startDate"])
		assert.Equal(t, "PENDING", got["status"])
		assert.Equal(t, []any{"blob://cert"}, got["proofFiles"])
		assert.Equal(t, "s1", stub.created.OwnerID)
	})

	t.Run("create requires a title", func(t *testing.T) {
		rec := serve(student, http.MethodPost, "/external-participations", "/external-participations", `{"title":" "}`, h.HandleCreate)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create is for students", func(t *testing.T) {
		rec := serve(teacher, http.MethodPost, "/external-participations", "/external-participations", `{"title":"x"}`, h.HandleCreate)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("update by another student", func(t *testing.T) {
		other := &domain.Actor{ID: "s2", Roles: []domain.Role{domain.RoleStudent}}
		rec := serve(other, http.MethodPut, "/external-participations/:participationID", "/external-participations/e1", `{"title":"x"}`, h.HandleUpdate)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("add proof", func(t *testing.T) {
		rec := serve(student, http.MethodPost, "/external-participations/:participationID/proofs", "/external-participations/e1/proofs", `{"file":"blob://photo"}`, h.HandleAddProof)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []any{"blob://photo"}, decode[map[string]any](t, rec)["proofFiles"])
	})

	t.Run("list mine is never null", func(t *testing.T) {
		rec := serve(student, http.MethodGet, "/external-participations", "/external-participations", "", h.HandleListMine)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("get unknown", func(t *testing.T) {
		rec := serve(admin, http.MethodGet, "/external-participations/:participationID", "/external-participations/missing", "", h.HandleGet)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestExternalParticipationHandler_Review(t *testing.T) {
	stub := &stubExternals{}
	h := NewExternalParticipationHandler(stub)

	t.Run("review list is for admins", func(t *testing.T) {
		rec := serve(student, http.MethodGet, "/external-participations/review", "/external-participations/review", "", h.HandleListForReview)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("review list forwards the status filter", func(t *testing.T) {
		rec := serve(admin, http.MethodGet, "/external-participations/review", "/external-participations/review?status=all", "", h.HandleListForReview)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "all", stub.reviewQuery)
		assert.Len(t, decode[[]map[string]any](t, rec), 1)

		rec = serve(admin, http.MethodGet, "/external-participations/review", "/external-participations/review?status=archived", "", h.HandleListForReview)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("approve without a body", func(t *testing.T) {
		rec := serve(admin, http.MethodPatch, "/external-participations/:participationID/approve", "/external-participations/e1/approve", "", h.HandleApprove)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "APPROVED", decode[map[string]any](t, rec)["status"])
		assert.Empty(t, stub.reviewNote)
	})

	t.Run("reject with a reason", func(t *testing.T) {
		rec := serve(admin, http.MethodPatch, "/external-participations/:participationID/reject", "/external-participations/e1/reject", `{"reason":"no certificate"}`, h.HandleReject)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no certificate", stub.reviewNote)
	})

	t.Run("reject a decided participation", func(t *testing.T) {
		rec := serve(admin, http.MethodPatch, "/external-participations/:participationID/reject", "/external-participations/decided/reject", "", h.HandleReject)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "conflict", decode[map[string]any](t, rec)["kind"])
	})

	t.Run("rollback", func(t *testing.T) {
		rec := serve(admin, http.MethodPatch, "/external-participations/:participationID/rollback", "/external-participations/e1/rollback", "", h.HandleRollback)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "PENDING", decode[map[string]any](t, rec)["status"])
	})

	t.Run("bulk approve", func(t *testing.T) {
		rec := serve(admin, http.MethodPatch, "/external-participations/bulk/approve", "/external-participations/bulk/approve", `{"ids":["e1","e2"],"notes":"ok"}`, h.HandleBulkApprove)
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[map[string]any](t, rec)
		assert.Equal(t, float64(1), got["reviewed"])
		assert.Equal(t, []string{"e1", "e2"}, stub.reviewIDs)
		assert.Equal(t, "ok", stub.reviewNote)
	})

	t.Run("bulk reject needs ids", func(t *testing.T) {
		rec := serve(admin, http.MethodPatch, "/external-participations/bulk/reject", "/external-participations/bulk/reject", `{"reason":"late"}`, h.HandleBulkReject)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bulk reject is for admins", func(t *testing.T) {
		rec := serve(teacher, http.MethodPatch, "/external-participations/bulk/reject", "/external-participations/bulk/reject", `{"ids":["e1"]}`, h.HandleBulkReject)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
