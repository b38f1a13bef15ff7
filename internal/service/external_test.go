package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository"
)

// fakeExternals applies reviews as one conditional update, like the table.
type fakeExternals struct {
	mu    sync.Mutex
	items map[string]domain.ExternalParticipation
}

func (f *fakeExternals) Create(_ context.Context, p domain.ExternalParticipation) (domain.ExternalParticipation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items[p.ID] = p
	return p, nil
}

func (f *fakeExternals) UpdateDetails(_ context.Context, p domain.ExternalParticipation) (domain.ExternalParticipation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.items[p.ID]
	if !ok {
		return domain.ExternalParticipation{}, fmt.Errorf("dao -> %w", repository.ErrExternalParticipationNotFound)
	}
	stored.ExternalDetails = p.ExternalDetails
	stored.Status = p.Status
	stored.SubmittedAt = p.SubmittedAt
	stored.UpdatedAt = p.UpdatedAt
	f.items[p.ID] = stored
	return stored, nil
}

func (f *fakeExternals) AppendProof(_ context.Context, id, reference string, at time.Time) (domain.ExternalParticipation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.items[id]
	if !ok {
		return domain.ExternalParticipation{}, repository.ErrExternalParticipationNotFound
	}
	stored.ProofFiles = append(slices.Clone(stored.ProofFiles), reference)
	stored.UpdatedAt = at
	f.items[id] = stored
	return stored, nil
}

func (f *fakeExternals) Review(_ context.Context, ids []string, decision domain.ExternalDecision, at time.Time) ([]domain.ExternalParticipation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var reviewed []domain.ExternalParticipation
	for _, id := range ids {
		stored, ok := f.items[id]
		if !ok || !slices.Contains(decision.From(), stored.Status) {
			continue
		}
		stored.Status = decision.Status
		if decision.Note != "" {
			stored.AdminNote = decision.Note
		}
		stored.UpdatedAt = at
		f.items[id] = stored
		reviewed = append(reviewed, stored)
	}
	return reviewed, nil
}

func (f *fakeExternals) FindByID(_ context.Context, id string) (domain.ExternalParticipation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.items[id]
	if !ok {
		return domain.ExternalParticipation{}, fmt.Errorf("dao -> %w", repository.ErrExternalParticipationNotFound)
	}
	return stored, nil
}

func (f *fakeExternals) filter(match func(domain.ExternalParticipation) bool) []domain.ExternalParticipation {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.ExternalParticipation
	for _, p := range f.items {
		if match(p) {
			result = append(result, p)
		}
	}
	slices.SortFunc(result, func(a, b domain.ExternalParticipation) int { return b.SubmittedAt.Compare(a.SubmittedAt) })
	return result
}

func (f *fakeExternals) FindByOwner(_ context.Context, ownerID string) ([]domain.ExternalParticipation, error) {
	return f.filter(func(p domain.ExternalParticipation) bool { return p.OwnerID == ownerID }), nil
}

func (f *fakeExternals) FindByStatus(_ context.Context, status domain.ExternalStatus) ([]domain.ExternalParticipation, error) {
	return f.filter(func(p domain.ExternalParticipation) bool { return status == "" || p.Status == status }), nil
}

func newExternalService(now time.Time) (*ExternalParticipationService, *recordingNotifier) {
	notifier := &recordingNotifier{}
	svc := NewExternalParticipationService(&fakeExternals{items: map[string]domain.ExternalParticipation{}}, notifier, []string{"admin-1", "admin-2"})
	svc.now = fixedClock(now)
	svc.newID = sequence("ext")

	return svc, notifier
}

func hackathon() domain.ExternalDetails {
	return domain.ExternalDetails{
		Title:             "City Hackathon",
		Organizer:         "City Council",
		ParticipationType: domain.ParticipationTeam,
		TeamSizeMin:       ptr(2),
		TeamSizeMax:       ptr(4),
		StartDate:         ptr(testNow.AddDate(0, -1, 0)),
		EndDate:           ptr(testNow.AddDate(0, -1, 2)),
		Result:            "Finalist",
	}
}

func TestExternalParticipationService_CreateAndResubmit(t *testing.T) {
	svc, notifier := newExternalService(testNow)
	ctx := context.Background()

	created, err := svc.Create(ctx, "s1", hackathon(), []string{"blob://certificate"})
	require.NoError(t, err)
	assert.Equal(t, domain.ExternalPending, created.Status)
	assert.Equal(t, domain.ExternalSourceStudent, created.Source)
	assert.Equal(t, testNow, created.SubmittedAt)
	assert.Equal(t, []string{"blob://certificate"}, created.ProofFiles)

	submitted := notifier.ofType(domain.NotificationExternalSubmitted)
	require.Len(t, submitted, 2)
	assert.Equal(t, "admin-1", submitted[0].RecipientID)
	assert.Equal(t, "External Participation Submitted", submitted[0].Title)

	_, err = svc.Approve(ctx, created.ID, "verified")
	require.NoError(t, err)

	later := testNow.Add(time.Hour)
	svc.now = fixedClock(later)
	details := hackathon()
	details.Result = "Winner"

	updated, err := svc.Update(ctx, created.ID, "s1", details)
	require.NoError(t, err)
	assert.Equal(t, domain.ExternalPending, updated.Status)
	assert.Equal(t, "Winner", updated.Result)
	assert.Equal(t, later, updated.SubmittedAt)
	assert.Equal(t, "verified", updated.AdminNote)
	assert.Len(t, notifier.ofType(domain.NotificationExternalSubmitted), 4)

	_, err = svc.Update(ctx, created.ID, "s2", details)
	assert.ErrorIs(t, err, ErrExternalAccessDenied)

	_, err = svc.Update(ctx, "missing", "s1", details)
	assert.ErrorIs(t, err, ErrExternalParticipationNotFound)
}

func TestExternalParticipationService_Create_Validation(t *testing.T) {
	svc, _ := newExternalService(testNow)

	tests := []struct {
		name    string
		mutate  func(*domain.ExternalDetails)
		wantErr error
	}{
		{name: "blank title", mutate: func(d *domain.ExternalDetails) { d.Title = "  " }, wantErr: ErrExternalTitleRequired},
		{name: "team size inverted", mutate: func(d *domain.ExternalDetails) { d.TeamSizeMin = ptr(5) }, wantErr: ErrExternalTeamSize},
		{name: "ends before start", mutate: func(d *domain.ExternalDetails) { d.EndDate = ptr(d.StartDate.AddDate(0, 0, -1)) }, wantErr: ErrExternalDates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := hackathon()
			tt.mutate(&details)

			_, err := svc.Create(context.Background(), "s1", details, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExternalParticipationService_AddProof(t *testing.T) {
	svc, _ := newExternalService(testNow)
	ctx := context.Background()

	created, err := svc.Create(ctx, "s1", hackathon(), nil)
	require.NoError(t, err)
	assert.Empty(t, created.ProofFiles)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.AddProof(ctx, created.ID, "s1", fmt.Sprintf("blob://proof-%d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stored, err := svc.Get(ctx, created.ID, domain.Actor{ID: "s1", Roles: []domain.Role{domain.RoleStudent}})
	require.NoError(t, err)
	assert.Len(t, stored.ProofFiles, 5)

	_, err = svc.AddProof(ctx, created.ID, "s1", " ")
	assert.ErrorIs(t, err, ErrProofFileRequired)

	_, err = svc.AddProof(ctx, created.ID, "s2", "blob://x")
	assert.ErrorIs(t, err, ErrExternalAccessDenied)
}

func TestExternalParticipationService_Get(t *testing.T) {
	svc, _ := newExternalService(testNow)
	ctx := context.Background()

	created, err := svc.Create(ctx, "s1", hackathon(), nil)
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID, domain.Actor{ID: "admin-1", Roles: []domain.Role{domain.RoleAdmin}})
	assert.NoError(t, err)

	_, err = svc.Get(ctx, created.ID, domain.Actor{ID: "s2", Roles: []domain.Role{domain.RoleStudent}})
	assert.ErrorIs(t, err, ErrExternalAccessDenied)

	_, err = svc.Get(ctx, "missing", domain.Actor{ID: "s1"})
	assert.ErrorIs(t, err, ErrExternalParticipationNotFound)
}

func TestExternalParticipationService_ReviewTransitions(t *testing.T) {
	svc, notifier := newExternalService(testNow)
	ctx := context.Background()

	created, err := svc.Create(ctx, "s1", hackathon(), nil)
	require.NoError(t, err)

	_, err = svc.Rollback(ctx, created.ID)
	assert.ErrorIs(t, err, ErrExternalNotReviewable)

	rejected, err := svc.Reject(ctx, created.ID, "  no certificate ")
	require.NoError(t, err)
	assert.Equal(t, domain.ExternalRejected, rejected.Status)
	assert.Equal(t, "no certificate", rejected.AdminNote)

	_, err = svc.Approve(ctx, created.ID, "")
	assert.ErrorIs(t, err, ErrExternalNotReviewable)

	rolledBack, err := svc.Rollback(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExternalPending, rolledBack.Status)
	assert.Equal(t, "no certificate", rolledBack.AdminNote)

	approved, err := svc.Approve(ctx, created.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ExternalApproved, approved.Status)

	_, err = svc.Approve(ctx, "missing", "")
	assert.ErrorIs(t, err, ErrExternalParticipationNotFound)

	rejections := notifier.ofType(domain.NotificationRejection)
	require.Len(t, rejections, 1)
	assert.Equal(t, "s1", rejections[0].RecipientID)
	assert.Contains(t, rejections[0].Message, "Reason: no certificate")
	assert.Len(t, notifier.ofType(domain.NotificationRollback), 1)
	assert.Len(t, notifier.ofType(domain.NotificationGeneral), 1)
}

func TestExternalParticipationService_ConcurrentDecisions(t *testing.T) {
	svc, _ := newExternalService(testNow)
	ctx := context.Background()

	created, err := svc.Create(ctx, "s1", hackathon(), nil)
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			var err error
			if i%2 == 0 {
				_, err = svc.Approve(ctx, created.ID, "")
			} else {
				_, err = svc.Reject(ctx, created.ID, "")
			}
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrExternalNotReviewable)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestExternalParticipationService_Bulk(t *testing.T) {
	svc, notifier := newExternalService(testNow)
	ctx := context.Background()

	var ids []string
	for _, owner := range []string{"s1", "s2", "s3"} {
		created, err := svc.Create(ctx, owner, hackathon(), nil)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	_, err := svc.Reject(ctx, ids[2], "duplicate")
	require.NoError(t, err)

	_, err = svc.BulkApprove(ctx, []string{" ", ""}, "")
	assert.ErrorIs(t, err, ErrExternalIDsRequired)

	approved, err := svc.BulkApprove(ctx, []string{ids[0], ids[1], ids[1], ids[2], "missing"}, "batch")
	require.NoError(t, err)
	require.Len(t, approved, 2)
	for _, p := range approved {
		assert.Equal(t, domain.ExternalApproved, p.Status)
		assert.Equal(t, "batch", p.AdminNote)
	}
	assert.Len(t, notifier.ofType(domain.NotificationGeneral), 2)

	rejected, err := svc.BulkReject(ctx, ids, "late")
	require.NoError(t, err)
	assert.Empty(t, rejected)
}

func TestExternalParticipationService_ListForReview(t *testing.T) {
	svc, _ := newExternalService(testNow)
	ctx := context.Background()

	first, err := svc.Create(ctx, "s1", hackathon(), nil)
	require.NoError(t, err)
	svc.now = fixedClock(testNow.Add(time.Hour))
	second, err := svc.Create(ctx, "s1", hackathon(), nil)
	require.NoError(t, err)
	_, err = svc.Approve(ctx, first.ID, "")
	require.NoError(t, err)

	tests := []struct {
		status  string
		wantIDs []string
		wantErr error
	}{
		{status: "", wantIDs: []string{second.ID}},
		{status: "approved", wantIDs: []string{first.ID}},
		{status: "all", wantIDs: []string{second.ID, first.ID}},
		{status: "REJECTED"},
		{status: "archived", wantErr: ErrInvalidExternalStatus},
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			got, err := svc.ListForReview(ctx, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			var gotIDs []string
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}

	mine, err := svc.ListMine(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
