package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusarena/competition-api/internal/domain"
)

type recordingPublisher struct {
	mu        sync.Mutex
	published map[string][]domain.Notification
}

func (p *recordingPublisher) Publish(userID string, n domain.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.published == nil {
		p.published = map[string][]domain.Notification{}
	}
	p.published[userID] = append(p.published[userID], n)
}

func newNotificationService(st *store) (*NotificationService, *fakeNotifications, *recordingPublisher) {
	repo := &fakeNotifications{store: st}
	publisher := &recordingPublisher{}

	s := NewNotificationService(repo, publisher)
	s.now = fixedClock(testNow)
	s.newID = sequence("n")

	return s, repo, publisher
}

func TestNotificationService_NotifyStoresAndPublishes(t *testing.T) {
	s, _, publisher := newNotificationService(newStore())
	ctx := context.Background()

	team := domain.Team{ID: "t1", Name: "Alpha", LeaderID: "a"}
	s.Notify(domain.TeamInvitationNotification("b", team))
	s.Notify(domain.TeamActivatedNotification(team))
	s.Notify(domain.Notification{Title: "dropped"})
	s.Wait()

	stored, err := s.List(ctx, "b")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, domain.NotificationTeamInvitation, stored[0].Type)
	assert.Equal(t, "t1", stored[0].RelatedEntityID)
	assert.Equal(t, testNow, stored[0].CreatedAt)
	assert.NotEmpty(t, stored[0].ID)

	assert.Len(t, publisher.published["b"], 1)
	assert.Len(t, publisher.published["a"], 1)
}

func TestNotificationService_NotifyFailureIsSwallowed(t *testing.T) {
	s, repo, publisher := newNotificationService(newStore())
	repo.failures.Store(true)

	s.Notify(domain.TeamInvitationNotification("b", domain.Team{ID: "t1", Name: "Alpha"}))
	s.Wait()

	assert.Empty(t, publisher.published)
}

func TestNotificationService_MarkRead(t *testing.T) {
	s, _, _ := newNotificationService(newStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s.Notify(domain.TeamInvitationNotification("b", domain.Team{ID: "t1", Name: "Alpha"}))
	}
	s.Wait()

	unread, err := s.ListUnread(ctx, "b")
	require.NoError(t, err)
	require.Len(t, unread, 3)

	_, err = s.MarkRead(ctx, unread[0].ID, "intruder")
	assert.ErrorIs(t, err, ErrNotificationAccessDenied)

	_, err = s.MarkRead(ctx, "missing", "b")
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	read, err := s.MarkRead(ctx, unread[0].ID, "b")
	require.NoError(t, err)
	assert.True(t, read.Read)

	updated, err := s.MarkAllRead(ctx, "b")
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	unread, err = s.ListUnread(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, unread)
}
