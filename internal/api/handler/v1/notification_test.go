package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusarena/competition-api/internal/api/middleware"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/notification"
	"github.com/campusarena/competition-api/internal/service"
)

type stubNotifications struct {
	unread []domain.Notification
}

func (s stubNotifications) List(context.Context, string) ([]domain.Notification, error) {
	return s.unread, nil
}

func (s stubNotifications) ListUnread(context.Context, string) ([]domain.Notification, error) {
	return s.unread, nil
}

func (s stubNotifications) MarkRead(_ context.Context, id, recipientID string) (domain.Notification, error) {
	for _, n := range s.unread {
		if n.ID != id {
			continue
		}
		if n.RecipientID != recipientID {
			return domain.Notification{}, service.ErrNotificationAccessDenied
		}
		n.Read = true
		return n, nil
	}
	return domain.Notification{}, service.ErrNotificationNotFound
}

func (s stubNotifications) MarkAllRead(context.Context, string) (int64, error) {
	return int64(len(s.unread)), nil
}

func TestNotificationHandler_REST(t *testing.T) {
	svc := stubNotifications{unread: []domain.Notification{
		{ID: "n1", RecipientID: "s1", Type: domain.NotificationTeamInvitation},
		{ID: "n2", RecipientID: "s2", Type: domain.NotificationSubmissionSuccess},
	}}
	h := NewNotificationHandler(svc, notification.NewHub(0), nil)

	const readPath = "/notifications/:notificationID/read"

	rec := serve(student, http.MethodPut, readPath, "/notifications/n1/read", "", h.HandleMarkRead)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[domain.Notification](t, rec).Read)

	rec = serve(student, http.MethodPut, readPath, "/notifications/n2/read", "", h.HandleMarkRead)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(student, http.MethodPut, readPath, "/notifications/n9/read", "", h.HandleMarkRead)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(teacher, http.MethodPut, "/notifications/read-all", "/notifications/read-all", "", h.HandleMarkAllRead)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated":2}`, rec.Body.String())

	rec = serve(nil, http.MethodGet, "/notifications", "/notifications", "", h.HandleGetNotifications)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNotificationHandler_HandleStream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := notification.NewHub(4)
	svc := stubNotifications{unread: []domain.Notification{{ID: "n1", RecipientID: "s1"}}}
	h := NewNotificationHandler(svc, hub, nil)

	router := gin.New()
	router.GET("/notifications/stream", func(ctx *gin.Context) {
		middleware.SetActor(ctx, *student)
	}, h.HandleStream)

	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/notifications/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var bootstrap struct {
		Type string                `json:"type"`
		Data []domain.Notification `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&bootstrap))
	assert.Equal(t, "bootstrap", bootstrap.Type)
	require.Len(t, bootstrap.Data, 1)
	assert.Equal(t, "n1", bootstrap.Data[0].ID)

	require.Eventually(t, func() bool { return hub.Subscribers("s1") == 1 }, time.Second, 10*time.Millisecond)
	hub.Publish("s1", domain.Notification{ID: "n2", RecipientID: "s1", Title: "Submission Successful"})

	var pushed struct {
		Type string              `json:"type"`
		Data domain.Notification `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&pushed))
	assert.Equal(t, "notification", pushed.Type)
	assert.Equal(t, "n2", pushed.Data.ID)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Subscribers("s1") == 0 }, 2*time.Second, 10*time.Millisecond)
}
