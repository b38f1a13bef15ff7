package v1

import (
	"context"
	"github.com/campusarena/competition-api/internal/api/handler/v1/response"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/notification"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"net/http"
	"slices"
	"time"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type NotificationService interface {
	List(ctx context.Context, recipientID string) ([]domain.Notification, error)
	ListUnread(ctx context.Context, recipientID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) (domain.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}

type NotificationHub interface {
	Subscribe(userID string) *notification.Subscription
	Unsubscribe(userID string, sub *notification.Subscription)
}

// streamMessage is a frame of the notification stream. The first frame is a
// "bootstrap" carrying the unread notifications.
type streamMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type NotificationHandler struct {
	svc      NotificationService
	hub      NotificationHub
	upgrader websocket.Upgrader
}

func NewNotificationHandler(svc NotificationService, hub NotificationHub, allowedOrigins []string) *NotificationHandler {
	return &NotificationHandler{
		svc: svc,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowedOrigins) == 0 || origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// HandleGetNotifications godoc
// @Summary      List my notifications
// @Description  Newest first
// @Tags         notifications
// @Produce      json
// @Success      200  {array}   domain.Notification
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /notifications [get]
// @Security BearerAuth
func (h *NotificationHandler) HandleGetNotifications(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent, domain.RoleTeacher, domain.RoleAdmin)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	notifications, err := h.svc.List(ctx.Request.Context(), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetNotifications -> h.svc.List"))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

// HandleGetUnreadNotifications godoc
// @Summary      List my unread notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {array}   domain.Notification
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /notifications/unread [get]
// @Security BearerAuth
func (h *NotificationHandler) HandleGetUnreadNotifications(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent, domain.RoleTeacher, domain.RoleAdmin)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	notifications, err := h.svc.ListUnread(ctx.Request.Context(), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleGetUnreadNotifications -> h.svc.ListUnread"))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

// HandleMarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        notificationID  path      string  true  "Notification ID"
// @Success      200  {object}  domain.Notification
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /notifications/{notificationID}/read [put]
// @Security BearerAuth
func (h *NotificationHandler) HandleMarkRead(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent, domain.RoleTeacher, domain.RoleAdmin)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	n, err := h.svc.MarkRead(ctx.Request.Context(), ctx.Param("notificationID"), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleMarkRead -> h.svc.MarkRead"))
		return
	}

	ctx.JSON(http.StatusOK, n)
}

// HandleMarkAllRead godoc
// @Summary      Mark all my notifications as read
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.MarkAllReadResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /notifications/read-all [put]
// @Security BearerAuth
func (h *NotificationHandler) HandleMarkAllRead(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent, domain.RoleTeacher, domain.RoleAdmin)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	updated, err := h.svc.MarkAllRead(ctx.Request.Context(), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleMarkAllRead -> h.svc.MarkAllRead"))
		return
	}

	ctx.JSON(http.StatusOK, response.MarkAllReadResponse{Updated: updated})
}

// HandleStream godoc
// @Summary      Stream my notifications
// @Description  Upgrades to a websocket. The first frame carries the unread notifications, then every new notification is pushed as it is published. Browsers pass the token in the token query parameter.
// @Tags         notifications
// @Param        token  query     string  false  "JWT when the Authorization header cannot be set"
// @Success      101  {string}  string  "Switching Protocols to WebSocket"
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /notifications/stream [get]
// @Security BearerAuth
func (h *NotificationHandler) HandleStream(ctx *gin.Context) {
	actor, respErr := getActorFromContext(ctx, domain.RoleStudent, domain.RoleTeacher, domain.RoleAdmin)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	unread, err := h.svc.ListUnread(ctx.Request.Context(), actor.ID)
	if err != nil {
		response.RenderErr(ctx, response.ErrFromService(err, "HandleStream -> h.svc.ListUnread"))
		return
	}

	// Subscribe before upgrading so nothing published meanwhile is lost.
	sub := h.hub.Subscribe(actor.ID)

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.hub.Unsubscribe(actor.ID, sub)
		zap.L().Warn("websocket upgrade failed", zap.String("user_id", actor.ID), zap.Error(err))
		return
	}

	go h.readPump(conn, actor.ID, sub)
	h.writePump(conn, sub, unread)
}

func (h *NotificationHandler) writePump(conn *websocket.Conn, sub *notification.Subscription, unread []domain.Notification) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	if err := writeFrame(conn, streamMessage{Type: "bootstrap", Data: unread}); err != nil {
		return
	}

	for {
		select {
		case n, ok := <-sub.C():
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := writeFrame(conn, streamMessage{Type: "notification", Data: n}); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client frames and unsubscribes once the peer is gone,
// which closes the subscription and ends writePump.
func (h *NotificationHandler) readPump(conn *websocket.Conn, userID string, sub *notification.Subscription) {
	defer h.hub.Unsubscribe(userID, sub)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Info("notification stream closed", zap.String("user_id", userID), zap.Error(err))
			}
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, msg streamMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
