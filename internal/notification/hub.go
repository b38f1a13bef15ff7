// Package notification fans notifications out to the live connections of
// their recipients.
package notification

import (
	"sync"

	"go.uber.org/zap"

	"github.com/campusarena/competition-api/internal/domain"
)

const DefaultBufferSize = 16

// Subscription is one live connection of a user.
type Subscription struct {
	userID string
	ch     chan domain.Notification
}

// C delivers the notifications published to the subscriber. It is closed on
// Unsubscribe.
func (s *Subscription) C() <-chan domain.Notification {
	return s.ch
}

type Hub struct {
	bufferSize int

	mu          sync.RWMutex
	subscribers map[string]map[*Subscription]struct{}
}

func NewHub(bufferSize int) *Hub {
	if bufferSize < 1 {
		bufferSize = DefaultBufferSize
	}

	return &Hub{
		bufferSize:  bufferSize,
		subscribers: make(map[string]map[*Subscription]struct{}),
	}
}

func (h *Hub) Subscribe(userID string) *Subscription {
	sub := &Subscription{
		userID: userID,
		ch:     make(chan domain.Notification, h.bufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[*Subscription]struct{})
	}
	h.subscribers[userID][sub] = struct{}{}

	return sub
}

// Unsubscribe detaches sub from userID. Unsubscribing twice is a no-op.
func (h *Hub) Unsubscribe(userID string, sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[userID]
	if !ok {
		return
	}
	if _, ok = subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	close(sub.ch)
	if len(subs) == 0 {
		delete(h.subscribers, userID)
	}
}

// Publish hands n to every subscription of userID without blocking. A
// subscriber whose buffer is full misses the notification.
func (h *Hub) Publish(userID string, n domain.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[userID] {
		select {
		case sub.ch <- n:
		default:
			zap.L().Warn("notification dropped for slow subscriber",
				zap.String("user_id", userID),
				zap.String("notification_id", n.ID))
		}
	}
}

// Subscribers returns the number of live subscriptions of userID.
func (h *Hub) Subscribers(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[userID])
}
