package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"sync"
	"time"
)

const notifyTimeout = 5 * time.Second

// Notifier accepts notifications without blocking the caller. Delivery is
// best effort.
type Notifier interface {
	Notify(notification domain.Notification)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification domain.Notification) (domain.Notification, error)
	FindByID(ctx context.Context, id string) (domain.Notification, error)
	FindByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}

type Publisher interface {
	Publish(userID string, notification domain.Notification)
}

type NotificationService struct {
	repo      NotificationRepository
	publisher Publisher

	now   func() time.Time
	newID func() string

	wg sync.WaitGroup
}

func NewNotificationService(repo NotificationRepository, publisher Publisher) *NotificationService {
	return &NotificationService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Notify stores the notification and publishes it to the recipient's live
// subscribers in the background. Failures are logged and dropped.
func (s *NotificationService) Notify(notification domain.Notification) {
	if notification.RecipientID == "" {
		return
	}
	notification.ID = s.newID()
	notification.CreatedAt = s.now()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		created, err := s.repo.Create(ctx, notification)
		if err != nil {
			zap.L().Warn("failed to store notification",
				zap.String("recipient_id", notification.RecipientID),
				zap.String("type", string(notification.Type)),
				zap.Error(err))
			return
		}

		if s.publisher != nil {
			s.publisher.Publish(created.RecipientID, created)
		}
	}()
}

// Wait blocks until every pending notification has been handled.
func (s *NotificationService) Wait() {
	s.wg.Wait()
}

func (s *NotificationService) List(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByRecipient(ctx, recipientID, false)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByRecipient -> %w", err)
	}

	return notifications, nil
}

func (s *NotificationService) ListUnread(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByRecipient(ctx, recipientID, true)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByRecipient -> %w", err)
	}

	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID string) (domain.Notification, error) {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domain.Notification{}, ErrNotificationNotFound
		}

		return domain.Notification{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if notification.RecipientID != recipientID {
		return domain.Notification{}, ErrNotificationAccessDenied
	}
	if notification.Read {
		return notification, nil
	}

	if err = s.repo.MarkRead(ctx, id); err != nil {
		return domain.Notification{}, fmt.Errorf("s.repo.MarkRead -> %w", err)
	}
	notification.Read = true

	return notification, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	updated, err := s.repo.MarkAllRead(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.MarkAllRead -> %w", err)
	}

	return updated, nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(domain.Notification) {}
