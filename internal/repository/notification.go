package repository

import (
	"context"
	"fmt"
	"github.com/campusarena/competition-api/internal/domain"
	"github.com/campusarena/competition-api/internal/repository/dao"
)

var ErrNotificationNotFound = dao.ErrNotificationNotFound

type NotificationDAO interface {
	Insert(ctx context.Context, notification dao.Notification) (dao.Notification, error)
	FindByID(ctx context.Context, id string) (dao.Notification, error)
	FindByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]dao.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}

type NotificationRepository struct {
	dao NotificationDAO
}

func NewNotificationRepository(dao NotificationDAO) *NotificationRepository {
	return &NotificationRepository{
		dao: dao,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	created, err := r.dao.Insert(ctx, dao.Notification{
		ID:              n.ID,
		RecipientID:     n.RecipientID,
		Title:           n.Title,
		Message:         n.Message,
		Type:            string(n.Type),
		RelatedEntityID: n.RelatedEntityID,
		Read:            n.Read,
		CreatedAt:       n.CreatedAt,
	})
	if err != nil {
		return domain.Notification{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (domain.Notification, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *NotificationRepository) FindByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]domain.Notification, error) {
	found, err := r.dao.FindByRecipient(ctx, recipientID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByRecipient -> %w", err)
	}

	notifications := make([]domain.Notification, len(found))
	for i, n := range found {
		notifications[i] = r.daoToDomain(n)
	}

	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	if err := r.dao.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("r.dao.MarkRead -> %w", err)
	}

	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	updated, err := r.dao.MarkAllRead(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.MarkAllRead -> %w", err)
	}

	return updated, nil
}

func (r *NotificationRepository) daoToDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:              n.ID,
		RecipientID:     n.RecipientID,
		Title:           n.Title,
		Message:         n.Message,
		Type:            domain.NotificationType(n.Type),
		RelatedEntityID: n.RelatedEntityID,
		Read:            n.Read,
		CreatedAt:       n.CreatedAt,
	}
}
