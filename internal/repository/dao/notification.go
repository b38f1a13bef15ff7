package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Notification struct {
	ID              string `gorm:"primaryKey;type:varchar(64)"`
	RecipientID     string `gorm:"not null;index"`
	Title           string `gorm:"not null"`
	Message         string `gorm:"not null"`
	Type            string `gorm:"not null"`
	RelatedEntityID string
	Read            bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"not null;index"`
}

type NotificationDAO struct {
	db *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{
		db: db,
	}
}

func (d *NotificationDAO) Insert(ctx context.Context, notification Notification) (Notification, error) {
	result := d.db.WithContext(ctx).Create(&notification)
	if result.Error != nil {
		return Notification{}, result.Error
	}

	return notification, nil
}

func (d *NotificationDAO) FindByID(ctx context.Context, id string) (Notification, error) {
	var notification Notification

	result := d.db.WithContext(ctx).First(&notification, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Notification{}, ErrNotificationNotFound
		}

		return Notification{}, result.Error
	}

	return notification, nil
}

// FindByRecipient lists the recipient's notifications newest first. When
// unreadOnly is set, read notifications are left out.
func (d *NotificationDAO) FindByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]Notification, error) {
	var notifications []Notification

	query := d.db.WithContext(ctx).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	result := query.Order("created_at DESC").Find(&notifications)
	if result.Error != nil {
		return nil, result.Error
	}

	return notifications, nil
}

func (d *NotificationDAO) MarkRead(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Model(&Notification{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (d *NotificationDAO) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	result := d.db.WithContext(ctx).
		Model(&Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Update("read", true)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
