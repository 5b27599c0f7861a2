package dao

import (
	"context"
	"time"

	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/po"
	"github.com/M0nkiiii/Screentime-Management/internal/resource"

	"gorm.io/gorm"
)

type NotificationDao struct {
	db *gorm.DB
}

func NewNotificationDao() *NotificationDao {
	return &NotificationDao{db: resource.MainDB()}
}

func (d *NotificationDao) Create(ctx context.Context, p *po.Notification) error {
	return d.db.WithContext(ctx).Create(p).Error
}

func (d *NotificationDao) ListByUser(ctx context.Context, userUUID string) ([]po.Notification, error) {
	var pos []po.Notification
	err := d.db.WithContext(ctx).
		Where("user_uuid = ?", userUUID).
		Order("created_at DESC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return pos, nil
}

func (d *NotificationDao) CountUnread(ctx context.Context, userUUID string) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&po.Notification{}).
		Where("user_uuid = ? AND is_read = 0", userUUID).
		Count(&count).Error
	return count, err
}

// MarkAllRead flips every unread notification for the user. Matching zero
// rows is not an error, which makes the call idempotent.
func (d *NotificationDao) MarkAllRead(ctx context.Context, userUUID string) error {
	now := time.Now()
	return d.db.WithContext(ctx).
		Model(&po.Notification{}).
		Where("user_uuid = ? AND is_read = 0", userUUID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		}).Error
}
