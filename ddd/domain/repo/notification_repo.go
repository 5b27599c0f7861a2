package repo

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
)

// NotificationRepository hides notification persistence.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByUser(ctx context.Context, userUUID string) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, userUUID string) (int64, error)
	MarkAllRead(ctx context.Context, userUUID string) error
}
