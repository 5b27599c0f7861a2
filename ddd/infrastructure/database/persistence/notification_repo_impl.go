package persistence

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
	drepo "github.com/M0nkiiii/Screentime-Management/ddd/domain/repo"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/dao"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/po"
)

type notificationRepositoryImpl struct {
	dao *dao.NotificationDao
}

func NewNotificationRepository() drepo.NotificationRepository {
	return &notificationRepositoryImpl{dao: dao.NewNotificationDao()}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n *entity.Notification) error {
	p := &po.Notification{
		UserUUID:    n.UserUUID,
		Title:       n.Title,
		Description: n.Description,
		IsRead:      n.IsRead,
	}
	if err := r.dao.Create(ctx, p); err != nil {
		return wrapStoreError(err)
	}
	n.ID = p.ID
	n.CreatedAt = p.CreatedAt
	return nil
}

func (r *notificationRepositoryImpl) ListByUser(ctx context.Context, userUUID string) ([]*entity.Notification, error) {
	pos, err := r.dao.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	res := make([]*entity.Notification, 0, len(pos))
	for _, p := range pos {
		res = append(res, notificationToEntity(p))
	}
	return res, nil
}

func (r *notificationRepositoryImpl) CountUnread(ctx context.Context, userUUID string) (int64, error) {
	count, err := r.dao.CountUnread(ctx, userUUID)
	if err != nil {
		return 0, wrapStoreError(err)
	}
	return count, nil
}

func (r *notificationRepositoryImpl) MarkAllRead(ctx context.Context, userUUID string) error {
	if err := r.dao.MarkAllRead(ctx, userUUID); err != nil {
		return wrapStoreError(err)
	}
	return nil
}

func notificationToEntity(p po.Notification) *entity.Notification {
	return &entity.Notification{
		ID:          p.ID,
		UserUUID:    p.UserUUID,
		Title:       p.Title,
		Description: p.Description,
		IsRead:      p.IsRead,
		CreatedAt:   p.CreatedAt,
		ReadAt:      p.ReadAt,
	}
}
