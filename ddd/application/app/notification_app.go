package app

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/application/dto"
	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
	drepo "github.com/M0nkiiii/Screentime-Management/ddd/domain/repo"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/persistence"
	"github.com/M0nkiiii/Screentime-Management/pkg/assert"
	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
)

// NotificationEmitter is the narrow side-effect surface the goal and task
// lifecycles depend on. Every lifecycle transition calls Emit exactly once;
// callers only branch on success or failure.
type NotificationEmitter interface {
	Emit(ctx context.Context, userUUID, title, description string) error
}

// NotificationApp orchestrates notification use cases.
type NotificationApp interface {
	NotificationEmitter
	ListNotifications(ctx context.Context, userUUID string) ([]dto.NotificationDto, error)
	UnreadCount(ctx context.Context, userUUID string) (*dto.UnreadCountDto, error)
	MarkAllRead(ctx context.Context, userUUID string) error
}

type notificationAppImpl struct {
	repo drepo.NotificationRepository
}

// NewNotificationApp builds the app service over an explicit repository.
func NewNotificationApp(repo drepo.NotificationRepository) NotificationApp {
	return &notificationAppImpl{repo: repo}
}

// DefaultNotificationApp returns the app service wired to persistence.
func DefaultNotificationApp() NotificationApp {
	assert.NotCircular()
	return NewNotificationApp(persistence.NewNotificationRepository())
}

// Emit appends an unread notification for the user.
func (a *notificationAppImpl) Emit(ctx context.Context, userUUID, title, description string) error {
	if userUUID == "" {
		return errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "userUUID")
	}
	n := entity.NewNotification(userUUID, title, description)
	return a.repo.Create(ctx, n)
}

func (a *notificationAppImpl) ListNotifications(ctx context.Context, userUUID string) ([]dto.NotificationDto, error) {
	if userUUID == "" {
		return nil, errno.ErrUnauthorized
	}
	list, err := a.repo.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NotificationDto, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationDto{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			IsRead:      n.IsRead,
			CreatedAt:   n.CreatedAt,
			ReadAt:      n.ReadAt,
		})
	}
	return items, nil
}

func (a *notificationAppImpl) UnreadCount(ctx context.Context, userUUID string) (*dto.UnreadCountDto, error) {
	if userUUID == "" {
		return nil, errno.ErrUnauthorized
	}
	unread, err := a.repo.CountUnread(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountDto{UnreadCount: unread}, nil
}

// MarkAllRead flips every unread notification for the user. Calling it
// again with nothing unread succeeds and changes nothing.
func (a *notificationAppImpl) MarkAllRead(ctx context.Context, userUUID string) error {
	if userUUID == "" {
		return errno.ErrUnauthorized
	}
	return a.repo.MarkAllRead(ctx, userUUID)
}
