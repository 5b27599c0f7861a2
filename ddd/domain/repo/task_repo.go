package repo

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
)

// TaskRepository hides task persistence.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	ListByUser(ctx context.Context, userUUID string) ([]*entity.Task, error)
	FindByUser(ctx context.Context, id uint64, userUUID string) (*entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
}
