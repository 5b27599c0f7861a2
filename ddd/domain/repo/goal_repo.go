package repo

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
)

// GoalRepository hides goal persistence. Find methods return
// errno.ErrNotFound when no row matches.
type GoalRepository interface {
	Create(ctx context.Context, g *entity.Goal) error
	ListByUser(ctx context.Context, userUUID string) ([]*entity.Goal, error)
	FindByUser(ctx context.Context, id uint64, userUUID string) (*entity.Goal, error)
	FindByID(ctx context.Context, id uint64) (*entity.Goal, error)
	Update(ctx context.Context, g *entity.Goal) error
	Delete(ctx context.Context, id uint64, userUUID string) error
}
