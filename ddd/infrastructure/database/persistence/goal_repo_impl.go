package persistence

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
	drepo "github.com/M0nkiiii/Screentime-Management/ddd/domain/repo"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/dao"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/po"
)

type goalRepositoryImpl struct {
	dao *dao.GoalDao
}

func NewGoalRepository() drepo.GoalRepository {
	return &goalRepositoryImpl{dao: dao.NewGoalDao()}
}

func (r *goalRepositoryImpl) Create(ctx context.Context, g *entity.Goal) error {
	p := goalToPo(g)
	if err := r.dao.Create(ctx, p); err != nil {
		return wrapStoreError(err)
	}
	g.ID = p.ID
	g.CreatedAt = p.CreatedAt
	return nil
}

func (r *goalRepositoryImpl) ListByUser(ctx context.Context, userUUID string) ([]*entity.Goal, error) {
	pos, err := r.dao.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	res := make([]*entity.Goal, 0, len(pos))
	for _, p := range pos {
		res = append(res, goalToEntity(p))
	}
	return res, nil
}

func (r *goalRepositoryImpl) FindByUser(ctx context.Context, id uint64, userUUID string) (*entity.Goal, error) {
	p, err := r.dao.FindByUser(ctx, id, userUUID)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return goalToEntity(*p), nil
}

func (r *goalRepositoryImpl) FindByID(ctx context.Context, id uint64) (*entity.Goal, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return goalToEntity(*p), nil
}

func (r *goalRepositoryImpl) Update(ctx context.Context, g *entity.Goal) error {
	if err := r.dao.Update(ctx, goalToPo(g)); err != nil {
		return wrapStoreError(err)
	}
	return nil
}

func (r *goalRepositoryImpl) Delete(ctx context.Context, id uint64, userUUID string) error {
	if err := r.dao.Delete(ctx, id, userUUID); err != nil {
		return wrapStoreError(err)
	}
	return nil
}

func goalToPo(g *entity.Goal) *po.Goal {
	return &po.Goal{
		ID:          g.ID,
		UserUUID:    g.UserUUID,
		GoalName:    g.GoalName,
		Description: g.Description,
		TargetTime:  g.TargetTime,
		CreatedAt:   g.CreatedAt,
		Completed:   g.Completed,
		Notified:    g.Notified,
	}
}

func goalToEntity(p po.Goal) *entity.Goal {
	return &entity.Goal{
		ID:          p.ID,
		UserUUID:    p.UserUUID,
		GoalName:    p.GoalName,
		Description: p.Description,
		TargetTime:  p.TargetTime,
		CreatedAt:   p.CreatedAt,
		Completed:   p.Completed,
		Notified:    p.Notified,
	}
}
