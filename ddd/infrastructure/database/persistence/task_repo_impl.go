package persistence

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
	drepo "github.com/M0nkiiii/Screentime-Management/ddd/domain/repo"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/dao"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/po"
)

type taskRepositoryImpl struct {
	dao *dao.TaskDao
}

func NewTaskRepository() drepo.TaskRepository {
	return &taskRepositoryImpl{dao: dao.NewTaskDao()}
}

func (r *taskRepositoryImpl) Create(ctx context.Context, t *entity.Task) error {
	p := taskToPo(t)
	if err := r.dao.Create(ctx, p); err != nil {
		return wrapStoreError(err)
	}
	t.ID = p.ID
	t.CreatedAt = p.CreatedAt
	return nil
}

func (r *taskRepositoryImpl) ListByUser(ctx context.Context, userUUID string) ([]*entity.Task, error) {
	pos, err := r.dao.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	res := make([]*entity.Task, 0, len(pos))
	for _, p := range pos {
		res = append(res, taskToEntity(p))
	}
	return res, nil
}

func (r *taskRepositoryImpl) FindByUser(ctx context.Context, id uint64, userUUID string) (*entity.Task, error) {
	p, err := r.dao.FindByUser(ctx, id, userUUID)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return taskToEntity(*p), nil
}

func (r *taskRepositoryImpl) Update(ctx context.Context, t *entity.Task) error {
	if err := r.dao.Update(ctx, taskToPo(t)); err != nil {
		return wrapStoreError(err)
	}
	return nil
}

func taskToPo(t *entity.Task) *po.Task {
	return &po.Task{
		ID:          t.ID,
		UserUUID:    t.UserUUID,
		TaskName:    t.TaskName,
		Description: t.Description,
		Date:        t.Date,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
	}
}

func taskToEntity(p po.Task) *entity.Task {
	return &entity.Task{
		ID:          p.ID,
		UserUUID:    p.UserUUID,
		TaskName:    p.TaskName,
		Description: p.Description,
		Date:        p.Date,
		Completed:   p.Completed,
		CreatedAt:   p.CreatedAt,
	}
}
