package persistence

import (
	"context"
	"time"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
	drepo "github.com/M0nkiiii/Screentime-Management/ddd/domain/repo"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/dao"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/po"
)

type usageEventRepositoryImpl struct {
	dao *dao.UsageEventDao
}

func NewUsageEventRepository() drepo.UsageEventRepository {
	return &usageEventRepositoryImpl{dao: dao.NewUsageEventDao()}
}

func (r *usageEventRepositoryImpl) Create(ctx context.Context, ev *entity.UsageEvent) error {
	p := usageEventToPo(ev)
	if err := r.dao.Create(ctx, p); err != nil {
		return wrapStoreError(err)
	}
	ev.ID = p.ID
	return nil
}

func (r *usageEventRepositoryImpl) CreateBatch(ctx context.Context, evs []*entity.UsageEvent) error {
	if len(evs) == 0 {
		return nil
	}
	ps := make([]*po.UsageEvent, 0, len(evs))
	for _, ev := range evs {
		ps = append(ps, usageEventToPo(ev))
	}
	if err := r.dao.CreateBatch(ctx, ps); err != nil {
		return wrapStoreError(err)
	}
	for i, p := range ps {
		evs[i].ID = p.ID
	}
	return nil
}

func (r *usageEventRepositoryImpl) ListByUser(ctx context.Context, userUUID string) ([]*entity.UsageEvent, error) {
	pos, err := r.dao.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return usageEventsToEntities(pos), nil
}

func (r *usageEventRepositoryImpl) ListByUserBetween(ctx context.Context, userUUID string, from, to time.Time) ([]*entity.UsageEvent, error) {
	pos, err := r.dao.ListByUserBetween(ctx, userUUID, from, to)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return usageEventsToEntities(pos), nil
}

func (r *usageEventRepositoryImpl) ListAll(ctx context.Context) ([]*entity.UsageEvent, error) {
	pos, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	return usageEventsToEntities(pos), nil
}

func usageEventToPo(ev *entity.UsageEvent) *po.UsageEvent {
	return &po.UsageEvent{
		ID:        ev.ID,
		UserUUID:  ev.UserUUID,
		AppName:   ev.AppName,
		Duration:  ev.Duration,
		Timestamp: ev.Timestamp,
	}
}

func usageEventsToEntities(pos []po.UsageEvent) []*entity.UsageEvent {
	res := make([]*entity.UsageEvent, 0, len(pos))
	for _, p := range pos {
		res = append(res, &entity.UsageEvent{
			ID:        p.ID,
			UserUUID:  p.UserUUID,
			AppName:   p.AppName,
			Duration:  p.Duration,
			Timestamp: p.Timestamp,
		})
	}
	return res
}
