package repo

import (
	"context"
	"time"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
)

// UsageEventRepository persists immutable usage events. Aggregation happens
// in the domain layer over the event sets returned here, so every rollup
// shares one grouping code path.
type UsageEventRepository interface {
	Create(ctx context.Context, ev *entity.UsageEvent) error
	CreateBatch(ctx context.Context, evs []*entity.UsageEvent) error
	ListByUser(ctx context.Context, userUUID string) ([]*entity.UsageEvent, error)
	ListByUserBetween(ctx context.Context, userUUID string, from, to time.Time) ([]*entity.UsageEvent, error)
	ListAll(ctx context.Context) ([]*entity.UsageEvent, error)
}
