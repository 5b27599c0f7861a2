package dao

import (
	"context"
	"time"

	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/po"
	"github.com/M0nkiiii/Screentime-Management/internal/resource"

	"gorm.io/gorm"
)

type UsageEventDao struct {
	db *gorm.DB
}

func NewUsageEventDao() *UsageEventDao {
	return &UsageEventDao{db: resource.MainDB()}
}

func (d *UsageEventDao) Create(ctx context.Context, p *po.UsageEvent) error {
	return d.db.WithContext(ctx).Create(p).Error
}

// CreateBatch inserts all events in one statement (chunked by gorm's
// CreateBatchSize). No dedup: redelivered items become distinct rows.
func (d *UsageEventDao) CreateBatch(ctx context.Context, ps []*po.UsageEvent) error {
	if len(ps) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).Create(&ps).Error
}

func (d *UsageEventDao) ListByUser(ctx context.Context, userUUID string) ([]po.UsageEvent, error) {
	var pos []po.UsageEvent
	err := d.db.WithContext(ctx).
		Where("user_uuid = ?", userUUID).
		Order("timestamp ASC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return pos, nil
}

func (d *UsageEventDao) ListByUserBetween(ctx context.Context, userUUID string, from, to time.Time) ([]po.UsageEvent, error) {
	var pos []po.UsageEvent
	err := d.db.WithContext(ctx).
		Where("user_uuid = ? AND timestamp >= ? AND timestamp <= ?", userUUID, from, to).
		Order("timestamp ASC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return pos, nil
}

func (d *UsageEventDao) ListAll(ctx context.Context) ([]po.UsageEvent, error) {
	var pos []po.UsageEvent
	err := d.db.WithContext(ctx).
		Order("timestamp ASC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return pos, nil
}
