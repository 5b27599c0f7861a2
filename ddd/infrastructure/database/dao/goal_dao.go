package dao

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/po"
	"github.com/M0nkiiii/Screentime-Management/internal/resource"

	"gorm.io/gorm"
)

type GoalDao struct {
	db *gorm.DB
}

func NewGoalDao() *GoalDao {
	return &GoalDao{db: resource.MainDB()}
}

func (d *GoalDao) Create(ctx context.Context, p *po.Goal) error {
	return d.db.WithContext(ctx).Create(p).Error
}

func (d *GoalDao) ListByUser(ctx context.Context, userUUID string) ([]po.Goal, error) {
	var pos []po.Goal
	err := d.db.WithContext(ctx).
		Where("user_uuid = ?", userUUID).
		Order("created_at ASC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return pos, nil
}

// FindByUser returns gorm.ErrRecordNotFound when no goal matches the
// (id, user) pair, which also covers goals owned by someone else.
func (d *GoalDao) FindByUser(ctx context.Context, id uint64, userUUID string) (*po.Goal, error) {
	var p po.Goal
	err := d.db.WithContext(ctx).
		Where("id = ? AND user_uuid = ?", id, userUUID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *GoalDao) FindByID(ctx context.Context, id uint64) (*po.Goal, error) {
	var p po.Goal
	err := d.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *GoalDao) Update(ctx context.Context, p *po.Goal) error {
	return d.db.WithContext(ctx).
		Model(&po.Goal{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"goal_name":   p.GoalName,
			"description": p.Description,
			"target_time": p.TargetTime,
			"completed":   p.Completed,
			"notified":    p.Notified,
		}).Error
}

func (d *GoalDao) Delete(ctx context.Context, id uint64, userUUID string) error {
	res := d.db.WithContext(ctx).
		Where("id = ? AND user_uuid = ?", id, userUUID).
		Delete(&po.Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
