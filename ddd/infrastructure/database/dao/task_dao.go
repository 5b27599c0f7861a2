package dao

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/po"
	"github.com/M0nkiiii/Screentime-Management/internal/resource"

	"gorm.io/gorm"
)

type TaskDao struct {
	db *gorm.DB
}

func NewTaskDao() *TaskDao {
	return &TaskDao{db: resource.MainDB()}
}

func (d *TaskDao) Create(ctx context.Context, p *po.Task) error {
	return d.db.WithContext(ctx).Create(p).Error
}

func (d *TaskDao) ListByUser(ctx context.Context, userUUID string) ([]po.Task, error) {
	var pos []po.Task
	err := d.db.WithContext(ctx).
		Where("user_uuid = ?", userUUID).
		Order("date ASC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return pos, nil
}

func (d *TaskDao) FindByUser(ctx context.Context, id uint64, userUUID string) (*po.Task, error) {
	var p po.Task
	err := d.db.WithContext(ctx).
		Where("id = ? AND user_uuid = ?", id, userUUID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *TaskDao) Update(ctx context.Context, p *po.Task) error {
	return d.db.WithContext(ctx).
		Model(&po.Task{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"task_name":   p.TaskName,
			"description": p.Description,
			"date":        p.Date,
			"completed":   p.Completed,
		}).Error
}
