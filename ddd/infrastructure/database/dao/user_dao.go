package dao

import (
	"context"

	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/po"
	"github.com/M0nkiiii/Screentime-Management/internal/resource"

	"gorm.io/gorm"
)

type UserDao struct {
	db *gorm.DB
}

func NewUserDao() *UserDao {
	return &UserDao{db: resource.MainDB()}
}

func (d *UserDao) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&po.User{}).
		Count(&count).Error
	return count, err
}

func (d *UserDao) ListAll(ctx context.Context) ([]po.User, error) {
	var pos []po.User
	err := d.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return pos, nil
}
