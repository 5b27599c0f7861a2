package po

import "time"

// Notification maps to the notifications table.
type Notification struct {
	ID          uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserUUID    string     `gorm:"column:user_uuid;index"`
	Title       string     `gorm:"column:title"`
	Description string     `gorm:"column:description"`
	IsRead      bool       `gorm:"column:is_read"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	ReadAt      *time.Time `gorm:"column:read_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
