package po

import "time"

// Task maps to the tasks table.
type Task struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	UserUUID    string    `gorm:"column:user_uuid;index"`
	TaskName    string    `gorm:"column:task_name"`
	Description string    `gorm:"column:description"`
	Date        time.Time `gorm:"column:date"`
	Completed   bool      `gorm:"column:completed"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Task) TableName() string {
	return "tasks"
}
