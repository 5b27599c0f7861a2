package po

import "time"

// Goal maps to the goals table.
type Goal struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	UserUUID    string    `gorm:"column:user_uuid;index"`
	GoalName    string    `gorm:"column:goal_name"`
	Description string    `gorm:"column:description"`
	TargetTime  time.Time `gorm:"column:target_time"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	Completed   bool      `gorm:"column:completed"`
	Notified    bool      `gorm:"column:notified"`
}

func (Goal) TableName() string {
	return "goals"
}
