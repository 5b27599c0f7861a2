package po

import "time"

// UsageEvent maps to the usage_events table. Rows are append-only.
type UsageEvent struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	UserUUID  string    `gorm:"column:user_uuid;index"`
	AppName   string    `gorm:"column:app_name"`
	Duration  int64     `gorm:"column:duration"`
	Timestamp time.Time `gorm:"column:timestamp;index"`
}

func (UsageEvent) TableName() string {
	return "usage_events"
}
