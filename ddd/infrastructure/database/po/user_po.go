package po

import "time"

// User maps to the users table owned by the auth service; this service
// only ever reads it.
type User struct {
	UUID      string    `gorm:"column:uuid;primaryKey"`
	Username  string    `gorm:"column:username"`
	Email     string    `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}
