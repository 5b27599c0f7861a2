package entity

import "time"

// User is the account record usage events belong to. Account management
// lives in another service; this one only reads users for admin rollups.
type User struct {
	UUID      string
	Username  string
	Email     string
	CreatedAt time.Time
}
