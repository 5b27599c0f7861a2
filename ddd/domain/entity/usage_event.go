package entity

import "time"

// UsageEvent records one interval of time a user spent in a named
// application. Events are immutable once stored.
type UsageEvent struct {
	ID        uint64
	UserUUID  string
	AppName   string
	Duration  int64 // seconds
	Timestamp time.Time
}

// NewUsageEvent creates a usage event stamped with the given time.
func NewUsageEvent(userUUID, appName string, duration int64, ts time.Time) *UsageEvent {
	return &UsageEvent{
		UserUUID:  userUUID,
		AppName:   appName,
		Duration:  duration,
		Timestamp: ts,
	}
}
