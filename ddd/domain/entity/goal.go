package entity

import "time"

// Goal is a user-defined target with a deadline. Completion is monotonic:
// once Completed is set it never reverts. Notified suppresses duplicate
// deadline reminders and is likewise set-once.
type Goal struct {
	ID          uint64
	UserUUID    string
	GoalName    string
	Description string
	TargetTime  time.Time
	CreatedAt   time.Time
	Completed   bool
	Notified    bool
}

// NewGoal creates an active, un-notified goal.
func NewGoal(userUUID, goalName, description string, targetTime time.Time) *Goal {
	return &Goal{
		UserUUID:    userUUID,
		GoalName:    goalName,
		Description: description,
		TargetTime:  targetTime,
		Completed:   false,
		Notified:    false,
	}
}
