package entity

import "time"

// Task is a dated to-do item. Completion is monotonic, same as Goal.
type Task struct {
	ID          uint64
	UserUUID    string
	TaskName    string
	Description string
	Date        time.Time
	Completed   bool
	CreatedAt   time.Time
}

// NewTask creates a pending task.
func NewTask(userUUID, taskName, description string, date time.Time) *Task {
	return &Task{
		UserUUID:    userUUID,
		TaskName:    taskName,
		Description: description,
		Date:        date,
		Completed:   false,
	}
}
