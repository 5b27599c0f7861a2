package dto

import "time"

// TaskDto is a task as returned to clients.
type TaskDto struct {
	ID          uint64    `json:"id"`
	TaskName    string    `json:"taskName"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}
