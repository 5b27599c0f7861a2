package dto

import "time"

// GoalDto is a goal as returned to clients. CreatedAt is always included
// so callers can compute progress themselves; Progress carries the
// server-side computation for convenience.
type GoalDto struct {
	ID          uint64    `json:"id"`
	GoalName    string    `json:"goalName"`
	Description string    `json:"description"`
	TargetTime  time.Time `json:"targetTime"`
	CreatedAt   time.Time `json:"createdAt"`
	Completed   bool      `json:"completed"`
	Notified    bool      `json:"notified"`
	Progress    float64   `json:"progress"`
}
