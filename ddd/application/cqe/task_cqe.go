package cqe

import "time"

// CreateTaskReq creates a new task.
type CreateTaskReq struct {
	TaskName    string     `json:"taskName"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

func (r *CreateTaskReq) Validate() bool {
	if r == nil {
		return false
	}
	return r.TaskName != "" && r.Date != nil
}
