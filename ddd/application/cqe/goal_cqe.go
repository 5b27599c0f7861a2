package cqe

import "time"

// CreateGoalReq creates a new goal.
type CreateGoalReq struct {
	GoalName    string     `json:"goalName"`
	Description string     `json:"description"`
	TargetTime  *time.Time `json:"targetTime"`
}

func (r *CreateGoalReq) Validate() bool {
	if r == nil {
		return false
	}
	return r.GoalName != "" && r.TargetTime != nil
}

// UpdateGoalReq overwrites name, description and target time. An omitted
// description keeps the stored value.
type UpdateGoalReq struct {
	GoalName    string     `json:"goalName"`
	Description string     `json:"description"`
	TargetTime  *time.Time `json:"targetTime"`
}

func (r *UpdateGoalReq) Validate() bool {
	if r == nil {
		return false
	}
	return r.GoalName != "" && r.TargetTime != nil
}

// ExtendGoalReq moves a goal's deadline.
type ExtendGoalReq struct {
	TargetTime *time.Time `json:"targetTime"`
}

func (r *ExtendGoalReq) Validate() bool {
	return r != nil && r.TargetTime != nil
}
