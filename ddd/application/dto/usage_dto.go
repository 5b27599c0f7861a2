package dto

import "time"

// UsageRecordDto is one stored usage event as returned to clients.
type UsageRecordDto struct {
	ID        uint64    `json:"id"`
	UserUUID  string    `json:"userId"`
	AppName   string    `json:"appName"`
	Duration  int64     `json:"duration"`
	Timestamp time.Time `json:"timestamp"`
}

// AppUsageDto is one per-app rollup row on the user dashboard.
type AppUsageDto struct {
	AppName   string `json:"appName"`
	TotalTime int64  `json:"totalTime"`
}

// DashboardDto is the user dashboard response. The sum of AppUsage totals
// always equals TotalScreenTime; both come from one grouping pass.
type DashboardDto struct {
	TotalScreenTime int64         `json:"totalScreenTime"`
	AppUsage        []AppUsageDto `json:"appUsage"`
}

// DayUsageDto is one weekday's usage in minutes.
type DayUsageDto struct {
	Day        string `json:"day"`
	TotalUsage int64  `json:"totalUsage"`
}

// DailyUsageDto is today's rollup plus the collaborator's recommendation.
type DailyUsageDto struct {
	TotalUsageMinutes int64  `json:"totalUsageMinutes"`
	Recommendation    string `json:"recommendation"`
}

// PredictionDto carries the collaborator's recommendation verbatim.
type PredictionDto struct {
	Recommendation string `json:"recommendation"`
}

// UserUsageDto is one per-user rollup row on the admin dashboard.
type UserUsageDto struct {
	UserUUID      string `json:"userId"`
	Username      string `json:"username"`
	TotalDuration int64  `json:"totalDuration"`
}

// AppTotalDto is one global per-app rollup row on the admin dashboard.
type AppTotalDto struct {
	AppName       string `json:"appName"`
	TotalDuration int64  `json:"totalDuration"`
}

// AdminDashboardDto is the cross-user rollup view.
type AdminDashboardDto struct {
	TotalUsers    int64          `json:"totalUsers"`
	UserUsageData []UserUsageDto `json:"userUsageData"`
	AppUsageData  []AppTotalDto  `json:"appUsageData"`
}
