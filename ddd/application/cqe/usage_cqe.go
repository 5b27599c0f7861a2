package cqe

import "time"

// TrackUsageReq is one usage sample from the client tracker.
// Duration is a pointer so a missing field can be told apart from zero.
type TrackUsageReq struct {
	AppName  string `json:"appName"`
	Duration *int64 `json:"duration"`
}

// Validate checks the required fields. Rejected samples are the caller's
// problem; nothing is coerced on the single-event path.
func (r *TrackUsageReq) Validate() bool {
	if r == nil {
		return false
	}
	return r.AppName != "" && r.Duration != nil && *r.Duration >= 0
}

// BatchUsageItem is one element of an extension batch. Every field is
// optional; missing values are coerced to defaults rather than rejected,
// because extension clients flush partial data after connectivity gaps.
type BatchUsageItem struct {
	AppName   string     `json:"appName"`
	Duration  *int64     `json:"duration"`
	Timestamp *time.Time `json:"timestamp"`
}

// TrackUsageBatchReq is the extension flush envelope.
type TrackUsageBatchReq struct {
	UsageData []BatchUsageItem `json:"usageData"`
}

// Validate only rejects a missing or non-list usageData envelope;
// individual items are never rejected.
func (r *TrackUsageBatchReq) Validate() bool {
	return r != nil && r.UsageData != nil
}
