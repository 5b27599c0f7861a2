package service

import "context"

// Predictor is the external recommendation collaborator. Given a user's
// recent per-day usage in minutes (oldest first) it returns a
// recommendation string, surfaced to clients verbatim. Its internal model
// is opaque to this service.
type Predictor interface {
	Predict(ctx context.Context, userUUID string, recentDailyMinutes []int64) (string, error)
}
