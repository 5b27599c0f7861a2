package service

import (
	"time"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
)

// GoalProgress computes how far along a goal is at the given instant, as a
// percentage of the createdAt→targetTime interval clamped to [0,100].
// Degenerate or inverted intervals yield 0 rather than a division artifact.
func GoalProgress(g *entity.Goal, now time.Time) float64 {
	total := g.TargetTime.Sub(g.CreatedAt)
	if total <= 0 {
		return 0
	}
	elapsed := now.Sub(g.CreatedAt)
	if elapsed <= 0 {
		return 0
	}
	pct := 100 * float64(elapsed) / float64(total)
	if pct > 100 {
		return 100
	}
	return pct
}
