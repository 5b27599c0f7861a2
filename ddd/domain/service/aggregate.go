package service

import (
	"sort"
	"time"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
)

// Bucket is one aggregation group: a key (app name, user, weekday) and the
// summed duration of every event that fell into it.
type Bucket struct {
	Key   string
	Total int64
}

// DayUsage is one calendar day's usage total in minutes.
type DayUsage struct {
	Day        string
	TotalUsage int64
}

// GroupAndSum makes a single grouping pass over events and returns one
// bucket per distinct key, sorted descending by total. Ties keep the order
// in which keys first appeared in the input, so results are deterministic
// for a fixed event snapshot.
//
// Every rollup in this service (user dashboard, admin per-user, admin
// per-app) goes through this function, which is what guarantees that the
// per-group sums reconcile with TotalDuration over the same event set.
func GroupAndSum(events []*entity.UsageEvent, keyFn func(*entity.UsageEvent) string) []Bucket {
	totals := make(map[string]int64, len(events))
	order := make([]string, 0, len(events))

	for _, ev := range events {
		key := keyFn(ev)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += ev.Duration
	}

	buckets := make([]Bucket, 0, len(order))
	for _, key := range order {
		buckets = append(buckets, Bucket{Key: key, Total: totals[key]})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Total > buckets[j].Total
	})
	return buckets
}

// TotalDuration sums all event durations in seconds. Zero for an empty set.
func TotalDuration(events []*entity.UsageEvent) int64 {
	var total int64
	for _, ev := range events {
		total += ev.Duration
	}
	return total
}

// WeekStart returns midnight of the Monday of now's week, in now's location.
func WeekStart(now time.Time) time.Time {
	day := now
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, -1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}

// WeeklyUsage partitions the current week's events by calendar day and sums
// each day's duration in minutes. Days without data are omitted; buckets
// come back in chronological order from Monday.
func WeeklyUsage(events []*entity.UsageEvent, now time.Time) []DayUsage {
	start := WeekStart(now)
	totals := make(map[time.Weekday]int64)

	for _, ev := range events {
		ts := ev.Timestamp.In(now.Location())
		if ts.Before(start) || ts.After(now) {
			continue
		}
		totals[ts.Weekday()] += ev.Duration
	}

	days := make([]DayUsage, 0, 7)
	for i := 0; i < 7; i++ {
		weekday := start.AddDate(0, 0, i).Weekday()
		seconds, ok := totals[weekday]
		if !ok {
			continue
		}
		days = append(days, DayUsage{
			Day:        weekday.String()[:3],
			TotalUsage: seconds / 60,
		})
	}
	return days
}

// DailyTotalMinutes sums the durations of events that fall on now's
// calendar day, converted to minutes.
func DailyTotalMinutes(events []*entity.UsageEvent, now time.Time) int64 {
	var seconds int64
	for _, ev := range events {
		if sameDay(ev.Timestamp.In(now.Location()), now) {
			seconds += ev.Duration
		}
	}
	return seconds / 60
}

// RecentDailyMinutes returns per-day minute totals for the last days
// calendar days ending today, oldest first, zero-filled. This is the shape
// the prediction collaborator consumes.
func RecentDailyMinutes(events []*entity.UsageEvent, now time.Time, days int) []int64 {
	totals := make([]int64, days)
	for _, ev := range events {
		ts := ev.Timestamp.In(now.Location())
		for i := 0; i < days; i++ {
			if sameDay(ts, now.AddDate(0, 0, i-days+1)) {
				totals[i] += ev.Duration
				break
			}
		}
	}
	for i := range totals {
		totals[i] /= 60
	}
	return totals
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
