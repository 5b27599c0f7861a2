package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M0nkiiii/Screentime-Management/ddd/application/cqe"
	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
)

// fixedNow is a Wednesday at 18:00, so the running week covers Monday
// through Wednesday.
var fixedNow = time.Date(2026, time.February, 11, 18, 0, 0, 0, time.UTC)

func newUsageAppForTest(p *stubPredictor, c *memoryCache) (*usageAppImpl, *fakeUsageRepo, *fakeUserRepo) {
	events := newFakeUsageRepo()
	users := &fakeUserRepo{}
	impl := &usageAppImpl{
		events: events,
		users:  users,
		now:    func() time.Time { return fixedNow },
	}
	if p != nil {
		impl.predictor = p
	}
	if c != nil {
		impl.cache = c
	}
	return impl, events, users
}

func TestTrackStoresEvent(t *testing.T) {
	app, events, _ := newUsageAppForTest(nil, nil)

	record, err := app.Track(context.Background(), testUser, &cqe.TrackUsageReq{
		AppName:  "browser",
		Duration: int64Ptr(120),
	})
	require.NoError(t, err)

	assert.NotZero(t, record.ID)
	assert.Equal(t, "browser", record.AppName)
	assert.Equal(t, int64(120), record.Duration)
	assert.True(t, record.Timestamp.Equal(fixedNow), "events are stamped server-side")
	require.Len(t, events.events, 1)
}

func TestTrackValidation(t *testing.T) {
	app, events, _ := newUsageAppForTest(nil, nil)

	cases := []*cqe.TrackUsageReq{
		{AppName: "", Duration: int64Ptr(10)},
		{AppName: "browser", Duration: nil},
		{AppName: "browser", Duration: int64Ptr(-1)},
	}
	for _, req := range cases {
		_, err := app.Track(context.Background(), testUser, req)
		assert.ErrorIs(t, err, errno.ErrParameterInvalid)
	}
	assert.Empty(t, events.events)
}

func TestTrackInvalidatesDashboardCache(t *testing.T) {
	c := newMemoryCache()
	app, _, _ := newUsageAppForTest(nil, c)

	_, err := app.Track(context.Background(), testUser, &cqe.TrackUsageReq{
		AppName:  "browser",
		Duration: int64Ptr(60),
	})
	require.NoError(t, err)

	_, err = app.Dashboard(context.Background(), testUser)
	require.NoError(t, err)
	assert.Contains(t, c.data, dashboardCacheKeyPrefix+testUser)

	_, err = app.Track(context.Background(), testUser, &cqe.TrackUsageReq{
		AppName:  "editor",
		Duration: int64Ptr(30),
	})
	require.NoError(t, err)
	assert.NotContains(t, c.data, dashboardCacheKeyPrefix+testUser,
		"ingestion drops the cached dashboard")
}

func TestTrackBatchCoercesDefaults(t *testing.T) {
	app, events, _ := newUsageAppForTest(nil, nil)

	explicit := fixedNow.Add(-time.Hour)
	saved, err := app.TrackBatch(context.Background(), testUser, &cqe.TrackUsageBatchReq{
		UsageData: []cqe.BatchUsageItem{
			{AppName: "browser", Duration: int64Ptr(15), Timestamp: timePtr(explicit)},
			{Duration: int64Ptr(15)},
			{AppName: "editor"},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved, 3)
	require.Len(t, events.events, 3)

	assert.Equal(t, "browser", saved[0].AppName)
	assert.True(t, saved[0].Timestamp.Equal(explicit))

	assert.Equal(t, "Unknown", saved[1].AppName)
	assert.Equal(t, int64(15), saved[1].Duration)
	assert.True(t, saved[1].Timestamp.Equal(fixedNow))

	assert.Equal(t, "editor", saved[2].AppName)
	assert.Equal(t, int64(0), saved[2].Duration)
}

func TestTrackBatchRejectsMissingEnvelope(t *testing.T) {
	app, events, _ := newUsageAppForTest(nil, nil)

	_, err := app.TrackBatch(context.Background(), testUser, &cqe.TrackUsageBatchReq{})
	assert.ErrorIs(t, err, errno.ErrParameterInvalid)
	assert.Empty(t, events.events)

	// An empty list is a valid flush that stores nothing.
	saved, err := app.TrackBatch(context.Background(), testUser, &cqe.TrackUsageBatchReq{
		UsageData: []cqe.BatchUsageItem{},
	})
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestDashboardAggregates(t *testing.T) {
	app, events, _ := newUsageAppForTest(nil, nil)
	seed := []*entity.UsageEvent{
		{UserUUID: testUser, AppName: "browser", Duration: 600, Timestamp: fixedNow},
		{UserUUID: testUser, AppName: "editor", Duration: 300, Timestamp: fixedNow},
		{UserUUID: testUser, AppName: "browser", Duration: 1200, Timestamp: fixedNow},
		{UserUUID: "other-user", AppName: "browser", Duration: 9999, Timestamp: fixedNow},
	}
	require.NoError(t, events.CreateBatch(context.Background(), seed))

	dash, err := app.Dashboard(context.Background(), testUser)
	require.NoError(t, err)

	assert.Equal(t, int64(2100), dash.TotalScreenTime)
	require.Len(t, dash.AppUsage, 2)
	assert.Equal(t, "browser", dash.AppUsage[0].AppName)
	assert.Equal(t, int64(1800), dash.AppUsage[0].TotalTime)
	assert.Equal(t, "editor", dash.AppUsage[1].AppName)
	assert.Equal(t, int64(300), dash.AppUsage[1].TotalTime)

	// Per-app totals always reconcile with the headline number.
	var sum int64
	for _, a := range dash.AppUsage {
		sum += a.TotalTime
	}
	assert.Equal(t, dash.TotalScreenTime, sum)
}

func TestDashboardCacheReadThrough(t *testing.T) {
	c := newMemoryCache()
	app, events, _ := newUsageAppForTest(nil, c)
	require.NoError(t, events.Create(context.Background(), &entity.UsageEvent{
		UserUUID: testUser, AppName: "browser", Duration: 60, Timestamp: fixedNow,
	}))

	first, err := app.Dashboard(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, int64(60), first.TotalScreenTime)

	// A write that bypasses ingestion is invisible until the TTL expires.
	require.NoError(t, events.Create(context.Background(), &entity.UsageEvent{
		UserUUID: testUser, AppName: "browser", Duration: 60, Timestamp: fixedNow,
	}))
	second, err := app.Dashboard(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, int64(60), second.TotalScreenTime)
}

func TestWeeklyBuckets(t *testing.T) {
	app, events, _ := newUsageAppForTest(nil, nil)
	monday := time.Date(2026, time.February, 9, 10, 0, 0, 0, time.UTC)
	seed := []*entity.UsageEvent{
		{UserUUID: testUser, AppName: "browser", Duration: 900, Timestamp: monday},
		{UserUUID: testUser, AppName: "editor", Duration: 1200, Timestamp: fixedNow.Add(-time.Hour)},
		// Last week, outside the running week window.
		{UserUUID: testUser, AppName: "browser", Duration: 9999, Timestamp: monday.AddDate(0, 0, -3)},
	}
	require.NoError(t, events.CreateBatch(context.Background(), seed))

	days, err := app.Weekly(context.Background(), testUser)
	require.NoError(t, err)

	require.Len(t, days, 2, "days without usage are omitted")
	assert.Equal(t, "Mon", days[0].Day)
	assert.Equal(t, int64(15), days[0].TotalUsage)
	assert.Equal(t, "Wed", days[1].Day)
	assert.Equal(t, int64(20), days[1].TotalUsage)
}

func TestDailyNoUsage(t *testing.T) {
	p := &stubPredictor{recommendation: "unused"}
	app, _, _ := newUsageAppForTest(p, nil)

	daily, err := app.Daily(context.Background(), testUser)
	require.NoError(t, err)

	assert.Equal(t, int64(0), daily.TotalUsageMinutes)
	assert.Equal(t, "No usage recorded for today.", daily.Recommendation)
	assert.Zero(t, p.calls, "no prediction call for an empty day")
}

func TestDailyCallsPredictor(t *testing.T) {
	p := &stubPredictor{recommendation: "Take a break."}
	app, events, _ := newUsageAppForTest(p, nil)
	require.NoError(t, events.Create(context.Background(), &entity.UsageEvent{
		UserUUID: testUser, AppName: "browser", Duration: 1800, Timestamp: fixedNow.Add(-2 * time.Hour),
	}))

	daily, err := app.Daily(context.Background(), testUser)
	require.NoError(t, err)

	assert.Equal(t, int64(30), daily.TotalUsageMinutes)
	assert.Equal(t, "Take a break.", daily.Recommendation)
	assert.Equal(t, testUser, p.gotUser)
	assert.Equal(t, []int64{30}, p.gotDaily)
}

func TestDailyWithoutPredictorConfigured(t *testing.T) {
	app, events, _ := newUsageAppForTest(nil, nil)
	require.NoError(t, events.Create(context.Background(), &entity.UsageEvent{
		UserUUID: testUser, AppName: "browser", Duration: 60, Timestamp: fixedNow.Add(-time.Minute),
	}))

	_, err := app.Daily(context.Background(), testUser)
	assert.ErrorIs(t, err, errno.ErrPrediction)
}

func TestPredictSendsRecentWindow(t *testing.T) {
	p := &stubPredictor{recommendation: "Steady usage."}
	app, events, _ := newUsageAppForTest(p, nil)
	seed := []*entity.UsageEvent{
		{UserUUID: testUser, AppName: "browser", Duration: 600, Timestamp: fixedNow.AddDate(0, 0, -6)},
		{UserUUID: testUser, AppName: "browser", Duration: 1200, Timestamp: fixedNow.AddDate(0, 0, -2)},
		{UserUUID: testUser, AppName: "editor", Duration: 600, Timestamp: fixedNow},
	}
	require.NoError(t, events.CreateBatch(context.Background(), seed))

	out, err := app.Predict(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, "Steady usage.", out.Recommendation)

	// Seven entries, oldest first, empty days zero-filled.
	assert.Equal(t, []int64{10, 0, 0, 0, 20, 0, 10}, p.gotDaily)
}

func TestAdminDashboard(t *testing.T) {
	app, events, users := newUsageAppForTest(nil, nil)
	users.users = []*entity.User{
		{UUID: "user-1", Username: "alice"},
		{UUID: "user-2", Username: "bob"},
		{UUID: "user-3", Username: "carol"},
	}
	seed := []*entity.UsageEvent{
		{UserUUID: "user-1", AppName: "browser", Duration: 600, Timestamp: fixedNow},
		{UserUUID: "user-2", AppName: "browser", Duration: 300, Timestamp: fixedNow},
		{UserUUID: "user-1", AppName: "editor", Duration: 900, Timestamp: fixedNow},
	}
	require.NoError(t, events.CreateBatch(context.Background(), seed))

	dash, err := app.AdminDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), dash.TotalUsers)

	require.Len(t, dash.UserUsageData, 2, "users without events have no row")
	assert.Equal(t, "alice", dash.UserUsageData[0].Username)
	assert.Equal(t, int64(1500), dash.UserUsageData[0].TotalDuration)
	assert.Equal(t, "bob", dash.UserUsageData[1].Username)
	assert.Equal(t, int64(300), dash.UserUsageData[1].TotalDuration)

	require.Len(t, dash.AppUsageData, 2)
	assert.Equal(t, "browser", dash.AppUsageData[0].AppName)
	assert.Equal(t, int64(900), dash.AppUsageData[0].TotalDuration)
	assert.Equal(t, "editor", dash.AppUsageData[1].AppName)
	assert.Equal(t, int64(900), dash.AppUsageData[1].TotalDuration)
}
