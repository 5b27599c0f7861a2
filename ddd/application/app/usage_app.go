package app

import (
	"context"
	"time"

	"github.com/M0nkiiii/Screentime-Management/ddd/application/cqe"
	"github.com/M0nkiiii/Screentime-Management/ddd/application/dto"
	"github.com/M0nkiiii/Screentime-Management/ddd/domain/entity"
	drepo "github.com/M0nkiiii/Screentime-Management/ddd/domain/repo"
	"github.com/M0nkiiii/Screentime-Management/ddd/domain/service"
	"github.com/M0nkiiii/Screentime-Management/ddd/infrastructure/database/persistence"
	"github.com/M0nkiiii/Screentime-Management/pkg/assert"
	"github.com/M0nkiiii/Screentime-Management/pkg/cache"
	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
)

const (
	// unknownAppName is substituted for batch items that arrive without an
	// app name; extension clients sometimes cannot resolve one.
	unknownAppName = "Unknown"

	// noUsageRecommendation is returned for a day with no recorded usage.
	// The prediction collaborator is not consulted in that case.
	noUsageRecommendation = "No usage recorded for today."

	dashboardCacheKeyPrefix = "trackr:dashboard:"
	adminDashboardCacheKey  = "trackr:admin-dashboard"

	predictionWindowDays = 7
)

// UsageApp ingests usage events and serves the aggregated views. All
// aggregation reads are pure computations over a snapshot of stored
// events; nothing here mutates an event after it is written.
type UsageApp interface {
	Track(ctx context.Context, userUUID string, req *cqe.TrackUsageReq) (*dto.UsageRecordDto, error)
	TrackBatch(ctx context.Context, userUUID string, req *cqe.TrackUsageBatchReq) ([]dto.UsageRecordDto, error)
	Dashboard(ctx context.Context, userUUID string) (*dto.DashboardDto, error)
	Weekly(ctx context.Context, userUUID string) ([]dto.DayUsageDto, error)
	Daily(ctx context.Context, userUUID string) (*dto.DailyUsageDto, error)
	Predict(ctx context.Context, userUUID string) (*dto.PredictionDto, error)
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardDto, error)
}

type usageAppImpl struct {
	events    drepo.UsageEventRepository
	users     drepo.UserRepository
	predictor service.Predictor
	cache     cache.Cache // nil when redis is unavailable
	now       func() time.Time
}

// NewUsageApp builds the app service over explicit collaborators. A nil
// cache disables dashboard caching.
func NewUsageApp(events drepo.UsageEventRepository, users drepo.UserRepository, predictor service.Predictor, c cache.Cache) UsageApp {
	return &usageAppImpl{
		events:    events,
		users:     users,
		predictor: predictor,
		cache:     c,
		now:       time.Now,
	}
}

// DefaultUsageApp returns the app service wired to persistence and the
// process-global cache (set during startup, may be nil).
func DefaultUsageApp() UsageApp {
	assert.NotCircular()
	return NewUsageApp(
		persistence.NewUsageEventRepository(),
		persistence.NewUserRepository(),
		defaultPredictor,
		defaultCache,
	)
}

var (
	defaultPredictor service.Predictor
	defaultCache     cache.Cache
)

// SetDefaultPredictor installs the prediction collaborator used by
// DefaultUsageApp. Called once during startup.
func SetDefaultPredictor(p service.Predictor) {
	defaultPredictor = p
}

// SetDefaultCache installs the dashboard cache used by DefaultUsageApp.
// Startup skips this when redis is unavailable.
func SetDefaultCache(c cache.Cache) {
	defaultCache = c
}

func (a *usageAppImpl) Track(ctx context.Context, userUUID string, req *cqe.TrackUsageReq) (*dto.UsageRecordDto, error) {
	if !req.Validate() {
		return nil, errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "appName/duration")
	}
	ev := entity.NewUsageEvent(userUUID, req.AppName, *req.Duration, a.now())
	if err := a.events.Create(ctx, ev); err != nil {
		return nil, err
	}
	a.invalidateDashboards(ctx, userUUID)
	return usageEventToDto(ev), nil
}

// TrackBatch stores an extension flush. Malformed items are coerced to
// defaults instead of failing the batch, and nothing is deduplicated:
// redelivery of the same client sample produces distinct rows
// (at-least-once ingestion).
func (a *usageAppImpl) TrackBatch(ctx context.Context, userUUID string, req *cqe.TrackUsageBatchReq) ([]dto.UsageRecordDto, error) {
	if !req.Validate() {
		return nil, errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "usageData")
	}

	now := a.now()
	evs := make([]*entity.UsageEvent, 0, len(req.UsageData))
	for _, item := range req.UsageData {
		appName := item.AppName
		if appName == "" {
			appName = unknownAppName
		}
		var duration int64
		if item.Duration != nil {
			duration = *item.Duration
		}
		ts := now
		if item.Timestamp != nil {
			ts = *item.Timestamp
		}
		evs = append(evs, entity.NewUsageEvent(userUUID, appName, duration, ts))
	}

	if err := a.events.CreateBatch(ctx, evs); err != nil {
		return nil, err
	}
	a.invalidateDashboards(ctx, userUUID)

	saved := make([]dto.UsageRecordDto, 0, len(evs))
	for _, ev := range evs {
		saved = append(saved, *usageEventToDto(ev))
	}
	return saved, nil
}

func (a *usageAppImpl) Dashboard(ctx context.Context, userUUID string) (*dto.DashboardDto, error) {
	cacheKey := dashboardCacheKeyPrefix + userUUID
	if a.cache != nil {
		var cached dto.DashboardDto
		if a.cache.Get(ctx, cacheKey, &cached) {
			return &cached, nil
		}
	}

	events, err := a.events.ListByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	buckets := service.GroupAndSum(events, func(ev *entity.UsageEvent) string { return ev.AppName })
	appUsage := make([]dto.AppUsageDto, 0, len(buckets))
	for _, b := range buckets {
		appUsage = append(appUsage, dto.AppUsageDto{AppName: b.Key, TotalTime: b.Total})
	}

	resp := &dto.DashboardDto{
		TotalScreenTime: service.TotalDuration(events),
		AppUsage:        appUsage,
	}
	if a.cache != nil {
		a.cache.Set(ctx, cacheKey, resp)
	}
	return resp, nil
}

func (a *usageAppImpl) Weekly(ctx context.Context, userUUID string) ([]dto.DayUsageDto, error) {
	now := a.now()
	events, err := a.events.ListByUserBetween(ctx, userUUID, service.WeekStart(now), now)
	if err != nil {
		return nil, err
	}

	days := service.WeeklyUsage(events, now)
	resp := make([]dto.DayUsageDto, 0, len(days))
	for _, d := range days {
		resp = append(resp, dto.DayUsageDto{Day: d.Day, TotalUsage: d.TotalUsage})
	}
	return resp, nil
}

func (a *usageAppImpl) Daily(ctx context.Context, userUUID string) (*dto.DailyUsageDto, error) {
	now := a.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	events, err := a.events.ListByUserBetween(ctx, userUUID, dayStart, now)
	if err != nil {
		return nil, err
	}

	total := service.DailyTotalMinutes(events, now)
	if total == 0 {
		return &dto.DailyUsageDto{TotalUsageMinutes: 0, Recommendation: noUsageRecommendation}, nil
	}
	if a.predictor == nil {
		return nil, errno.NewSimpleBizError(errno.ErrPrediction, nil)
	}

	recommendation, err := a.predictor.Predict(ctx, userUUID, []int64{total})
	if err != nil {
		return nil, err
	}
	return &dto.DailyUsageDto{TotalUsageMinutes: total, Recommendation: recommendation}, nil
}

func (a *usageAppImpl) Predict(ctx context.Context, userUUID string) (*dto.PredictionDto, error) {
	now := a.now()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, 1-predictionWindowDays)
	events, err := a.events.ListByUserBetween(ctx, userUUID, windowStart, now)
	if err != nil {
		return nil, err
	}

	recent := service.RecentDailyMinutes(events, now, predictionWindowDays)
	if a.predictor == nil {
		return nil, errno.NewSimpleBizError(errno.ErrPrediction, nil)
	}
	recommendation, err := a.predictor.Predict(ctx, userUUID, recent)
	if err != nil {
		return nil, err
	}
	return &dto.PredictionDto{Recommendation: recommendation}, nil
}

// AdminDashboard is the cross-user superset view. It reuses the same
// grouping pass as the user dashboard, so per-user and per-app totals
// reconcile with the events they cover.
func (a *usageAppImpl) AdminDashboard(ctx context.Context) (*dto.AdminDashboardDto, error) {
	if a.cache != nil {
		var cached dto.AdminDashboardDto
		if a.cache.Get(ctx, adminDashboardCacheKey, &cached) {
			return &cached, nil
		}
	}

	totalUsers, err := a.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := a.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	events, err := a.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	usernames := make(map[string]string, len(users))
	for _, u := range users {
		usernames[u.UUID] = u.Username
	}

	perUser := service.GroupAndSum(events, func(ev *entity.UsageEvent) string { return ev.UserUUID })
	userUsage := make([]dto.UserUsageDto, 0, len(perUser))
	for _, b := range perUser {
		userUsage = append(userUsage, dto.UserUsageDto{
			UserUUID:      b.Key,
			Username:      usernames[b.Key],
			TotalDuration: b.Total,
		})
	}

	perApp := service.GroupAndSum(events, func(ev *entity.UsageEvent) string { return ev.AppName })
	appUsage := make([]dto.AppTotalDto, 0, len(perApp))
	for _, b := range perApp {
		appUsage = append(appUsage, dto.AppTotalDto{AppName: b.Key, TotalDuration: b.Total})
	}

	resp := &dto.AdminDashboardDto{
		TotalUsers:    totalUsers,
		UserUsageData: userUsage,
		AppUsageData:  appUsage,
	}
	if a.cache != nil {
		a.cache.Set(ctx, adminDashboardCacheKey, resp)
	}
	return resp, nil
}

func (a *usageAppImpl) invalidateDashboards(ctx context.Context, userUUID string) {
	if a.cache == nil {
		return
	}
	a.cache.Invalidate(ctx, dashboardCacheKeyPrefix+userUUID, adminDashboardCacheKey)
}

func usageEventToDto(ev *entity.UsageEvent) *dto.UsageRecordDto {
	return &dto.UsageRecordDto{
		ID:        ev.ID,
		UserUUID:  ev.UserUUID,
		AppName:   ev.AppName,
		Duration:  ev.Duration,
		Timestamp: ev.Timestamp,
	}
}
