package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M0nkiiii/Screentime-Management/ddd/application/cqe"
	"github.com/M0nkiiii/Screentime-Management/ddd/application/dto"
	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUsageApp struct {
	track func(userUUID string, req *cqe.TrackUsageReq) (*dto.UsageRecordDto, error)
}

func (s *stubUsageApp) Track(_ context.Context, userUUID string, req *cqe.TrackUsageReq) (*dto.UsageRecordDto, error) {
	return s.track(userUUID, req)
}

func (s *stubUsageApp) TrackBatch(context.Context, string, *cqe.TrackUsageBatchReq) ([]dto.UsageRecordDto, error) {
	return nil, nil
}

func (s *stubUsageApp) Dashboard(context.Context, string) (*dto.DashboardDto, error) {
	return &dto.DashboardDto{
		TotalScreenTime: 2100,
		AppUsage: []dto.AppUsageDto{
			{AppName: "browser", TotalTime: 1800},
			{AppName: "editor", TotalTime: 300},
		},
	}, nil
}

func (s *stubUsageApp) Weekly(context.Context, string) ([]dto.DayUsageDto, error) {
	return []dto.DayUsageDto{{Day: "Mon", TotalUsage: 15}}, nil
}

func (s *stubUsageApp) Daily(context.Context, string) (*dto.DailyUsageDto, error) {
	return &dto.DailyUsageDto{TotalUsageMinutes: 30, Recommendation: "Take a break."}, nil
}

func (s *stubUsageApp) Predict(context.Context, string) (*dto.PredictionDto, error) {
	return &dto.PredictionDto{Recommendation: "Steady usage."}, nil
}

func (s *stubUsageApp) AdminDashboard(context.Context) (*dto.AdminDashboardDto, error) {
	return &dto.AdminDashboardDto{TotalUsers: 3}, nil
}

type stubGoalApp struct {
	complete func(id uint64, userUUID string) (*dto.GoalDto, error)
}

func (s *stubGoalApp) Create(context.Context, string, *cqe.CreateGoalReq) (*dto.GoalDto, error) {
	return &dto.GoalDto{ID: 1, GoalName: "Read more"}, nil
}

func (s *stubGoalApp) List(context.Context, string) ([]dto.GoalDto, error) {
	return []dto.GoalDto{}, nil
}

func (s *stubGoalApp) Update(context.Context, uint64, string, *cqe.UpdateGoalReq) (*dto.GoalDto, error) {
	return &dto.GoalDto{ID: 1}, nil
}

func (s *stubGoalApp) Complete(_ context.Context, id uint64, userUUID string) (*dto.GoalDto, error) {
	return s.complete(id, userUUID)
}

func (s *stubGoalApp) Extend(context.Context, uint64, string, *cqe.ExtendGoalReq) (*dto.GoalDto, error) {
	return &dto.GoalDto{ID: 1}, nil
}

func (s *stubGoalApp) MarkNotified(context.Context, uint64) error { return nil }

func (s *stubGoalApp) Delete(context.Context, uint64, string) error { return nil }

func newUsageRouter(s *stubUsageApp) *gin.Engine {
	router := gin.New()
	ctrl := &usageControllerImpl{app: s}
	ctrl.RegisterOpenApi(router.Group("/api"))
	ctrl.RegisterInnerApi(router.Group("/api"))
	return router
}

func newGoalRouter(s *stubGoalApp) *gin.Engine {
	router := gin.New()
	ctrl := &goalControllerImpl{app: s}
	ctrl.RegisterOpenApi(router.Group("/api"))
	return router
}

func doRequest(router *gin.Engine, method, path, userUUID, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userUUID != "" {
		req.Header.Set("X-User-UUID", userUUID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTrackRequiresGatewayIdentity(t *testing.T) {
	router := newUsageRouter(&stubUsageApp{})

	rec := doRequest(router, http.MethodPost, "/api/usage/track", "", `{"appName":"browser","duration":60}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestTrackCreated(t *testing.T) {
	s := &stubUsageApp{
		track: func(userUUID string, req *cqe.TrackUsageReq) (*dto.UsageRecordDto, error) {
			return &dto.UsageRecordDto{
				ID:        1,
				UserUUID:  userUUID,
				AppName:   req.AppName,
				Duration:  *req.Duration,
				Timestamp: time.Now(),
			}, nil
		},
	}
	router := newUsageRouter(s)

	rec := doRequest(router, http.MethodPost, "/api/usage/track", "user-1", `{"appName":"browser","duration":60}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Message     string             `json:"message"`
		UsageRecord dto.UsageRecordDto `json:"usageRecord"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Usage tracked successfully", body.Message)
	assert.Equal(t, "browser", body.UsageRecord.AppName)
	assert.Equal(t, "user-1", body.UsageRecord.UserUUID)
}

func TestTrackInvalidBody(t *testing.T) {
	s := &stubUsageApp{
		track: func(string, *cqe.TrackUsageReq) (*dto.UsageRecordDto, error) {
			return nil, errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "appName/duration")
		},
	}
	router := newUsageRouter(s)

	rec := doRequest(router, http.MethodPost, "/api/usage/track", "user-1", `{"duration":60}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardBody(t *testing.T) {
	router := newUsageRouter(&stubUsageApp{})

	rec := doRequest(router, http.MethodGet, "/api/usage/dashboard", "user-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.DashboardDto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(2100), body.TotalScreenTime)
	require.Len(t, body.AppUsage, 2)
	assert.Equal(t, "browser", body.AppUsage[0].AppName)
}

func TestAdminDashboardRoute(t *testing.T) {
	router := newUsageRouter(&stubUsageApp{})

	rec := doRequest(router, http.MethodGet, "/api/usage/admin-dashboard", "admin-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.AdminDashboardDto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.TotalUsers)
}

func TestGoalCompleteStatusMapping(t *testing.T) {
	s := &stubGoalApp{
		complete: func(id uint64, userUUID string) (*dto.GoalDto, error) {
			if id != 1 {
				return nil, errno.NewSimpleBizError(errno.ErrNotFound, nil)
			}
			return &dto.GoalDto{ID: id, GoalName: "Read more", Completed: true}, nil
		},
	}
	router := newGoalRouter(s)

	rec := doRequest(router, http.MethodPut, "/api/goals/mark-completed/1", "user-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string      `json:"message"`
		Goal    dto.GoalDto `json:"goal"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Goal marked as completed", body.Message)
	assert.True(t, body.Goal.Completed)

	rec = doRequest(router, http.MethodPut, "/api/goals/mark-completed/99", "user-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGoalPathIDValidation(t *testing.T) {
	router := newGoalRouter(&stubGoalApp{})

	rec := doRequest(router, http.MethodPut, "/api/goals/mark-completed/abc", "user-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
