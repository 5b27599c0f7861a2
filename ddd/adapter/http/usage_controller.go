package http

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/M0nkiiii/Screentime-Management/ddd/application/app"
	"github.com/M0nkiiii/Screentime-Management/ddd/application/cqe"
	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
	"github.com/M0nkiiii/Screentime-Management/pkg/manager"
	"github.com/M0nkiiii/Screentime-Management/pkg/restapi"
)

var (
	usageControllerOnce sync.Once
	singletonUsageCtrl  UsageController
)

// UsageControllerPlugin registers the usage controller with the shared manager.
type UsageControllerPlugin struct{}

func (p *UsageControllerPlugin) Name() string {
	return "usageController"
}

func (p *UsageControllerPlugin) MustCreateController() manager.Controller {
	usageControllerOnce.Do(func() {
		singletonUsageCtrl = &usageControllerImpl{
			app: app.DefaultUsageApp(),
		}
	})
	return singletonUsageCtrl
}

// UsageController serves tracking ingestion and the aggregated views.
type UsageController interface {
	manager.Controller
	Track(ctx *gin.Context)
	TrackBatch(ctx *gin.Context)
	Dashboard(ctx *gin.Context)
	Weekly(ctx *gin.Context)
	Daily(ctx *gin.Context)
	Predict(ctx *gin.Context)
	AdminDashboard(ctx *gin.Context)
}

type usageControllerImpl struct {
	manager.Controller
	app app.UsageApp
}

func (c *usageControllerImpl) RegisterOpenApi(group *gin.RouterGroup) {
	usage := group.Group("usage")
	{
		usage.POST("/track", c.Track)
		usage.POST("/extension-data", c.TrackBatch)
		usage.GET("/dashboard", c.Dashboard)
		usage.GET("/weekly/:userId", c.Weekly)
		usage.GET("/daily/:userId", c.Daily)
		usage.GET("/predict/:userId", c.Predict)
	}
}

// RegisterInnerApi exposes the cross-user rollup. The gateway only routes
// inner paths for admin identities, so no further role check happens here.
func (c *usageControllerImpl) RegisterInnerApi(group *gin.RouterGroup) {
	usage := group.Group("usage")
	{
		usage.GET("/admin-dashboard", c.AdminDashboard)
	}
}

func (c *usageControllerImpl) RegisterDebugApi(group *gin.RouterGroup) {}
func (c *usageControllerImpl) RegisterOpsApi(group *gin.RouterGroup)   {}

// Track stores a single usage sample for the authenticated user.
func (c *usageControllerImpl) Track(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	var req cqe.TrackUsageReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "body"))
		return
	}
	record, err := c.app.Track(ctx.Request.Context(), userUUID, &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Created(ctx, gin.H{
		"message":     "Usage tracked successfully",
		"usageRecord": record,
	})
}

// TrackBatch stores an extension flush for the authenticated user.
func (c *usageControllerImpl) TrackBatch(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	var req cqe.TrackUsageBatchReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "body"))
		return
	}
	saved, err := c.app.TrackBatch(ctx.Request.Context(), userUUID, &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Created(ctx, gin.H{
		"message":   "Usage data saved successfully",
		"savedData": saved,
	})
}

// Dashboard returns the authenticated user's total and per-app rollup.
func (c *usageControllerImpl) Dashboard(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	resp, err := c.app.Dashboard(ctx.Request.Context(), userUUID)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// Weekly returns the current week's per-day rollup for the user in the
// path. Auth is still required; the path selects the data set.
func (c *usageControllerImpl) Weekly(ctx *gin.Context) {
	if _, err := extractUserUUID(ctx); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	resp, err := c.app.Weekly(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// Daily returns today's total and the collaborator's recommendation.
func (c *usageControllerImpl) Daily(ctx *gin.Context) {
	if _, err := extractUserUUID(ctx); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	resp, err := c.app.Daily(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// Predict returns a recommendation from the last week's usage.
func (c *usageControllerImpl) Predict(ctx *gin.Context) {
	if _, err := extractUserUUID(ctx); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	resp, err := c.app.Predict(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// AdminDashboard returns the cross-user rollup.
func (c *usageControllerImpl) AdminDashboard(ctx *gin.Context) {
	resp, err := c.app.AdminDashboard(ctx.Request.Context())
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

func init() {
	manager.RegisterControllerPlugin(&UsageControllerPlugin{})
}
