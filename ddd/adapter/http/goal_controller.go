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
	goalControllerOnce sync.Once
	singletonGoalCtrl  GoalController
)

// GoalControllerPlugin registers the goal controller with the shared manager.
type GoalControllerPlugin struct{}

func (p *GoalControllerPlugin) Name() string {
	return "goalController"
}

func (p *GoalControllerPlugin) MustCreateController() manager.Controller {
	goalControllerOnce.Do(func() {
		singletonGoalCtrl = &goalControllerImpl{
			app: app.DefaultGoalApp(),
		}
	})
	return singletonGoalCtrl
}

// GoalController serves the goal lifecycle.
type GoalController interface {
	manager.Controller
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	Update(ctx *gin.Context)
	Complete(ctx *gin.Context)
	Extend(ctx *gin.Context)
	MarkNotified(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type goalControllerImpl struct {
	manager.Controller
	app app.GoalApp
}

func (c *goalControllerImpl) RegisterOpenApi(group *gin.RouterGroup) {
	goals := group.Group("goals")
	{
		goals.POST("/add", c.Create)
		goals.GET("/user-goals", c.List)
		goals.PUT("/update/:id", c.Update)
		goals.PUT("/mark-completed/:id", c.Complete)
		goals.PUT("/extend/:id", c.Extend)
		goals.PUT("/mark-notified/:goalId", c.MarkNotified)
		goals.DELETE("/delete/:id", c.Delete)
	}
}

func (c *goalControllerImpl) RegisterInnerApi(group *gin.RouterGroup) {}
func (c *goalControllerImpl) RegisterDebugApi(group *gin.RouterGroup) {}
func (c *goalControllerImpl) RegisterOpsApi(group *gin.RouterGroup)   {}

func (c *goalControllerImpl) Create(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	var req cqe.CreateGoalReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "body"))
		return
	}
	goal, err := c.app.Create(ctx.Request.Context(), userUUID, &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Created(ctx, gin.H{
		"message": "Goal added successfully",
		"goal":    goal,
	})
}

func (c *goalControllerImpl) List(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	goals, err := c.app.List(ctx.Request.Context(), userUUID)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, goals)
}

func (c *goalControllerImpl) Update(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	id, err := pathID(ctx, "id")
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	var req cqe.UpdateGoalReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "body"))
		return
	}
	goal, err := c.app.Update(ctx.Request.Context(), id, userUUID, &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{
		"message": "Goal updated successfully",
		"goal":    goal,
	})
}

func (c *goalControllerImpl) Complete(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	id, err := pathID(ctx, "id")
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	goal, err := c.app.Complete(ctx.Request.Context(), id, userUUID)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{
		"message": "Goal marked as completed",
		"goal":    goal,
	})
}

func (c *goalControllerImpl) Extend(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	id, err := pathID(ctx, "id")
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	var req cqe.ExtendGoalReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "body"))
		return
	}
	goal, err := c.app.Extend(ctx.Request.Context(), id, userUUID, &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{
		"message": "Goal deadline extended",
		"goal":    goal,
	})
}

// MarkNotified records that the client showed the deadline reminder.
func (c *goalControllerImpl) MarkNotified(ctx *gin.Context) {
	if _, err := extractUserUUID(ctx); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	goalID, err := pathID(ctx, "goalId")
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	if err := c.app.MarkNotified(ctx.Request.Context(), goalID); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{"message": "Goal marked as notified"})
}

func (c *goalControllerImpl) Delete(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	id, err := pathID(ctx, "id")
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	if err := c.app.Delete(ctx.Request.Context(), id, userUUID); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{"message": "Goal deleted successfully"})
}

func init() {
	manager.RegisterControllerPlugin(&GoalControllerPlugin{})
}
