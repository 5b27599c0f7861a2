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
	taskControllerOnce sync.Once
	singletonTaskCtrl  TaskController
)

// TaskControllerPlugin registers the task controller with the shared manager.
type TaskControllerPlugin struct{}

func (p *TaskControllerPlugin) Name() string {
	return "taskController"
}

func (p *TaskControllerPlugin) MustCreateController() manager.Controller {
	taskControllerOnce.Do(func() {
		singletonTaskCtrl = &taskControllerImpl{
			app: app.DefaultTaskApp(),
		}
	})
	return singletonTaskCtrl
}

// TaskController serves scheduled one-off tasks.
type TaskController interface {
	manager.Controller
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	Complete(ctx *gin.Context)
}

type taskControllerImpl struct {
	manager.Controller
	app app.TaskApp
}

func (c *taskControllerImpl) RegisterOpenApi(group *gin.RouterGroup) {
	tasks := group.Group("tasks")
	{
		tasks.POST("/add", c.Create)
		tasks.GET("/user-tasks", c.List)
		tasks.PUT("/mark-completed/:id", c.Complete)
	}
}

func (c *taskControllerImpl) RegisterInnerApi(group *gin.RouterGroup) {}
func (c *taskControllerImpl) RegisterDebugApi(group *gin.RouterGroup) {}
func (c *taskControllerImpl) RegisterOpsApi(group *gin.RouterGroup)   {}

func (c *taskControllerImpl) Create(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	var req cqe.CreateTaskReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "body"))
		return
	}
	task, err := c.app.Create(ctx.Request.Context(), userUUID, &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Created(ctx, task)
}

func (c *taskControllerImpl) List(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	tasks, err := c.app.List(ctx.Request.Context(), userUUID)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, tasks)
}

func (c *taskControllerImpl) Complete(ctx *gin.Context) {
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
	task, err := c.app.Complete(ctx.Request.Context(), id, userUUID)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{
		"message": "Task marked as completed",
		"task":    task,
	})
}

func init() {
	manager.RegisterControllerPlugin(&TaskControllerPlugin{})
}
