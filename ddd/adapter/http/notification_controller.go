package http

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/M0nkiiii/Screentime-Management/ddd/application/app"
	"github.com/M0nkiiii/Screentime-Management/pkg/manager"
	"github.com/M0nkiiii/Screentime-Management/pkg/restapi"
)

var (
	notificationControllerOnce sync.Once
	singletonNotificationCtrl  NotificationController
)

// NotificationControllerPlugin registers the notification controller with the shared manager.
type NotificationControllerPlugin struct{}

func (p *NotificationControllerPlugin) Name() string {
	return "notificationController"
}

func (p *NotificationControllerPlugin) MustCreateController() manager.Controller {
	notificationControllerOnce.Do(func() {
		singletonNotificationCtrl = &notificationControllerImpl{
			app: app.DefaultNotificationApp(),
		}
	})
	return singletonNotificationCtrl
}

// NotificationController serves the in-app notification feed.
type NotificationController interface {
	manager.Controller
	List(ctx *gin.Context)
	UnreadCount(ctx *gin.Context)
	MarkAllRead(ctx *gin.Context)
}

type notificationControllerImpl struct {
	manager.Controller
	app app.NotificationApp
}

func (c *notificationControllerImpl) RegisterOpenApi(group *gin.RouterGroup) {
	notifications := group.Group("notifications")
	{
		notifications.GET("/user-notifications", c.List)
		notifications.GET("/unread-count", c.UnreadCount)
		notifications.PUT("/mark-as-read", c.MarkAllRead)
	}
}

func (c *notificationControllerImpl) RegisterInnerApi(group *gin.RouterGroup) {}
func (c *notificationControllerImpl) RegisterDebugApi(group *gin.RouterGroup) {}
func (c *notificationControllerImpl) RegisterOpsApi(group *gin.RouterGroup)   {}

// List returns the user's notifications, newest first.
func (c *notificationControllerImpl) List(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	notifications, err := c.app.ListNotifications(ctx.Request.Context(), userUUID)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, notifications)
}

func (c *notificationControllerImpl) UnreadCount(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	count, err := c.app.UnreadCount(ctx.Request.Context(), userUUID)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, count)
}

// MarkAllRead marks every unread notification of the user as read.
func (c *notificationControllerImpl) MarkAllRead(ctx *gin.Context) {
	userUUID, err := extractUserUUID(ctx)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	if err := c.app.MarkAllRead(ctx.Request.Context(), userUUID); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{"message": "All notifications marked as read"})
}

func init() {
	manager.RegisterControllerPlugin(&NotificationControllerPlugin{})
}
