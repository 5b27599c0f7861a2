package manager

import (
	"github.com/gin-gonic/gin"
)

// RegisterAllRoutes attaches every registered controller plugin to the
// router. This service only uses controller plugins; there are no
// component or service plugins.
func RegisterAllRoutes(router *gin.Engine) {
	openApiGroup := router.Group("/api")
	innerApiGroup := router.Group("/api")
	debugApiGroup := router.Group("/debug")
	opsApiGroup := router.Group("/ops")

	MustInitControllers(openApiGroup, innerApiGroup, debugApiGroup, opsApiGroup)
}
