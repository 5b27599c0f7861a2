package manager

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/M0nkiiii/Screentime-Management/pkg/assert"
)

type (
	// ControllerPlugin creates a named controller singleton. Plugins
	// register themselves from init() in the adapter package.
	ControllerPlugin interface {
		Name() string
		MustCreateController() Controller
	}

	// Controller attaches routes to the shared API groups.
	Controller interface {
		RegisterOpenApi(group *gin.RouterGroup)
		RegisterInnerApi(group *gin.RouterGroup)
		RegisterDebugApi(group *gin.RouterGroup)
		RegisterOpsApi(group *gin.RouterGroup)
	}
)

var (
	controllerPlugins = map[string]ControllerPlugin{}
)

// RegisterControllerPlugin registers a controller plugin.
func RegisterControllerPlugin(p ControllerPlugin) {
	if p.Name() == "" {
		panic(fmt.Errorf("%T: empty name", p))
	}
	if existedPlugin, existed := controllerPlugins[p.Name()]; existed {
		panic(fmt.Errorf("%T and %T got same name: %s", p, existedPlugin, p.Name()))
	}
	controllerPlugins[p.Name()] = p
}

// MustInitControllers initialises all registered controllers and attaches routes.
func MustInitControllers(openApiGroup, innerApiGroup, debugApiGroup, opsApiGroup *gin.RouterGroup) {
	for n, p := range controllerPlugins {
		controller := p.MustCreateController()
		assert.NotNil(controller)
		if openApiGroup != nil {
			controller.RegisterOpenApi(openApiGroup)
		}
		if innerApiGroup != nil {
			controller.RegisterInnerApi(innerApiGroup)
		}
		if debugApiGroup != nil {
			controller.RegisterDebugApi(debugApiGroup)
		}
		if opsApiGroup != nil {
			controller.RegisterOpsApi(opsApiGroup)
		}
		log.Infof("Register controller: plugin=%s, controller=%+v", n, controller)
	}
}
