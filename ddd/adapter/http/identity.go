package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
)

// extractUserUUID reads the caller identity injected by the gateway after
// it has validated the bearer token. This service does not verify tokens
// itself; a missing identity means the request bypassed the gateway.
func extractUserUUID(ctx *gin.Context) (string, error) {
	userUUID := ctx.GetHeader("X-User-UUID")
	if userUUID == "" {
		return "", errno.ErrUnauthorized
	}
	return userUUID, nil
}

// pathID parses a numeric path parameter.
func pathID(ctx *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, name)
	}
	return id, nil
}
