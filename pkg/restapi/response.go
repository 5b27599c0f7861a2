package restapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
	"github.com/M0nkiiii/Screentime-Management/pkg/logger"
)

// Success writes data with a 200 status.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Created writes data with a 201 status.
func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, data)
}

// Failed maps a business error to an HTTP status and a terse error body.
// Internal detail stays in the logs; clients only see the code's message.
func Failed(ctx *gin.Context, err error) {
	FailedWithStatus(ctx, err, 0)
}

// FailedWithStatus is Failed with an explicit status override.
func FailedWithStatus(ctx *gin.Context, err error, status int) {
	code := errno.ErrUnknown
	message := code.Message

	var bizErr errno.BizError
	switch {
	case errors.As(err, &bizErr):
		code = bizErr.Errno()
		message = bizErr.Message()
	default:
		var e *errno.Errno
		if errors.As(err, &e) {
			code = e
			message = e.Message
		}
	}

	if status == 0 {
		status = httpStatus(code)
	}
	if status >= http.StatusInternalServerError {
		logger.WithContext(ctx.Request.Context()).Errorf("request failed path=%s code=%d error=%v",
			ctx.FullPath(), code.Code, err)
		// Never leak internals on 5xx.
		message = errno.ErrInternalServer.Message
	}

	ctx.JSON(status, gin.H{"error": message})
}

func httpStatus(e *errno.Errno) int {
	switch e {
	case errno.ErrParameterInvalid:
		return http.StatusBadRequest
	case errno.ErrUnauthorized:
		return http.StatusUnauthorized
	case errno.ErrForbidden:
		return http.StatusForbidden
	case errno.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
