package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "orbit/internal/errors"
	"orbit/internal/logger"
)

// ErrorHandler writes the last error pushed with c.Error when the handler
// chain ended without a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		WriteError(c, c.Errors.Last().Err)
	}
}

// WriteError aborts the chain with the flat JSON body of err. An *AppError
// keeps its status, code and message and its internal cause is logged.
// Anything else is logged and answered with a generic 500.
func WriteError(c *gin.Context, err error) {
	log := logger.Get().With(
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", RequestID(c),
	)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		log.Errorw("unexpected error", "error", err.Error())
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil {
		log.Errorw("app error", "code", appErr.Code, "internal", appErr.Internal.Error())
	}

	c.AbortWithStatusJSON(appErr.StatusCode, appErr)
}
