package middleware

import (
	"errors"
	"net/http"

	"realestate-form-intake/internal/delivery/http/response"
	"realestate-form-intake/pkg/apperror"
	"realestate-form-intake/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InternalErrorMessage is the only detail a client ever sees for a 5xx.
const InternalErrorMessage = "An unexpected error occurred. Please try again later."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			// SECURITY: Never expose internal error details to clients.
			logger.Log.Error("request failed",
				"request_id", c.GetString(RequestIDKey),
				"method", c.Request.Method,
				"path", c.FullPath(),
				"status", appErr.Code,
				"error", appErr.Err)
			response.Error(c, appErr.Code, appErr.Message, InternalErrorMessage)
			return
		}

		if len(appErr.Fields) > 0 {
			response.ValidationError(c, appErr.Code, appErr.Message, appErr.Fields)
			return
		}
		response.Error(c, appErr.Code, appErr.Message, nil)
	}
}

// Recovery turns a panic into the same 500 body as any other unexpected error.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("panic recovered",
			"request_id", c.GetString(RequestIDKey),
			"path", c.FullPath(),
			"panic", recovered)
		response.Error(c, http.StatusInternalServerError, "Internal server error", InternalErrorMessage)
		c.Abort()
	})
}
