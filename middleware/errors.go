package middleware

import (
	"github.com/gin-gonic/gin"

	"food-hub-api/apierrors"
)

// Abort records an error on the request and stops the handler chain. The
// response body is written later by ErrorHandler.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler is the single error-translation layer: every error attached
// during the request is reduced to one JSON {"msg": ...} response with the
// status matching the error kind. Must be registered before any route.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		status, msg := apierrors.Translate(c.Errors[0].Err)
		c.JSON(status, gin.H{"msg": msg})
	}
}
