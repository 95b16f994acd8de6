// Package middleware provides the gin middleware chain of the API.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"salestrack/internal/core/apperror"
	"salestrack/pkg/logger"
)

// Recovery turns a handler panic into INTERNAL_ERROR. The stack trace is logged only.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.Error(c.Request.Context(), "panic recovered",
				"panic", rec,
				"route", c.FullPath(),
				"stack", string(debug.Stack()),
			)
			_ = c.Error(apperror.NewInternal(fmt.Errorf("panic: %v", rec)))
			c.Abort()
		}()
		c.Next()
	}
}
