package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "user-address-service/internal/transport/http/response"
)

// Recovery turns panics into a 500 envelope and logs the stack.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				if l != nil {
					l.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", c.Request.URL.Path),
						zap.Stack("stack"),
					)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp.Err("Internal Server Error"))
			}
		}()
		c.Next()
	}
}
