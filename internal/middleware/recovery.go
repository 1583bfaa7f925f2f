package middleware

import (
	"fmt"

	"civic-notify/pkg/log"
	"civic-notify/pkg/response"

	"github.com/gin-gonic/gin"
)

func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				if errVal, ok := err.(error); ok {
					response.Error(c, errVal)
				} else {
					response.Error(c, fmt.Errorf("%v", err))
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
