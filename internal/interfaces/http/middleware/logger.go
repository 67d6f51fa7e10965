package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"mise.backend/pkg/logger"
)

var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// LoggerMiddleware logs HTTP requests using the structured logger
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if quietPaths[path] {
			return
		}
		if raw != "" {
			path = path + "?" + raw
		}

		// request_id and subject are read from the request context
		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}
