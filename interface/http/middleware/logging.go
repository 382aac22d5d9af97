package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vero4ka/botutils/pkg/logger"
)

// Logging writes one access record per request: error level for 5xx,
// warn for 4xx, info otherwise.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		requestID := logger.GetRequestID(c.Request.Context())

		log.LogAttrs(c.Request.Context(), levelForStatus(status), "HTTP request completed",
			logger.HTTPFields(
				requestID,
				method,
				path,
				c.ClientIP(),
				status,
				time.Since(start).Milliseconds(),
				int(c.Request.ContentLength),
				c.Writer.Size(),
			),
		)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
