package middleware

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
)

var httpRequestsInFlight atomic.Int64

func init() {
	metrics.NewGauge(`http_requests_in_flight`, func() float64 {
		return float64(httpRequestsInFlight.Load())
	})
}

// Metrics records request counts and latency labelled by route template,
// so /deliveries/:recipient_id stays a single series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Add(1)
		defer httpRequestsInFlight.Add(-1)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		route = labelValue(route)
		method := labelValue(c.Request.Method)
		status := strconv.Itoa(c.Writer.Status())

		metrics.GetOrCreateCounter(`http_requests_total{handler="` + route + `",method="` + method + `",status="` + status + `"}`).Inc()
		metrics.GetOrCreateHistogram(`http_request_duration_seconds{handler="` + route + `",method="` + method + `"}`).
			Update(time.Since(start).Seconds())
	}
}

func labelValue(s string) string {
	return strings.ReplaceAll(s, `"`, `_`)
}
