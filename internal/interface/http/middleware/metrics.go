package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/xiebiao/bookcollection/pkg/metrics"
)

// Metrics HTTP指标中间件
// path标签使用路由模板（/api/BookCollection/books/:id），未匹配的路由记为unmatched，
// 避免把图书ID写进标签导致基数膨胀
func Metrics() gin.HandlerFunc {
	metrics.InitMetrics()

	return func(c *gin.Context) {
		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		start := time.Now()

		defer func() {
			metrics.DecGauge(metrics.HTTPRequestsInProgress)

			path := c.FullPath()
			if path == "" {
				path = "unmatched"
			}
			metrics.IncCounterVec(metrics.HTTPRequestsTotal, prometheus.Labels{
				"method": c.Request.Method,
				"path":   path,
				"status": strconv.Itoa(c.Writer.Status()),
			})
			metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, prometheus.Labels{
				"method": c.Request.Method,
				"path":   path,
			}, time.Since(start).Seconds())
		}()

		c.Next()
	}
}
