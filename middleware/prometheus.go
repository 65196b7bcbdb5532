package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// 两个应用共用指标名，按 app 标签区分
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blackout",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"app", "method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "blackout",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.025, 0.1, 0.5, 1, 2.5},
		},
		[]string{"app", "method", "path"},
	)

	httpInflight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "blackout",
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being served",
		},
		[]string{"app"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, httpInflight)
}

// Prometheus 请求数、耗时和并发数，path 取路由模板
func Prometheus(app string) gin.HandlerFunc {
	inflight := httpInflight.WithLabelValues(app)
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" || path == "/metrics" {
			c.Next()
			return
		}

		inflight.Inc()
		start := time.Now()
		c.Next()
		inflight.Dec()

		method := c.Request.Method
		httpRequestsTotal.WithLabelValues(app, method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(app, method, path).Observe(time.Since(start).Seconds())
	}
}
