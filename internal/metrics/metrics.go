package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	Duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	Uploads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gallery_uploads_total",
		Help: "Stored media uploads by kind",
	}, []string{"kind"})

	Likes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gallery_likes_total",
		Help: "Accepted like requests",
	})
)

func init() {
	prometheus.MustRegister(Requests, Duration, Uploads, Likes)
}

// Middleware records one observation per request, labelled by the matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		Requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		Duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler returns an http.Handler for Prometheus scraping
func Handler() http.Handler {
	return promhttp.Handler()
}
