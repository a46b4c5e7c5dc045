package web

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all HTTP- and catalog-related metrics.
type Metrics struct {
	requestsTotal *prometheus.CounterVec
	requestDur    *prometheus.HistogramVec
	scanDur       prometheus.Histogram
	uploadsTotal  *prometheus.CounterVec
}

// NewMetrics creates and registers the foliod metrics on reg. Passing nil
// registers on the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foliod_http_requests_total",
			Help: "Total HTTP requests labeled by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		requestDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "foliod_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds labeled by method and route.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "route"}),
		scanDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "foliod_catalog_scan_duration_seconds",
			Help:    "Duration of one full catalog scan-and-project pass.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		}),
		uploadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foliod_uploads_total",
			Help: "Upload attempts labeled by result (accepted or rejected).",
		}, []string{"result"}),
	}

	reg.MustRegister(m.requestsTotal, m.requestDur, m.scanDur, m.uploadsTotal)
	return m
}

// Middleware returns an Echo middleware that records request metrics. Routes
// are recorded by their registered pattern, not the raw URI, so wildcard
// file paths do not explode label cardinality.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "/"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.requestsTotal.WithLabelValues(method, route, status).Inc()
			m.requestDur.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// ObserveScan records the duration of one catalog scan pass.
func (m *Metrics) ObserveScan(start time.Time) {
	m.scanDur.Observe(time.Since(start).Seconds())
}

// CountUpload records an upload attempt outcome.
func (m *Metrics) CountUpload(accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	m.uploadsTotal.WithLabelValues(result).Inc()
}
