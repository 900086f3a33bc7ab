package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"docflow/internal/core/domain/model/status"
	"docflow/internal/core/domain/transition"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status change outcomes.
const (
	OutcomeChanged = "changed"
	OutcomeRefused = "refused"
	OutcomeFailed  = "failed"
)

// Metrics exposes Prometheus metrics of the HTTP surface on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	statusChanges   *prometheus.CounterVec
}

// NewMetrics registers the HTTP and status change collectors on a fresh
// registry.
func NewMetrics(namespace string) (*Metrics, error) {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		statusChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "status_changes_total",
				Help:      "Total number of requested package status changes",
			},
			[]string{"target", "outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.requests, m.requestDuration, m.statusChanges} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Middleware records count and latency per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			code := c.Response().Status
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				code = httpErr.Code
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.requests.WithLabelValues(c.Request().Method, route, strconv.Itoa(code)).Inc()
			m.requestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// ObserveStatusChange counts a status change request by its outcome.
func (m *Metrics) ObserveStatusChange(target status.Status, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeChanged
	var changeErr *transition.ChangeStatusError
	switch {
	case err == nil:
	case errors.As(err, &changeErr) && isRefusal(changeErr):
		outcome = OutcomeRefused
	default:
		outcome = OutcomeFailed
	}
	m.statusChanges.WithLabelValues(target.Name(), outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests and for registering process collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
