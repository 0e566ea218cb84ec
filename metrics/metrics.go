// Package metrics counts endpoint calls and errors with Prometheus and
// optionally rate limits requests.
package metrics

import (
	"net/http"

	"TaskTrackerService/response"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Metrics holds the counters shared by every endpoint.
type Metrics struct {
	EndpointCalls *prometheus.CounterVec
	Errors        *prometheus.CounterVec
	limiter       *rate.Limiter
}

// Option configures Metrics.
type Option func(*Metrics)

// WithRateLimit makes Wrap reject requests above limit events per second
// with the given burst. A limit of zero or less leaves requests unlimited.
func WithRateLimit(limit float64, burst int) Option {
	return func(m *Metrics) {
		if limit > 0 {
			m.limiter = rate.NewLimiter(rate.Limit(limit), burst)
		}
	}
}

// New creates the counters and registers them on reg.
func New(reg prometheus.Registerer, opts ...Option) *Metrics {
	m := &Metrics{
		EndpointCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tasks_endpoint_calls_total",
			Help: "Total number of calls per endpoint.",
		}, []string{"endpoint"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tasks_errors_total",
			Help: "Total number of error responses per endpoint.",
		}, []string{"endpoint"}),
	}
	for _, opt := range opts {
		opt(m)
	}
	reg.MustRegister(m.EndpointCalls, m.Errors)
	return m
}

// Error records an error response on endpoint.
func (m *Metrics) Error(endpoint string) {
	m.Errors.WithLabelValues(endpoint).Inc()
}

// Wrap counts every call to next under endpoint and applies the rate limiter.
// Requests refused by the limiter get 429 and count as errors.
func (m *Metrics) Wrap(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		m.EndpointCalls.WithLabelValues(endpoint).Inc()
		if m.limiter != nil && !m.limiter.Allow() {
			m.Error(endpoint)
			_ = response.WriteError(res, http.StatusTooManyRequests, "The API is at capacity, try again later.")
			return
		}
		next(res, req)
	}
}
