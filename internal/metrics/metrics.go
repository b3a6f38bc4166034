// Package metrics provides Prometheus request metrics for the gateway.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// UnmatchedRoute labels requests that no route pattern matched.
	UnmatchedRoute = "unmatched"

	// OtherMethod labels requests with a non-standard method.
	OtherMethod = "other"
)

// Metrics holds the HTTP collectors registered on one registry.
type Metrics struct {
	namespace        string
	histogramBuckets []float64

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registers the request collectors on registry. It panics if they are
// already registered there.
func New(registry prometheus.Registerer, opts ...Option) *Metrics {
	m := &Metrics{
		namespace:        "fit",
		histogramBuckets: prometheus.DefBuckets,
	}

	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(registry)

	m.requests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route pattern, method and status",
		},
		[]string{"route", "method", "status"},
	)

	m.duration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by route pattern and method",
			Buckets:   m.histogramBuckets,
		},
		[]string{"route", "method"},
	)

	return m
}

// Observe records one finished request.
func (m *Metrics) Observe(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = UnmatchedRoute
	}

	method = methodLabel(method)

	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// methodLabel keeps the method label set closed: clients choose the method
// token freely.
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
		http.MethodConnect, http.MethodTrace:
		return method
	default:
		return OtherMethod
	}
}

// Middleware records every request passing through it. The route label is
// the chi route pattern, so it must run inside a chi router.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		m.Observe(route, r.Method, status, time.Since(start))
	})
}
