package http

import (
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/metrics"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type mountedGroup struct {
	prefix string
	group  RouteGroup
}

// Handler collects the configuration of the application router. Configure it
// with ConfigureCORS, MountRouteGroup and RegisterHealthEndpoint, then call
// Init once to build the router. Handler is not safe for concurrent use.
type Handler struct {
	logger   *logger.Logger
	metrics  *metrics.Metrics
	traceIDs *utils.TraceIDGenerator

	requestTimeout time.Duration

	cors   *cors.Cors
	groups []mountedGroup
	health bool

	// err is the first configuration error, reported again by Init.
	err    error
	router *chi.Mux
}

// Option configures optional parts of a Handler.
type Option func(*Handler)

// WithMetrics records request metrics for every request.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// WithRequestTimeout bounds every request context. Zero disables the bound.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = timeout
	}
}

func NewHandler(logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		logger:   logger,
		traceIDs: utils.NewTraceIDGenerator(),
	}

	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}

// ready reports whether Init has already built the router.
func (h *Handler) ready() bool {
	return h.router != nil
}

// fail keeps the first configuration error for Init and returns err.
func (h *Handler) fail(err error) error {
	if h.err == nil {
		h.err = err
	}
	return err
}
