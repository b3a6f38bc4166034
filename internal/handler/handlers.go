package handler

import (
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/handler/http"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/metrics"
	"github.com/MKhiriev/go-fit-tracker/internal/upstream"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *chi.Mux
}

// NewHandlers composes the application router: cross-origin policy, the auth
// and workouts route groups, and the root endpoint. registry may be nil to
// run without request metrics.
func NewHandlers(cfg *config.StructuredConfig, registry prometheus.Registerer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	opts := []http.Option{http.WithRequestTimeout(cfg.Server.RequestTimeout)}
	if registry != nil {
		opts = append(opts, http.WithMetrics(metrics.New(registry)))
	}

	h := http.NewHandler(logger, opts...)

	if err := h.ConfigureCORS(cfg.CORS); err != nil {
		return nil, fmt.Errorf("error configuring cors: %w", err)
	}

	groups := []struct {
		name string
		cfg  config.Group
	}{
		{name: "auth", cfg: cfg.Routes.Auth},
		{name: "workouts", cfg: cfg.Routes.Workouts},
	}
	for _, g := range groups {
		routeGroup, err := newRouteGroup(g.name, g.cfg.Upstream, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating %s route group: %w", g.name, err)
		}

		if err = h.MountRouteGroup(g.cfg.Prefix, routeGroup); err != nil {
			return nil, fmt.Errorf("error mounting %s route group: %w", g.name, err)
		}
	}

	if err := h.RegisterHealthEndpoint(); err != nil {
		return nil, fmt.Errorf("error registering health endpoint: %w", err)
	}

	router, err := h.Init()
	if err != nil {
		return nil, fmt.Errorf("error initializing http router: %w", err)
	}

	return &Handlers{HTTP: router}, nil
}

func newRouteGroup(name, upstreamURL string, logger *logger.Logger) (http.RouteGroup, error) {
	if upstreamURL == "" {
		logger.Warn().Str("group", name).Msg("no upstream configured, route group mounted without routes")
		return upstream.Empty(), nil
	}

	target, err := upstream.ParseTarget(upstreamURL)
	if err != nil {
		return nil, err
	}

	return upstream.NewGroup(name, target, logger), nil
}
