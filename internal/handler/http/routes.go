package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router from the collected configuration. It returns the
// first configuration error, if any. Once it succeeds the composer is
// frozen: later calls return the same router and configuration calls fail
// with ErrComposerReady.
func (h *Handler) Init() (*chi.Mux, error) {
	if h.ready() {
		return h.router, nil
	}

	if h.err != nil {
		return nil, h.err
	}

	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
	}
	if h.cors != nil {
		router.Use(h.cors.Handler)
	}
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// set before mounting so that route groups inherit them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	if h.health {
		router.Get("/", h.hello)
	}

	for _, mounted := range h.groups {
		router.Route(mounted.prefix, mounted.group.Routes)
	}

	h.router = router
	h.logger.Info().Int("groups", len(h.groups)).Bool("health", h.health).Msg("http router initialized")

	return router, nil
}
