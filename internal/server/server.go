package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/handler"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
)

type server struct {
	httpServer    *httpServer
	metricsServer *httpServer

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer prepares the API listener for handlers and, when metricsCfg has
// an address, a metrics listener exposing gatherer.
func NewServer(handlers *handler.Handlers, cfg config.Server, metricsCfg config.Metrics, gatherer prometheus.Gatherer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer("api", handlers.HTTP, cfg.HTTPAddress, cfg.ReadHeaderTimeout, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	if metricsCfg.Address != "" && gatherer != nil {
		servers.metricsServer = newHTTPServer("metrics", newMetricsRouter(gatherer), metricsCfg.Address, cfg.ReadHeaderTimeout, logger)
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Error running server")
	}
}

func (s *server) Shutdown() {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	for _, srv := range s.started() {
		srv.Shutdown(ctx)
	}
}

// run serves until ctx is done, then shuts every listener down.
func (s *server) run(ctx context.Context) error {
	servers := s.configured()
	if len(servers) == 0 {
		return errors.New("no servers to run")
	}

	for _, srv := range servers {
		if err := srv.listen(); err != nil {
			for _, bound := range s.started() {
				bound.listener.Close()
			}
			return err
		}
	}

	for _, srv := range servers {
		s.logger.Info().Str("server", srv.name).Msg("Launching HTTP server")
		go srv.RunServer()
	}

	<-ctx.Done()

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

func (s *server) configured() []*httpServer {
	servers := make([]*httpServer, 0, 2)
	for _, srv := range []*httpServer{s.httpServer, s.metricsServer} {
		if srv != nil {
			servers = append(servers, srv)
		}
	}
	return servers
}

// started returns the listeners that are bound.
func (s *server) started() []*httpServer {
	servers := make([]*httpServer, 0, 2)
	for _, srv := range s.configured() {
		if srv.listener != nil {
			servers = append(servers, srv)
		}
	}
	return servers
}
