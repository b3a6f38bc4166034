// Command healthcheck probes a running gateway and exits 0 when it answers
// GET / with {"Hello": "World"}, 1 otherwise. It is meant for container
// health checks.
//
// Usage:
//
//	healthcheck [-a address] [-t timeout]
//
// The address defaults to HEALTHCHECK_ADDRESS, then SERVER_ADDRESS, then ":8000".
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/adapter"
	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.NewLogger("healthcheck")

	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	address := fs.String("a", defaultAddress(), "gateway base URL or host:port")
	timeout := fs.Duration("t", 3*time.Second, "probe timeout")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	probe, err := adapter.NewHealthProbe(adapter.ProbeConfig{Address: *address, Timeout: *timeout}, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating health probe")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err = probe.Check(ctx); err != nil {
		log.Error().Err(err).Str("address", *address).Msg("gateway is unhealthy")
		return 1
	}

	return 0
}

func defaultAddress() string {
	for _, key := range []string{"HEALTHCHECK_ADDRESS", "SERVER_ADDRESS"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return config.DefaultHTTPAddress
}
