// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-fit-tracker gateway. It is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the log level.
	App App `envPrefix:"APP_"`

	// Server holds the API listener address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Metrics holds the Prometheus listener settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Routes binds the auth and workouts route groups to prefixes and,
	// optionally, to the upstream services that implement them.
	Routes Routes `envPrefix:"ROUTES_"`

	// CORS is the cross-origin policy applied to every response.
	CORS CORS `envPrefix:"CORS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is the minimum zerolog level emitted ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the API listener.
type Server struct {
	// HTTPAddress is the TCP address the API listens on, in "host:port"
	// format; the host may be empty to listen on all interfaces.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request's context. Zero disables it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReadHeaderTimeout limits how long the server waits for request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Metrics holds settings of the separate Prometheus listener.
type Metrics struct {
	// Address is the "host:port" serving GET /metrics. Empty disables it.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Routes holds the bindings of both route groups.
type Routes struct {
	Auth     Group `envPrefix:"AUTH_"`
	Workouts Group `envPrefix:"WORKOUTS_"`
}

// Group binds one route group to its URL prefix.
type Group struct {
	// Prefix is the path under which the group is mounted (e.g. "/auth").
	// Env: ROUTES_<GROUP>_PREFIX
	Prefix string `env:"PREFIX"`

	// Upstream is the base URL of the service implementing the group.
	// Empty mounts the group without routes.
	// Env: ROUTES_<GROUP>_UPSTREAM
	Upstream string `env:"UPSTREAM"`
}

// CORS is the cross-origin resource sharing policy. "*" in AllowedMethods or
// AllowedHeaders means "permit any".
type CORS struct {
	// AllowedOrigins lists origins granted access. A lone "none" denies
	// every cross-origin request.
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`

	// AllowCredentials enables Access-Control-Allow-Credentials. A nil value
	// means "not configured" so that an explicit false survives merging.
	// Env: CORS_ALLOW_CREDENTIALS
	AllowCredentials *bool `env:"ALLOW_CREDENTIALS"`

	// AllowedMethods lists methods permitted for cross-origin requests.
	// Env: CORS_ALLOWED_METHODS
	AllowedMethods []string `env:"ALLOWED_METHODS"`

	// AllowedHeaders lists request headers permitted for cross-origin requests.
	// Env: CORS_ALLOWED_HEADERS
	AllowedHeaders []string `env:"ALLOWED_HEADERS"`

	// ExposedHeaders lists response headers readable by browser scripts.
	// Env: CORS_EXPOSED_HEADERS
	ExposedHeaders []string `env:"EXPOSED_HEADERS"`

	// MaxAge is how long browsers may cache a preflight result. Zero leaves
	// the header out.
	// Env: CORS_MAX_AGE
	MaxAge time.Duration `env:"MAX_AGE"`
}

// Credentials reports whether credentials sharing is enabled.
func (c CORS) Credentials() bool {
	return c.AllowCredentials != nil && *c.AllowCredentials
}

// GetStructuredConfig loads, merges, and validates the gateway configuration
// from all sources in the following priority order (later sources override
// earlier non-empty fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (os.Args)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
