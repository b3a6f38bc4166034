package config

import (
	"net/http"
	"time"
)

// Default values applied before any other source is merged.
const (
	DefaultLogLevel          = "info"
	DefaultHTTPAddress       = ":8000"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultAuthPrefix        = "/auth"
	DefaultWorkoutsPrefix    = "/workouts"

	// Wildcard in CORS.AllowedMethods / CORS.AllowedHeaders permits any value.
	Wildcard = "*"

	// NoOrigins as the only CORS.AllowedOrigins entry denies every
	// cross-origin request. An empty list cannot override the defaults.
	NoOrigins = "none"

	traceIDHeader = "X-Trace-ID"
)

// DefaultAllowedOrigins are the browser origins of the local web client.
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}

// Default returns the configuration used when no other source sets a value.
func Default() *StructuredConfig {
	allowCredentials := true

	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
		Routes: Routes{
			Auth:     Group{Prefix: DefaultAuthPrefix},
			Workouts: Group{Prefix: DefaultWorkoutsPrefix},
		},
		CORS: CORS{
			AllowedOrigins:   append([]string(nil), DefaultAllowedOrigins...),
			AllowCredentials: &allowCredentials,
			AllowedMethods:   []string{Wildcard},
			AllowedHeaders:   []string{Wildcard},
			ExposedHeaders:   []string{traceIDHeader},
		},
	}
}

// StandardMethods is what a method wildcard expands to.
var StandardMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}
