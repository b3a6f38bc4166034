package http

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/go-chi/cors"
)

// ConfigureCORS sets the cross-origin policy applied to every response.
// Allowed origins are echoed back in Access-Control-Allow-Origin, and
// preflight requests are answered without reaching any route group.
// A later call replaces the policy.
func (h *Handler) ConfigureCORS(policy config.CORS) error {
	if h.ready() {
		return ErrComposerReady
	}

	if slices.Contains(policy.AllowedOrigins, config.Wildcard) && policy.Credentials() {
		return h.fail(fmt.Errorf("%w: wildcard origin cannot allow credentials", ErrInvalidCORSPolicy))
	}

	h.cors = cors.New(corsOptions(policy))

	h.logger.Info().
		Strs("origins", policy.AllowedOrigins).
		Strs("methods", policy.AllowedMethods).
		Strs("headers", policy.AllowedHeaders).
		Bool("credentials", policy.Credentials()).
		Msg("cors policy configured")

	return nil
}

func corsOptions(policy config.CORS) cors.Options {
	// the middleware matches methods by name
	methods := policy.AllowedMethods
	if slices.Contains(methods, config.Wildcard) {
		methods = config.StandardMethods
	}

	options := cors.Options{
		AllowedOrigins:   policy.AllowedOrigins,
		AllowedMethods:   methods,
		AllowedHeaders:   policy.AllowedHeaders,
		ExposedHeaders:   policy.ExposedHeaders,
		AllowCredentials: policy.Credentials(),
		MaxAge:           int(policy.MaxAge / time.Second),
	}

	// an empty origin list means "any" to the middleware, here it means "none"
	if len(options.AllowedOrigins) == 0 {
		options.AllowOriginFunc = func(*http.Request, string) bool { return false }
	}

	return options
}
