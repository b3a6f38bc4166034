package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, an empty address or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCORSConfigs indicates an unusable cross-origin policy
	// (for example, a wildcard origin together with credentials).
	ErrInvalidCORSConfigs = errors.New("invalid cors configuration")
	// ErrInvalidRoutesConfigs indicates invalid route group bindings
	// (for example, an upstream that is not an absolute http(s) URL).
	ErrInvalidRoutesConfigs = errors.New("invalid routes configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
