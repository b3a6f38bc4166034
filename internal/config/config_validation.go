// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// normalize trims whitespace around every value, drops blank list entries,
// upper-cases method names and turns a lone "none" origin into an empty
// list. It runs after merging and before validate.
func (cfg *StructuredConfig) normalize() {
	cfg.App.LogLevel = strings.ToLower(strings.TrimSpace(cfg.App.LogLevel))

	cfg.Server.HTTPAddress = strings.TrimSpace(cfg.Server.HTTPAddress)
	cfg.Metrics.Address = strings.TrimSpace(cfg.Metrics.Address)

	for _, group := range []*Group{&cfg.Routes.Auth, &cfg.Routes.Workouts} {
		group.Prefix = strings.TrimSpace(group.Prefix)
		group.Upstream = strings.TrimSpace(group.Upstream)
	}

	cfg.CORS.AllowedOrigins = cleanList(cfg.CORS.AllowedOrigins)
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.EqualFold(cfg.CORS.AllowedOrigins[0], NoOrigins) {
		cfg.CORS.AllowedOrigins = []string{}
	}
	cfg.CORS.AllowedHeaders = cleanList(cfg.CORS.AllowedHeaders)
	cfg.CORS.ExposedHeaders = cleanList(cfg.CORS.ExposedHeaders)
	cfg.CORS.AllowedMethods = cleanList(cfg.CORS.AllowedMethods)
	for i, method := range cfg.CORS.AllowedMethods {
		cfg.CORS.AllowedMethods[i] = strings.ToUpper(method)
	}
}

func cleanList(values []string) []string {
	if values == nil {
		return nil
	}

	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}

	return cleaned
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if err := cfg.Server.validate(cfg.Metrics); err != nil {
		return err
	}

	if err := cfg.Routes.validate(); err != nil {
		return err
	}

	return cfg.CORS.validate()
}

func (s Server) validate(m Metrics) error {
	if s.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	var addr NetAddress
	if err := addr.Set(s.HTTPAddress); err != nil {
		return fmt.Errorf("%w: http address %q: %v", ErrInvalidServerConfigs, s.HTTPAddress, err)
	}

	if m.Address != "" {
		if err := addr.Set(m.Address); err != nil {
			return fmt.Errorf("%w: metrics address %q: %v", ErrInvalidServerConfigs, m.Address, err)
		}
		if m.Address == s.HTTPAddress {
			return fmt.Errorf("%w: metrics address must differ from http address", ErrInvalidServerConfigs)
		}
	}

	if s.RequestTimeout < 0 || s.ReadHeaderTimeout < 0 || s.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (r Routes) validate() error {
	for name, group := range map[string]Group{"auth": r.Auth, "workouts": r.Workouts} {
		if !strings.HasPrefix(group.Prefix, "/") {
			return fmt.Errorf("%w: %s prefix %q must start with /", ErrInvalidRoutesConfigs, name, group.Prefix)
		}

		if group.Upstream == "" {
			continue
		}

		u, err := url.Parse(group.Upstream)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s upstream %q must be an absolute http(s) URL", ErrInvalidRoutesConfigs, name, group.Upstream)
		}
	}

	return nil
}

func (c CORS) validate() error {
	for _, origin := range c.AllowedOrigins {
		if origin == Wildcard {
			if c.Credentials() {
				return fmt.Errorf("%w: wildcard origin cannot be combined with credentials", ErrInvalidCORSConfigs)
			}
			continue
		}

		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: origin %q must be scheme://host[:port]", ErrInvalidCORSConfigs, origin)
		}
	}

	if slices.Contains(c.AllowedMethods, "") || slices.Contains(c.AllowedHeaders, "") {
		return fmt.Errorf("%w: blank method or header", ErrInvalidCORSConfigs)
	}

	if c.MaxAge < 0 {
		return fmt.Errorf("%w: negative max age", ErrInvalidCORSConfigs)
	}

	return nil
}
