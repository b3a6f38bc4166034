// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upstream

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/go-chi/chi/v5"
)

const traceIDHeader = "X-Trace-ID"

// Group is a route group served by a remote service.
type Group struct {
	name   string
	target *url.URL
	proxy  *httputil.ReverseProxy
}

// NewGroup returns a group forwarding requests to target. The inbound path is
// appended to target's path unchanged, so a service mounted at "/auth" still
// sees "/auth/...".
func NewGroup(name string, target *url.URL, log *logger.Logger) *Group {
	g := &Group{
		name:   name,
		target: target,
	}

	g.proxy = &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()

			if traceID, ok := utils.GetTraceIDFromContext(pr.In.Context()); ok {
				pr.Out.Header.Set(traceIDHeader, traceID)
			}
		},
		ModifyResponse: stripCORSHeaders,
		ErrorHandler:   g.handleError,
	}

	log.Info().Str("group", name).Str("upstream", target.String()).Msg("upstream route group created")
	return g
}

// Routes forwards the group root and everything below it.
func (g *Group) Routes(r chi.Router) {
	r.Handle("/", g.proxy)
	r.Handle("/*", g.proxy)
}

// Name returns the group name used in logs.
func (g *Group) Name() string {
	return g.name
}

func (g *Group) handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).
		Str("group", g.name).
		Str("upstream", g.target.Host).
		Msg("upstream request failed")

	utils.WriteError(w, http.StatusBadGateway)
}

// stripCORSHeaders drops the upstream's cross-origin headers. The gateway
// policy has already set its own on the response.
func stripCORSHeaders(resp *http.Response) error {
	for key := range resp.Header {
		if strings.HasPrefix(key, "Access-Control-") {
			resp.Header.Del(key)
		}
	}
	return nil
}

// EmptyGroup is a route group without routes: every path under its prefix
// falls through to the router's not-found handler.
type EmptyGroup struct{}

// Empty returns a group without routes.
func Empty() EmptyGroup {
	return EmptyGroup{}
}

// Routes registers nothing.
func (EmptyGroup) Routes(chi.Router) {}

// ParseTarget parses an upstream base URL.
func ParseTarget(raw string) (*url.URL, error) {
	target, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpstream, err)
	}

	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidUpstream, target.Scheme)
	}

	if target.Host == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidUpstream, raw)
	}

	return target, nil
}
