package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	httphandler "github.com/MKhiriev/go-fit-tracker/internal/handler/http"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/upstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

// newTestConfig returns the default configuration, as loaded with no
// environment, flags or file.
func newTestConfig() *config.StructuredConfig {
	return config.Default()
}

func serve(t *testing.T, h *Handlers, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	require.NotNil(t, h)
	rr := httptest.NewRecorder()
	h.HTTP.ServeHTTP(rr, req)
	return rr
}

// TestNewHandlers_Defaults verifies the composed router with default
// configuration: root endpoint, empty route groups, default CORS policy.
func TestNewHandlers_Defaults(t *testing.T) {
	h, err := NewHandlers(newTestConfig(), nil, newTestLogger())
	require.NoError(t, err)

	root := httptest.NewRequest(http.MethodGet, "/", nil)
	root.Header.Set("Origin", "http://localhost:3000")
	rr := serve(t, h, root)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"Hello":"World"}`, rr.Body.String())
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))

	for _, target := range []string{"/auth/login", "/workouts/1", "/other"} {
		rr = serve(t, h, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code, target)
	}
}

// TestNewHandlers_NoHTTPAddress verifies that a config without an HTTP
// address produces no handlers.
func TestNewHandlers_NoHTTPAddress(t *testing.T) {
	cfg := newTestConfig()
	cfg.Server.HTTPAddress = ""

	h, err := NewHandlers(cfg, nil, newTestLogger())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

// TestNewHandlers_ProxiesToUpstreams verifies that configured upstreams
// receive the requests of their group with path and trace id preserved.
func TestNewHandlers_ProxiesToUpstreams(t *testing.T) {
	newUpstream := func(name string) *httptest.Server {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{
				"service":  name,
				"path":     r.URL.Path,
				"trace_id": r.Header.Get("X-Trace-ID"),
			})
		}))
		t.Cleanup(srv.Close)
		return srv
	}
	auth := newUpstream("auth")
	workouts := newUpstream("workouts")

	cfg := newTestConfig()
	cfg.Routes.Auth.Upstream = auth.URL
	cfg.Routes.Workouts.Upstream = workouts.URL

	h, err := NewHandlers(cfg, nil, newTestLogger())
	require.NoError(t, err)

	tests := []struct {
		target      string
		wantService string
	}{
		{target: "/auth/login", wantService: "auth"},
		{target: "/workouts/7/sets", wantService: "workouts"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.Header.Set("X-Trace-ID", "trace-"+tt.wantService)

			rr := serve(t, h, req)
			require.Equal(t, http.StatusOK, rr.Code)

			var got map[string]string
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
			assert.Equal(t, tt.wantService, got["service"])
			assert.Equal(t, tt.target, got["path"])
			assert.Equal(t, "trace-"+tt.wantService, got["trace_id"])
			assert.Equal(t, "trace-"+tt.wantService, rr.Header().Get("X-Trace-ID"))
		})
	}
}

// TestNewHandlers_ConfigurationErrors verifies that every composition
// failure aborts startup with the matching error.
func TestNewHandlers_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.StructuredConfig)
		wantErr error
	}{
		{
			name:    "same prefix twice",
			mutate:  func(cfg *config.StructuredConfig) { cfg.Routes.Workouts.Prefix = "/auth" },
			wantErr: httphandler.ErrDuplicatePrefix,
		},
		{
			name:    "overlapping prefixes",
			mutate:  func(cfg *config.StructuredConfig) { cfg.Routes.Workouts.Prefix = "/auth/workouts" },
			wantErr: httphandler.ErrOverlappingPrefix,
		},
		{
			name:    "malformed prefix",
			mutate:  func(cfg *config.StructuredConfig) { cfg.Routes.Auth.Prefix = "/{auth}" },
			wantErr: httphandler.ErrMalformedPrefix,
		},
		{
			name:    "invalid upstream",
			mutate:  func(cfg *config.StructuredConfig) { cfg.Routes.Auth.Upstream = "auth-service" },
			wantErr: upstream.ErrInvalidUpstream,
		},
		{
			name: "wildcard origin with credentials",
			mutate: func(cfg *config.StructuredConfig) {
				cfg.CORS.AllowedOrigins = []string{config.Wildcard}
			},
			wantErr: httphandler.ErrInvalidCORSPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			tt.mutate(cfg)

			h, err := NewHandlers(cfg, nil, newTestLogger())

			assert.Nil(t, h)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestNewHandlers_RegistersMetrics verifies that request collectors are
// registered on the given registry.
func TestNewHandlers_RegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	h, err := NewHandlers(newTestConfig(), registry, newTestLogger())
	require.NoError(t, err)
	serve(t, h, httptest.NewRequest(http.MethodGet, "/", nil))

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "fit_http_requests_total")
}

// TestNewHandlers_GatewayCORSPolicyWinsOverUpstream verifies that only the
// gateway's cross-origin headers reach the client on proxied responses.
func TestNewHandlers_GatewayCORSPolicyWinsOverUpstream(t *testing.T) {
	workouts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Write([]byte("ok"))
	}))
	defer workouts.Close()

	cfg := newTestConfig()
	cfg.Routes.Workouts.Upstream = workouts.URL

	h, err := NewHandlers(cfg, nil, newTestLogger())
	require.NoError(t, err)

	tests := []struct {
		origin string
		want   []string
	}{
		{origin: "http://localhost:3000", want: []string{"http://localhost:3000"}},
		{origin: "http://evil.example", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/workouts/x", nil)
			req.Header.Set("Origin", tt.origin)

			rr := serve(t, h, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.want, rr.Header().Values("Access-Control-Allow-Origin"))
		})
	}
}

// TestNewHandlers_NoOriginsDeniesCrossOrigin verifies the deny-all policy
// produced by the "none" origins setting.
func TestNewHandlers_NoOriginsDeniesCrossOrigin(t *testing.T) {
	cfg := newTestConfig()
	cfg.CORS.AllowedOrigins = []string{}

	h, err := NewHandlers(cfg, nil, newTestLogger())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := serve(t, h, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

// TestNewHandlers_MethodLabelIsBounded verifies that arbitrary request
// methods do not create new metric series.
func TestNewHandlers_MethodLabelIsBounded(t *testing.T) {
	registry := prometheus.NewRegistry()

	h, err := NewHandlers(newTestConfig(), registry, newTestLogger())
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		serve(t, h, httptest.NewRequest("X"+strconv.Itoa(i), "/", nil))
	}

	count, err := testutil.GatherAndCount(registry, "fit_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
