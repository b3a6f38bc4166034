package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/metrics"
	"github.com/MKhiriev/go-fit-tracker/internal/mock"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// routeGroupFunc adapts a function to RouteGroup for tests that need real routes.
type routeGroupFunc func(r chi.Router)

func (f routeGroupFunc) Routes(r chi.Router) { f(r) }

func echoGroup(name string) RouteGroup {
	return routeGroupFunc(func(r chi.Router) {
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(name + ":" + r.URL.Path))
		})
	})
}

// newComposedRouter builds the router the way the composition root does,
// with the default cross-origin policy.
func newComposedRouter(t *testing.T, auth, workouts RouteGroup, opts ...Option) *chi.Mux {
	t.Helper()

	h := NewHandler(logger.Nop(), opts...)
	require.NoError(t, h.ConfigureCORS(config.Default().CORS))
	require.NoError(t, h.MountRouteGroup("/auth", auth))
	require.NoError(t, h.MountRouteGroup("/workouts", workouts))
	require.NoError(t, h.RegisterHealthEndpoint())

	router, err := h.Init()
	require.NoError(t, err)
	return router
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// GET /
// ─────────────────────────────────────────────

func TestRoot_HelloWorld(t *testing.T) {
	router := newComposedRouter(t, echoGroup("auth"), echoGroup("workouts"))

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"Hello": "World"}`, rr.Body.String())
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"), "no Origin, no CORS headers")
	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

func TestRoot_WrongMethod(t *testing.T) {
	router := newComposedRouter(t, echoGroup("auth"), echoGroup("workouts"))

	rr := serve(router, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rr.Body.String())
}

func TestRoot_NotRegistered(t *testing.T) {
	h := NewHandler(logger.Nop())
	router, err := h.Init()
	require.NoError(t, err)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// Route groups
// ─────────────────────────────────────────────

func TestRouteGroups_Dispatch(t *testing.T) {
	router := newComposedRouter(t, echoGroup("auth"), echoGroup("workouts"))

	tests := []struct {
		target   string
		wantCode int
		wantBody string
	}{
		{target: "/auth/login", wantCode: http.StatusOK, wantBody: "auth:/auth/login"},
		{target: "/workouts/42", wantCode: http.StatusOK, wantBody: "workouts:/workouts/42"},
		{target: "/unknown", wantCode: http.StatusNotFound, wantBody: `{"detail":"Not Found"}`},
		{target: "/authx", wantCode: http.StatusNotFound, wantBody: `{"detail":"Not Found"}`},
		{target: "/api/workouts", wantCode: http.StatusNotFound, wantBody: `{"detail":"Not Found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr := serve(router, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestRouteGroups_RoutesCalledOnceOnInit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockRouteGroup(ctrl)
	workouts := mock.NewMockRouteGroup(ctrl)

	auth.EXPECT().Routes(gomock.Any()).Times(1)
	workouts.EXPECT().Routes(gomock.Any()).Times(1)

	h := NewHandler(logger.Nop())
	require.NoError(t, h.MountRouteGroup("/auth", auth))
	require.NoError(t, h.MountRouteGroup("/workouts", workouts))

	first, err := h.Init()
	require.NoError(t, err)
	second, err := h.Init()
	require.NoError(t, err)

	assert.Same(t, first, second, "Init is idempotent")
}

func TestRouteGroups_EmptyGroupAnswersNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	workouts := mock.NewMockRouteGroup(ctrl)
	workouts.EXPECT().Routes(gomock.Any())

	router := newComposedRouter(t, echoGroup("auth"), workouts)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/workouts/anything", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rr.Body.String())
}

func TestRouteGroups_MethodNotAllowedInsideGroup(t *testing.T) {
	router := newComposedRouter(t, echoGroup("auth"), echoGroup("workouts"))

	rr := serve(router, httptest.NewRequest(http.MethodDelete, "/auth/session", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rr.Body.String())
}

func TestRouteGroups_PanicRecovered(t *testing.T) {
	panicking := routeGroupFunc(func(r chi.Router) {
		r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
			panic("workout service bug")
		})
	})
	router := newComposedRouter(t, echoGroup("auth"), panicking)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/workouts/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRouteGroups_RequestTimeout(t *testing.T) {
	slow := routeGroupFunc(func(r chi.Router) {
		r.Get("/slow", func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
	})
	router := newComposedRouter(t, echoGroup("auth"), slow, WithRequestTimeout(20*time.Millisecond))

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/workouts/slow", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
}

func TestRouteGroups_Metrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	router := newComposedRouter(t, echoGroup("auth"), echoGroup("workouts"), WithMetrics(metrics.New(registry)))

	serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/auth/session", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/nope", nil))

	expected := `
# HELP fit_http_requests_total Total number of HTTP requests by route pattern, method and status
# TYPE fit_http_requests_total counter
fit_http_requests_total{method="GET",route="/",status="200"} 1
fit_http_requests_total{method="GET",route="/auth/*",status="200"} 2
fit_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "fit_http_requests_total"))
}

// ─────────────────────────────────────────────
// Composer state
// ─────────────────────────────────────────────

func TestInit_ReturnsFirstConfigurationError(t *testing.T) {
	h := NewHandler(logger.Nop())
	_ = h.MountRouteGroup("/auth", echoGroup("auth"))
	_ = h.MountRouteGroup("/auth", echoGroup("again"))

	router, err := h.Init()

	assert.Nil(t, router)
	assert.ErrorIs(t, err, ErrDuplicatePrefix)
	assert.False(t, h.ready())
}

func TestInit_FreezesComposer(t *testing.T) {
	h := NewHandler(logger.Nop())
	_, err := h.Init()
	require.NoError(t, err)

	assert.ErrorIs(t, h.ConfigureCORS(config.Default().CORS), ErrComposerReady)
	assert.ErrorIs(t, h.MountRouteGroup("/auth", echoGroup("auth")), ErrComposerReady)
	assert.ErrorIs(t, h.RegisterHealthEndpoint(), ErrComposerReady)
}

func TestRegisterHealthEndpoint_Twice(t *testing.T) {
	h := NewHandler(logger.Nop())

	require.NoError(t, h.RegisterHealthEndpoint())
	assert.ErrorIs(t, h.RegisterHealthEndpoint(), ErrHealthAlreadyRegistered)
}
