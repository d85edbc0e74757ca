package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func testRoutes() *http.ServeMux {
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	mux := http.NewServeMux()
	mux.Handle("GET /health", noop)
	mux.Handle("POST /api/cart/add", noop)
	mux.Handle("PATCH /api/cart/{id}", noop)
	mux.Handle("DELETE /api/cart/clear/all", noop)
	mux.Handle("PATCH /api/contact/{id}/status/{status}", noop)

	return mux
}

func TestRouteLabel(t *testing.T) {
	routes := testRoutes()

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/health", "/health"},
		{http.MethodPatch, "/api/cart/5f0c6c43-3b47-4a5e-9a43-6d2f0e3c1a11", "/api/cart/{id}"},
		{http.MethodPatch, "/api/contact/5f0c6c43-3b47-4a5e-9a43-6d2f0e3c1a11/status/read", "/api/contact/{id}/status/{status}"},
		{http.MethodDelete, "/api/cart/clear/all", "/api/cart/clear/all"},
		{http.MethodGet, "/wp-login.php", unmatchedRoute},
		{http.MethodGet, "/.env", unmatchedRoute},
		{http.MethodGet, "/api/cart/add", unmatchedRoute},
		{http.MethodGet, "/x/../health", unmatchedRoute},
		{http.MethodHead, "/health", "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, routeLabel(routes, httptest.NewRequest(tt.method, tt.path, nil)))
		})
	}
}

func TestMiddleware(t *testing.T) {
	handler := Middleware(testRoutes())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	counter := httpRequestsTotal.WithLabelValues("201", http.MethodPost, "/api/cart/add")
	before := testutil.ToFloat64(counter)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/cart/add", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Zero(t, testutil.ToFloat64(httpRequestsInFlight))
}

func TestMiddlewareUnknownPaths(t *testing.T) {
	handler := Middleware(testRoutes())(http.NotFoundHandler())

	counter := httpRequestsTotal.WithLabelValues("404", http.MethodGet, unmatchedRoute)
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/a", "/b/c", "/phpmyadmin/index.php"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}
