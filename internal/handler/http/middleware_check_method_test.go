package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newRouteContext() *chi.Context {
	return chi.NewRouteContext()
}

func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Route("/api", func(r chi.Router) {
		r.Post("/items", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "registered GET", method: http.MethodGet, path: "/ping", wantStatus: http.StatusOK},
		{name: "wrong method on top-level route", method: http.MethodPost, path: "/ping", wantStatus: http.StatusNotFound},
		{name: "registered POST in subrouter", method: http.MethodPost, path: "/api/items", wantStatus: http.StatusCreated},
		{name: "wrong method in subrouter", method: http.MethodGet, path: "/api/items", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_DirectCallWritesJSON(t *testing.T) {
	handler := CheckHTTPMethod(buildRouter())

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodDelete, "/ping", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
