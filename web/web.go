package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewHandler builds the request router. GET /health is the only route;
// requests for any other path or method get the JSON not found response,
// including gorilla's own not-found and method-not-allowed branches.
func NewHandler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(NotFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(NotFoundHandler)
	return router
}
