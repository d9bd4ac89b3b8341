package web

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_Routing(t *testing.T) {
	t.Parallel()

	handler := NewHandler()

	var scenarios = []struct {
		method string
		path   string
		code   int
		body   string
	}{
		{"GET", "/health", 200, `{"status":"ok"}`},
		{"GET", "/", 404, `{"error":"not_found"}`},
		{"POST", "/health", 404, `{"error":"not_found"}`},
		{"PUT", "/health", 404, `{"error":"not_found"}`},
		{"GET", "/health/extra", 404, `{"error":"not_found"}`},
		{"GET", "/healthz", 404, `{"error":"not_found"}`},
	}

	for _, scenario := range scenarios {
		req, err := http.NewRequest(scenario.method, "http://example.com"+scenario.path, nil)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, scenario.code, recorder.Code, "%s %s", scenario.method, scenario.path)
		assert.Equal(t, scenario.body, recorder.Body.String(), "%s %s", scenario.method, scenario.path)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		length, err := strconv.Atoi(recorder.Header().Get("Content-Length"))
		require.NoError(t, err)
		assert.Equal(t, recorder.Body.Len(), length)
	}
}

func TestNewHandler_RepeatedRequestsAreIdentical(t *testing.T) {
	t.Parallel()

	handler := NewHandler()

	first := httptest.NewRecorder()
	second := httptest.NewRecorder()
	for _, recorder := range []*httptest.ResponseRecorder{first, second} {
		req, err := http.NewRequest("GET", "http://example.com/health", nil)
		require.NoError(t, err)
		handler.ServeHTTP(recorder, req)
	}

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
	assert.Equal(t, first.Header(), second.Header())
}
