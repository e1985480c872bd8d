package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockServer creates an httptest.Server with common test patterns.
// It provides a fluent API for setting up expected request verification
// and response configuration.
type mockServer struct {
	t            *testing.T
	server       *httptest.Server
	handler      http.HandlerFunc
	routes       map[string]http.HandlerFunc
	expectPath   string
	expectMeth   string
	expectHeader map[string]string
}

// newMockServer creates a new mock server builder.
// Call .Build() to create the actual httptest.Server.
func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	return &mockServer{t: t, routes: map[string]http.HandlerFunc{}, expectHeader: map[string]string{}}
}

// ExpectPath sets the expected request path and verifies it in the handler.
func (m *mockServer) ExpectPath(path string) *mockServer {
	m.expectPath = path
	return m
}

// ExpectMethod sets the expected HTTP method and verifies it in the handler.
func (m *mockServer) ExpectMethod(method string) *mockServer {
	m.expectMeth = method
	return m
}

// ExpectGET is a shorthand for ExpectMethod(http.MethodGet).
func (m *mockServer) ExpectGET() *mockServer {
	return m.ExpectMethod(http.MethodGet)
}

// ExpectHeader verifies a request header on every request.
func (m *mockServer) ExpectHeader(name, value string) *mockServer {
	m.expectHeader[name] = value
	return m
}

// Handler sets a custom handler function. The function receives the writer
// and request after path/method verification has passed.
func (m *mockServer) Handler(h func(w http.ResponseWriter, r *http.Request)) *mockServer {
	m.handler = h
	return m
}

// Route registers a handler for one method and path. When any route is set,
// requests that match none of them get a 404 and fail the test.
func (m *mockServer) Route(method, path string, h func(w http.ResponseWriter, r *http.Request)) *mockServer {
	m.routes[method+" "+path] = h
	return m
}

// RouteJSON registers a route that responds with JSON-encoded data.
func (m *mockServer) RouteJSON(method, path string, v any) *mockServer {
	return m.Route(method, path, func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(m.t, w, v)
	})
}

// RespondJSON sets up a handler that responds with JSON-encoded data.
// The response includes Content-Type: application/json header.
func (m *mockServer) RespondJSON(v any) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(m.t, w, v)
	}
	return m
}

// RespondStatus sets up a handler that responds with just a status code.
func (m *mockServer) RespondStatus(code int) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}
	return m
}

// RespondError sets up a handler that responds with an error status and message.
func (m *mockServer) RespondError(code int, message string) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(message))
	}
	return m
}

// Build creates and returns the httptest.Server. It is closed on test cleanup.
func (m *mockServer) Build() *httptest.Server {
	m.t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify path if expected
		if m.expectPath != "" {
			assert.Equal(m.t, m.expectPath, r.URL.Path, "unexpected request path")
		}
		// Verify method if expected
		if m.expectMeth != "" {
			assert.Equal(m.t, m.expectMeth, r.Method, "unexpected request method")
		}
		for name, value := range m.expectHeader {
			assert.Equal(m.t, value, r.Header.Get(name), "unexpected %s header", name)
		}

		if len(m.routes) > 0 {
			h, ok := m.routes[r.Method+" "+r.URL.Path]
			if !ok {
				assert.Fail(m.t, "unexpected request", "%s %s", r.Method, r.URL.Path)
				http.NotFound(w, r)
				return
			}
			h(w, r)
			return
		}
		// Call the handler if set
		if m.handler != nil {
			m.handler(w, r)
		}
	})

	m.server = httptest.NewServer(handler)
	m.t.Cleanup(m.server.Close)
	return m.server
}

// respondJSON writes a JSON response with proper content-type header.
func respondJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(v), "failed to encode JSON response")
}

// withTraktURL points the Trakt client at url for the rest of the test.
func withTraktURL(t *testing.T, url string) {
	t.Helper()
	old := traktBaseURL
	traktBaseURL = url
	t.Cleanup(func() { traktBaseURL = old })
}

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
