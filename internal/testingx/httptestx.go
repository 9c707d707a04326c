// Package testingx contains code useful for testing.
package testingx

import (
	"compress/gzip"
	"net/http"
	"net/http/httptest"

	"github.com/ooni/httpclientx/internal/runtimex"
)

// MustNewHTTPServer creates a new local HTTP server using the given
// handler or panics on failure.
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	server := httptest.NewServer(handler)
	runtimex.PanicIfNil(server, "httptest.NewServer returned nil")
	return server
}

// HTTPHandlerJSON returns a handler writing the given body with the
// application/json content type and the 200 status code.
func HTTPHandlerJSON(body []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = runtimex.Try1(w.Write(body))
	})
}

// HTTPHandlerStatus returns a handler writing the given status code
// with an empty body.
func HTTPHandlerStatus(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	})
}

// HTTPHandlerGzipJSON returns a handler writing the given body
// compressed with gzip and the matching Content-Encoding header.
func HTTPHandlerGzipJSON(body []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Set("Content-Type", "application/json")
		writer := gzip.NewWriter(w)
		_ = runtimex.Try1(writer.Write(body))
		runtimex.Try0(writer.Close())
	})
}
