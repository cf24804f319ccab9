// Package httptestutil contains utilities for tests which exercise a
// fetch.Client against an httptest.Server.
//
// Inspect() can be used to intercept and inspect the traffic to and
// from the test server.
package httptestutil

import (
	"net/http/httptest"

	"github.com/gemalto/fetch"
)

// Client creates a fetch.Client pre-configured to send requests to the
// test server: the server's base URL, and the server's client (which
// carries the TLS certs of a TLS server) as the transport.
func Client(ts *httptest.Server) *fetch.Client {
	return fetch.New(fetch.Config{BaseURL: ts.URL, Doer: ts.Client()})
}

// Inspect installs and returns an Inspector, which captures exchanges
// with the test server.
//
// Inspect wraps and replaces the server's Handler.  It should be
// called after the real Handler has been installed.
func Inspect(ts *httptest.Server) *Inspector {
	i := NewInspector(0)
	ts.Config.Handler = i.MiddlewareFunc(ts.Config.Handler)
	return i
}
