// Package fetch is a minimal, configurable HTTP request client.
//
// A Client holds a set of default request options (Config).  Each call
// merges the client's defaults with per-call overrides, expands named
// placeholders in the path, serializes query parameters, performs the
// exchange, and extracts a typed result from the response:
//
//     c := fetch.New(fetch.Config{BaseURL: "http://api.test.com"})
//
//     v, err := c.Get("/users/:id", fetch.Config{
//         Params: map[string]interface{}{"id": 42},
//         Query:  map[string]interface{}{"expand": "orders"},
//     })
//
// Results are selected by Config.ResultType: the decoded JSON body (the
// default), the body as a string or []byte, or the raw *Response
// descriptor.  Failed requests surface as *RequestError, carrying the
// method, URL, status, and extracted body.  NoThrow converts those
// failures into a nil result instead.
//
// Clients come in mutable and immutable flavors.  Mutate merges new
// options into a mutable client in place; Clone produces an independent
// child.  The package-level verb functions use Default, an immutable
// client with an empty configuration.
package fetch
