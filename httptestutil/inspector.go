package httptestutil

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/felixge/httpsnoop"
)

// Exchange is a snapshot of one request/response exchange with the
// server.  RequestBody is nil when the request carried no body.
type Exchange struct {
	Request     *http.Request
	RequestBody *bytes.Buffer

	StatusCode   int
	Header       http.Header
	ResponseBody *bytes.Buffer
}

// Inspector is server-side middleware which captures server exchanges
// in a buffered channel.  If the channel buffer fills, subsequent
// exchanges are dropped.
//
// Exchanges can be received directly from the channel, or via the
// NextExchange() and LastExchange() convenience methods.
type Inspector struct {
	Exchanges chan Exchange
}

// NewInspector creates a new Inspector with the requested channel
// buffer size.  If 0, the buffer size defaults to 50.
func NewInspector(size int) *Inspector {
	if size == 0 {
		size = 50
	}
	return &Inspector{
		Exchanges: make(chan Exchange, size),
	}
}

// NextExchange receives the next exchange from the channel, or returns
// nil if no exchange is ready.  It is non-blocking.
func (i *Inspector) NextExchange() *Exchange {
	select {
	case e := <-i.Exchanges:
		return &e
	default:
		return nil
	}
}

// LastExchange receives the most recent exchange, draining the channel
// completely.  If no exchange is ready, nil is returned.  It is
// non-blocking.
func (i *Inspector) LastExchange() *Exchange {
	var e *Exchange

	for {
		select {
		case ex := <-i.Exchanges:
			e = &ex
		default:
			return e
		}
	}
}

// Clear drains the channel.
func (i *Inspector) Clear() {
	if i == nil {
		return
	}
	i.LastExchange()
}

// MiddlewareFunc installs the inspector in an HTTP server by wrapping
// the server's Handler.
func (i *Inspector) MiddlewareFunc(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ex := Exchange{Request: r, ResponseBody: &bytes.Buffer{}}
		bufferRequestBody(&ex, r)

		next.ServeHTTP(httpsnoop.Wrap(w, responseHooks(&ex, w)), r)

		// a handler which writes neither a status nor a body sends an
		// implicit 200; the hooks never fire, so snapshot here
		if ex.StatusCode == 0 {
			ex.StatusCode = http.StatusOK
			ex.Header = copyHeader(w.Header())
		}

		select {
		case i.Exchanges <- ex:
		default:
			// channel full, drop the exchange
		}
	})
}

// bufferRequestBody reads and stores the request body, then replaces
// it so the wrapped handler still sees the full body.
func bufferRequestBody(ex *Exchange, r *http.Request) {
	if r.Body == nil || r.Body == http.NoBody {
		return
	}

	ex.RequestBody = &bytes.Buffer{}
	if _, err := ex.RequestBody.ReadFrom(r.Body); err != nil {
		panic(err)
	}
	if err := r.Body.Close(); err != nil {
		panic(err)
	}

	r.Body = ioutil.NopCloser(bytes.NewReader(ex.RequestBody.Bytes()))
}

// responseHooks captures the handler's status, headers, and body as
// they are written to w.
func responseHooks(ex *Exchange, w http.ResponseWriter) httpsnoop.Hooks {
	snapshot := func(code int) {
		if ex.StatusCode == 0 {
			ex.StatusCode = code
			ex.Header = copyHeader(w.Header())
		}
	}

	return httpsnoop.Hooks{
		Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
			return func(b []byte) (int, error) {
				// Write without a prior WriteHeader implies 200
				snapshot(http.StatusOK)
				ex.ResponseBody.Write(b)
				return next(b)
			}
		},
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				snapshot(code)
				next(code)
			}
		},
		ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
			return func(src io.Reader) (int64, error) {
				snapshot(http.StatusOK)
				if _, err := ex.ResponseBody.ReadFrom(src); err != nil {
					return 0, err
				}
				return next(bytes.NewReader(ex.ResponseBody.Bytes()))
			}
		},
	}
}

func copyHeader(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		out[k] = append([]string(nil), v...)
	}
	return out
}
