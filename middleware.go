package fetch

import (
	"io"
	"net/http"
	"net/http/httputil"
	"os"
)

// Doer executes HTTP requests.  It is implemented by *http.Client.
// Config.Doer is the transport capability of the client: wrap it with
// Middleware to layer in client-side behavior.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to implement Doer.
type DoerFunc func(req *http.Request) (*http.Response, error)

// Do implements the Doer interface.
func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Middleware wraps a Doer with additional functionality:
//
//     logging := func(next Doer) Doer {
//         return DoerFunc(func(req *http.Request) (*http.Response, error) {
//             logRequest(req)
//             return next.Do(req)
//         })
//     }
//
// Middleware is installed via Config.Middleware, and is invoked in
// slice order.
type Middleware func(Doer) Doer

// Wrap applies a set of middleware to a Doer.  The returned Doer
// invokes the middleware in the order of the arguments.
func Wrap(d Doer, m ...Middleware) Doer {
	for i := len(m) - 1; i > -1; i-- {
		d = m[i](d)
	}
	return d
}

// Dump dumps requests and responses to a writer.  Just intended for
// debugging.
func Dump(w io.Writer) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			dump, dumperr := httputil.DumpRequestOut(req, true)
			// write the whole request as a single Write() call, so a
			// logger destination receives it in one piece
			if dumperr != nil {
				io.WriteString(w, "Error dumping request: "+dumperr.Error()+"\n")
			} else {
				io.WriteString(w, string(dump)+"\n")
			}
			resp, err := next.Do(req)
			if resp != nil {
				dump, dumperr = httputil.DumpResponse(resp, true)
				if dumperr != nil {
					io.WriteString(w, "Error dumping response: "+dumperr.Error()+"\n")
				} else {
					io.WriteString(w, string(dump)+"\n")
				}
			}
			return resp, err
		})
	}
}

// DumpToStderr dumps requests and responses to os.Stderr.
func DumpToStderr() Middleware {
	return Dump(os.Stderr)
}

type logFunc func(a ...interface{})

func (f logFunc) Write(p []byte) (n int, err error) {
	f(string(p))
	return len(p), nil
}

// DumpToLog dumps requests and responses to a logging function.  logf
// is compatible with fmt.Print(), testing.T.Log, or log.XXX()
// functions.
func DumpToLog(logf func(a ...interface{})) Middleware {
	return Dump(logFunc(logf))
}
