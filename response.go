package fetch

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/ansel1/merry"
)

// Response is the descriptor of a completed exchange.  It carries the
// status and headers of the underlying *http.Response, and extraction
// methods which read and buffer the body on first use.  All extraction
// methods may be called repeatedly; the body is only read once.
//
// Response is not safe for concurrent use.
type Response struct {
	// Raw is the underlying response.  Raw.Body is consumed by the
	// first extraction method call.
	Raw *http.Response

	unmarshaler Unmarshaler

	body     []byte
	bodyRead bool
	bodyErr  error
}

func newResponse(raw *http.Response, u Unmarshaler) *Response {
	return &Response{Raw: raw, unmarshaler: u}
}

// StatusCode returns the response's status code.
func (r *Response) StatusCode() int {
	return r.Raw.StatusCode
}

// Header returns the response headers.
func (r *Response) Header() http.Header {
	return r.Raw.Header
}

// Ok reports whether the status code indicates success.  Both 2xx and
// 3xx codes count as success.
func (r *Response) Ok() bool {
	return r.Raw.StatusCode >= 200 && r.Raw.StatusCode < 400
}

// Body reads, buffers, and returns the response body.  Subsequent
// calls return the buffer.
func (r *Response) Body() ([]byte, error) {
	if !r.bodyRead {
		r.body, r.bodyErr = readBody(r.Raw)
		r.bodyRead = true
	}
	return r.body, r.bodyErr
}

// Blob returns the response body as a []byte.
func (r *Response) Blob() ([]byte, error) {
	return r.Body()
}

// Text returns the response body as a string.
func (r *Response) Text() (string, error) {
	body, err := r.Body()
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// JSON decodes the response body as JSON.  Objects decode to
// map[string]interface{}, arrays to []interface{}, numbers to float64.
func (r *Response) JSON() (interface{}, error) {
	body, err := r.Body()
	if err != nil {
		return nil, err
	}
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, merry.Prepend(err, "decoding response body")
	}
	return v, nil
}

// Decode unmarshals the response body into v, using the Unmarshaler
// the client was configured with (DefaultUnmarshaler if none).
func (r *Response) Decode(v interface{}) error {
	body, err := r.Body()
	if err != nil {
		return err
	}
	unmarshaler := r.unmarshaler
	if unmarshaler == nil {
		unmarshaler = DefaultUnmarshaler
	}
	return unmarshaler.Unmarshal(body, r.Raw.Header.Get(HeaderContentType), v)
}

func readBody(resp *http.Response) ([]byte, error) {
	if resp == nil || resp.Body == nil {
		return nil, nil
	}

	defer resp.Body.Close()

	// a content length hint lets us pre-size the buffer
	cls := resp.Header.Get("Content-Length")
	var cl int64

	if cls != "" {
		cl, _ = strconv.ParseInt(cls, 10, 0)
	}

	if cl == 0 {
		body, err := ioutil.ReadAll(resp.Body)
		return body, merry.Prepend(err, "reading response body")
	}

	buf := bytes.Buffer{}
	buf.Grow(int(cl))
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, merry.Prepend(err, "reading response body")
	}
	return buf.Bytes(), nil
}
