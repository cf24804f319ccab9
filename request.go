package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ansel1/merry"
)

// Get performs a GET request.  See Do for the pipeline.
func (c *Client) Get(path string, opts ...Config) (interface{}, error) {
	return c.GetContext(context.Background(), path, opts...)
}

// GetContext does the same as Get, but requires a context.
func (c *Client) GetContext(ctx context.Context, path string, opts ...Config) (interface{}, error) {
	return c.Do(ctx, http.MethodGet, path, nil, opts...)
}

// Head performs a HEAD request.
func (c *Client) Head(path string, opts ...Config) (interface{}, error) {
	return c.HeadContext(context.Background(), path, opts...)
}

// HeadContext does the same as Head, but requires a context.
func (c *Client) HeadContext(ctx context.Context, path string, opts ...Config) (interface{}, error) {
	return c.Do(ctx, http.MethodHead, path, nil, opts...)
}

// Post performs a POST request.  body may be nil, an io.Reader, a
// string, a []byte, or a struct to be marshaled with the effective
// Marshaler.
func (c *Client) Post(path string, body interface{}, opts ...Config) (interface{}, error) {
	return c.PostContext(context.Background(), path, body, opts...)
}

// PostContext does the same as Post, but requires a context.
func (c *Client) PostContext(ctx context.Context, path string, body interface{}, opts ...Config) (interface{}, error) {
	return c.Do(ctx, http.MethodPost, path, body, opts...)
}

// Patch performs a PATCH request.  body is handled as in Post.
func (c *Client) Patch(path string, body interface{}, opts ...Config) (interface{}, error) {
	return c.PatchContext(context.Background(), path, body, opts...)
}

// PatchContext does the same as Patch, but requires a context.
func (c *Client) PatchContext(ctx context.Context, path string, body interface{}, opts ...Config) (interface{}, error) {
	return c.Do(ctx, http.MethodPatch, path, body, opts...)
}

// Put performs a PUT request.  body is handled as in Post.
func (c *Client) Put(path string, body interface{}, opts ...Config) (interface{}, error) {
	return c.PutContext(context.Background(), path, body, opts...)
}

// PutContext does the same as Put, but requires a context.
func (c *Client) PutContext(ctx context.Context, path string, body interface{}, opts ...Config) (interface{}, error) {
	return c.Do(ctx, http.MethodPut, path, body, opts...)
}

// Delete performs a DELETE request.  body may be nil.
func (c *Client) Delete(path string, body interface{}, opts ...Config) (interface{}, error) {
	return c.DeleteContext(context.Background(), path, body, opts...)
}

// DeleteContext does the same as Delete, but requires a context.
func (c *Client) DeleteContext(ctx context.Context, path string, body interface{}, opts ...Config) (interface{}, error) {
	return c.Do(ctx, http.MethodDelete, path, body, opts...)
}

// Do runs the request pipeline, in order:
//
//  1. Merge options: the opts arguments are folded together, method is
//     injected, and the result is deep merged onto the client's stored
//     config.  If the stored config has ExcludeDefaults set, the call
//     options are used verbatim instead.
//  2. Resolve the URL: path against BaseURL, placeholder expansion if
//     the path contains ":", then the serialized Query appended.
//  3. Emit a debug line, if Debug is set.
//  4. Build the http.Request and run it through the Doer, wrapped in
//     Middleware.  A transport failure (no response) returns a
//     *RequestError with Status -1, regardless of NoThrow.
//  5. Validate ResultType.  An unrecognized value returns
//     ErrInvalidResultType; this is a caller bug, so it is not
//     suppressed by NoThrow.
//  6. Extract the result per ResultType.  An extraction failure
//     returns a *RequestError with a nil Body, or nils the result if
//     NoThrow is set.
//  7. Check the status.  A non-ok response returns a *RequestError
//     carrying the extracted result as Body, unless NoThrow is set, in
//     which case the result is returned regardless.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, opts ...Config) (interface{}, error) {
	call := Config{}
	for _, o := range opts {
		call = call.Merge(o)
	}
	call.Method = method

	// ExcludeDefaults on the stored config drops the defaults entirely
	eff := call
	if !c.config.ExcludeDefaults {
		eff = c.config.Merge(call)
	}

	urlS, err := resolveURL(eff, path)
	if err != nil {
		return nil, err
	}

	if eff.Debug {
		emitDebug(eff, urlS, path)
	}

	req, err := buildRequest(ctx, eff, urlS, body)
	if err != nil {
		return nil, err
	}

	doer := eff.Doer
	if doer == nil {
		doer = http.DefaultClient
	}

	raw, err := Wrap(doer, eff.Middleware...).Do(req)
	if err != nil {
		// no usable response was obtained
		return nil, newRequestError(err.Error(), eff.Method, urlS, -1, nil, err)
	}

	resp := newResponse(raw, eff.Unmarshaler)

	resultType := eff.resultType()
	if !resultType.valid() {
		return nil, merry.Appendf(ErrInvalidResultType.Here(), "%q", string(resultType))
	}

	var result interface{}
	var extractErr error

	switch resultType {
	case ResultResponse:
		result = resp
	case ResultJSON:
		result, extractErr = resp.JSON()
	case ResultText:
		var s string
		if s, extractErr = resp.Text(); extractErr == nil {
			result = s
		}
	case ResultBlob:
		var b []byte
		if b, extractErr = resp.Blob(); extractErr == nil {
			result = b
		}
	}

	if extractErr != nil {
		if !eff.NoThrow {
			return nil, newRequestError(extractErr.Error(), eff.Method, urlS, resp.StatusCode(), nil, extractErr)
		}
		result = nil
	}

	if !resp.Ok() && !eff.NoThrow {
		return nil, newRequestError("request failed: "+raw.Status, eff.Method, urlS, resp.StatusCode(), result, nil)
	}

	return result, nil
}

// buildRequest constructs the http.Request: marshals the body, applies
// headers, and attaches the context.
func buildRequest(ctx context.Context, cfg Config, urlS string, body interface{}) (*http.Request, error) {
	bodyReader, contentType, err := requestBody(cfg, body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(cfg.Method, urlS, bodyReader)
	if err != nil {
		return nil, merry.Prepend(err, "building request")
	}

	// if we marshaled the body, use our content type.  An explicit
	// Content-Type in cfg.Header overrides it below.
	if contentType != "" {
		req.Header.Set(HeaderContentType, contentType)
	}

	for key, value := range cfg.Header {
		req.Header[key] = value
	}

	return req.WithContext(ctx), nil
}

// requestBody returns the io.Reader for the request body.  io.Reader,
// string, and []byte bodies pass through; anything else is marshaled
// with the effective Marshaler, which also supplies the content type.
func requestBody(cfg Config, body interface{}) (r io.Reader, contentType string, err error) {
	switch v := body.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		return v, "", nil
	case string:
		return strings.NewReader(v), "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	default:
		marshaler := cfg.Marshaler
		if marshaler == nil {
			marshaler = DefaultMarshaler
		}
		data, ct, err := marshaler.Marshal(v)
		if err != nil {
			return nil, "", merry.Prepend(err, "marshaling body")
		}
		return bytes.NewReader(data), ct, nil
	}
}

// emitDebug writes the one-line diagnostic record for a call.  It runs
// before the exchange and has no behavioral effect.
func emitDebug(cfg Config, urlS, path string) {
	w := cfg.DebugLog
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "fetch: %s %s path=%q result=%s nothrow=%t\n",
		strings.ToUpper(cfg.Method), urlS, path, cfg.resultType(), cfg.NoThrow)
}
