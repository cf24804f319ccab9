package fetch

import (
	"io"
	"net/http"

	"dario.cat/mergo"
)

// ResultType selects how a call converts the raw response into the
// value it returns.
type ResultType string

// Recognized result types.  An empty ResultType means ResultJSON.
const (
	// ResultResponse returns the raw *Response descriptor.  The body is
	// not consumed; it is the caller's responsibility to read it.
	ResultResponse ResultType = "response"

	// ResultJSON decodes the response body as JSON into an interface{}.
	ResultJSON ResultType = "json"

	// ResultText returns the response body as a string.
	ResultText ResultType = "text"

	// ResultBlob returns the response body as a []byte.
	ResultBlob ResultType = "blob"
)

func (t ResultType) valid() bool {
	switch t {
	case ResultResponse, ResultJSON, ResultText, ResultBlob:
		return true
	}
	return false
}

// Config holds request options.  A Client stores one Config as its
// defaults; the verb methods accept additional Configs which are deep
// merged on top of the defaults for that call only.
//
// Config is a value type.  Merge and Clone never modify the receiver.
type Config struct {

	// Method is the HTTP method.  The verb methods (Get, Post, etc.)
	// inject it, overriding whatever is set here.
	Method string

	// BaseURL is resolved against the path argument of the verb
	// methods, using standard URL resolution rules: an absolute path
	// overrides the base entirely.
	BaseURL string

	// Header supplies request headers.  Merging replaces values
	// key-by-key: a key present in the overriding config wins.
	Header http.Header

	// Query is serialized into the request's query string.  Values are
	// printed with fmt conventions; []interface{} values expand into
	// repeated keys, nested map[string]interface{} values into
	// bracketed keys (k[sub]=v).  Query entries also satisfy path
	// placeholders, after Params.
	Query map[string]interface{}

	// Params supplies values for named placeholders (:name) in the
	// path.  Params are merged deeply, overriding values winning at
	// matching leaf keys.
	Params map[string]interface{}

	// ResultType selects the result extraction.  Empty means
	// ResultJSON.  An unrecognized value fails the call with
	// ErrInvalidResultType, regardless of NoThrow.
	ResultType ResultType

	// ExcludeDefaults, when set on a Client's stored config, causes a
	// call's own options to be used verbatim, dropping the stored
	// defaults entirely.
	ExcludeDefaults bool

	// Debug writes a one-line diagnostic record of each call to
	// DebugLog before the exchange.  It has no behavioral effect.
	Debug bool

	// NoThrow suppresses *RequestError on response-level and
	// extraction-level failures, substituting a nil result.  It does
	// not suppress configuration errors or transport failures.
	NoThrow bool

	// Marshaler marshals struct bodies into request bodies.  Defaults
	// to DefaultMarshaler (JSON).
	Marshaler Marshaler

	// Unmarshaler is used by Response.Decode.  Defaults to
	// DefaultUnmarshaler (JSON).
	Unmarshaler Unmarshaler

	// Doer executes the exchange.  Defaults to http.DefaultClient.
	Doer Doer

	// Middleware wraps the Doer, invoked in slice order.  Merging
	// concatenates middleware.
	Middleware []Middleware

	// DebugLog is the destination of Debug diagnostics.  Defaults to
	// os.Stderr.
	DebugLog io.Writer
}

// Clone returns a deep copy of the config.  Header, Query, and Params
// maps are copied, so mutating the clone never affects the original.
func (c Config) Clone() Config {
	c2 := c
	c2.Header = cloneHeader(c.Header)
	c2.Query = cloneValueMap(c.Query)
	c2.Params = cloneValueMap(c.Params)
	c2.Middleware = append([]Middleware(nil), c.Middleware...)
	return c2
}

// Merge deep merges o onto a copy of c and returns the result.  o's
// values win at matching leaf keys: non-zero scalar fields override,
// Header entries replace key-by-key, Query and Params merge
// recursively, and Middleware concatenates.
//
// Zero values in o are treated as unset and never override: merging
// cannot clear a flag or field already set on c.
func (c Config) Merge(o Config) Config {
	m := c.Clone()

	if o.Method != "" {
		m.Method = o.Method
	}
	if o.BaseURL != "" {
		m.BaseURL = o.BaseURL
	}
	if o.ResultType != "" {
		m.ResultType = o.ResultType
	}
	if o.ExcludeDefaults {
		m.ExcludeDefaults = true
	}
	if o.Debug {
		m.Debug = true
	}
	if o.NoThrow {
		m.NoThrow = true
	}
	if o.Marshaler != nil {
		m.Marshaler = o.Marshaler
	}
	if o.Unmarshaler != nil {
		m.Unmarshaler = o.Unmarshaler
	}
	if o.Doer != nil {
		m.Doer = o.Doer
	}
	if o.DebugLog != nil {
		m.DebugLog = o.DebugLog
	}
	m.Middleware = append(m.Middleware, o.Middleware...)
	m.Header = mergeHeader(m.Header, o.Header)
	m.Query = mergeValueMap(m.Query, o.Query)
	m.Params = mergeValueMap(m.Params, o.Params)

	return m
}

// resultType returns the effective result type, applying the default.
func (c Config) resultType() ResultType {
	if c.ResultType == "" {
		return ResultJSON
	}
	return c.ResultType
}

// templateValue looks up a path placeholder value.  Params is
// consulted first, then Query.
func (c Config) templateValue(name string) (interface{}, bool) {
	if v, ok := c.Params[name]; ok {
		return v, true
	}
	if v, ok := c.Query[name]; ok {
		return v, true
	}
	return nil, false
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return nil
	}
	h2 := make(http.Header, len(h))
	for key, value := range h {
		h2[key] = append([]string(nil), value...)
	}
	return h2
}

func cloneValueMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	m2 := make(map[string]interface{}, len(m))
	for key, value := range m {
		if nested, ok := value.(map[string]interface{}); ok {
			m2[key] = cloneValueMap(nested)
		} else {
			m2[key] = value
		}
	}
	return m2
}

// mergeHeader replaces dst's values with src's, key by key.
func mergeHeader(dst, src http.Header) http.Header {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = http.Header{}
	}
	for key, value := range src {
		dst.Del(key)
		for _, v := range value {
			dst.Add(key, v)
		}
	}
	return dst
}

// mergeValueMap deep merges src onto dst: src's leaves win, slices
// concatenate, nested maps combine key-by-key.
func mergeValueMap(dst, src map[string]interface{}) map[string]interface{} {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		return cloneValueMap(src)
	}
	src = cloneValueMap(src)
	// both arguments are plain string-keyed maps of the same type, so
	// mergo cannot reject them
	if err := mergo.Merge(&dst, src, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
		panic(err)
	}
	return dst
}
