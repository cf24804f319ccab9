package fetch

import (
	"encoding/json"
	"net/url"

	"github.com/ansel1/merry"
	goquery "github.com/google/go-querystring/query"
)

// HTTP constants.
const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"

	MediaTypeJSON = "application/json"
	MediaTypeForm = "application/x-www-form-urlencoded"

	contentTypeJSON = MediaTypeJSON + "; charset=UTF-8"
	contentTypeForm = MediaTypeForm + "; charset=UTF-8"
)

// DefaultMarshaler is used when Config.Marshaler is nil.
// nolint:gochecknoglobals
var DefaultMarshaler Marshaler = &JSONMarshaler{}

// DefaultUnmarshaler is used by Response.Decode when the client was not
// configured with an Unmarshaler.
// nolint:gochecknoglobals
var DefaultUnmarshaler Unmarshaler = &JSONMarshaler{}

// Marshaler marshals a struct body into request body bytes.
//
// If the content type returned is not empty, it is used as the
// request's Content-Type header, unless one is already set.
type Marshaler interface {
	Marshal(v interface{}) (data []byte, contentType string, err error)
}

// Unmarshaler unmarshals response body bytes into a value.  It is
// given the value of the response's Content-Type header.
type Unmarshaler interface {
	Unmarshal(data []byte, contentType string, v interface{}) error
}

// MarshalFunc adapts a function to the Marshaler interface.
type MarshalFunc func(v interface{}) ([]byte, string, error)

// Marshal implements Marshaler.
func (f MarshalFunc) Marshal(v interface{}) ([]byte, string, error) {
	return f(v)
}

// UnmarshalFunc adapts a function to the Unmarshaler interface.
type UnmarshalFunc func(data []byte, contentType string, v interface{}) error

// Unmarshal implements Unmarshaler.
func (f UnmarshalFunc) Unmarshal(data []byte, contentType string, v interface{}) error {
	return f(data, contentType, v)
}

// JSONMarshaler implements Marshaler and Unmarshaler using JSON.  If
// Indent is true, marshaled JSON is indented.
type JSONMarshaler struct {
	Indent bool
}

// Marshal implements Marshaler.
func (m *JSONMarshaler) Marshal(v interface{}) (data []byte, contentType string, err error) {
	if m.Indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	return data, contentTypeJSON, merry.Wrap(err)
}

// Unmarshal implements Unmarshaler.
func (m *JSONMarshaler) Unmarshal(data []byte, contentType string, v interface{}) error {
	return merry.Wrap(json.Unmarshal(data, v))
}

// FormMarshaler implements Marshaler.  It marshals values into
// URL-encoded form data.  The value may be a url.Values,
// map[string][]string, map[string]string, map[string]interface{}, or a
// struct with `url` tags.
type FormMarshaler struct{}

// Marshal implements Marshaler.
func (*FormMarshaler) Marshal(v interface{}) (data []byte, contentType string, err error) {
	values, err := QueryValues(v)
	if err != nil {
		return nil, "", merry.Prepend(err, "invalid form value")
	}
	return []byte(values.Encode()), contentTypeForm, nil
}

// QueryValues converts a value into url.Values.  It accepts
// url.Values, map[string][]string, map[string]string,
// map[string]interface{} (with fetch's query conventions: slices expand
// to repeated keys, nested maps to bracketed keys), or a struct with
// `url` tags, marshaled with the github.com/google/go-querystring
// package.
func QueryValues(v interface{}) (url.Values, error) {
	switch t := v.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		return t, nil
	case map[string][]string:
		return url.Values(t), nil
	case map[string]string:
		values := url.Values{}
		for key, value := range t {
			values.Set(key, value)
		}
		return values, nil
	case map[string]interface{}:
		return valueMapValues(t), nil
	default:
		values, err := goquery.Values(v)
		if err != nil {
			return nil, merry.Prepend(err, "invalid query struct")
		}
		return values, nil
	}
}
