package fetch

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
)

// These are tools for writing tests.

// MockResponse builds an *http.Response with the given status code and
// body.  The Content-Length header is set from the body.  Mutate the
// returned response to add headers.
func MockResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode:    statusCode,
		Status:        strconv.Itoa(statusCode) + " " + http.StatusText(statusCode),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Length": []string{strconv.Itoa(len(body))}},
		Body:          ioutil.NopCloser(bytes.NewReader([]byte(body))),
		ContentLength: int64(len(body)),
	}
}

// MockDoer returns a Doer which responds to every request with a
// mocked response, for writing tests.
func MockDoer(statusCode int, body string) DoerFunc {
	return func(req *http.Request) (*http.Response, error) {
		resp := MockResponse(statusCode, body)
		resp.Request = req
		return resp, nil
	}
}

// MockJSONDoer returns a Doer which responds with v marshaled to JSON.
func MockJSONDoer(statusCode int, v interface{}) DoerFunc {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return func(req *http.Request) (*http.Response, error) {
		resp := MockResponse(statusCode, string(data))
		resp.Header.Set(HeaderContentType, MediaTypeJSON)
		resp.Request = req
		return resp, nil
	}
}

// ChannelDoer returns a DoerFunc and a channel.  The DoerFunc returns
// the responses sent on the channel.
func ChannelDoer() (chan<- *http.Response, DoerFunc) {
	input := make(chan *http.Response, 1)

	return input, func(req *http.Request) (*http.Response, error) {
		resp := <-input
		resp.Request = req
		return resp, nil
	}
}
