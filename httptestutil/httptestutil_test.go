package httptestutil

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gemalto/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Body != nil {
			body, _ := ioutil.ReadAll(r.Body)
			if len(body) > 0 {
				w.Write(body)
				return
			}
		}
		w.Write([]byte(`{"pong":true}`))
	}))
}

func TestClient(t *testing.T) {
	ts := echoServer()
	defer ts.Close()

	c := Client(ts)

	v, err := c.Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"pong": true}, v)
}

func TestInspect(t *testing.T) {
	ts := echoServer()
	defer ts.Close()

	i := Inspect(ts)
	c := Client(ts)

	v, err := c.Post("/users/:id", map[string]interface{}{"name": "bob"}, fetch.Config{
		Params: map[string]interface{}{"id": 42},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "bob"}, v)

	ex := i.LastExchange()
	require.NotNil(t, ex)
	assert.Equal(t, "POST", ex.Request.Method)
	assert.Equal(t, "/users/42", ex.Request.URL.Path)
	assert.JSONEq(t, `{"name":"bob"}`, ex.RequestBody.String())
	assert.JSONEq(t, `{"name":"bob"}`, ex.ResponseBody.String())

	// the handler never calls WriteHeader: the implicit 200 and the
	// headers are still captured
	assert.Equal(t, 200, ex.StatusCode)
	assert.Equal(t, "application/json", ex.Header.Get("Content-Type"))
}

func TestInspector_StatusCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer ts.Close()

	i := Inspect(ts)
	c := Client(ts)

	_, err := c.Get("/missing", fetch.Config{NoThrow: true})
	require.NoError(t, err)

	ex := i.LastExchange()
	require.NotNil(t, ex)
	assert.Equal(t, 404, ex.StatusCode)
	assert.Equal(t, "application/json", ex.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"error":"not found"}`, ex.ResponseBody.String())
}

func TestInspector_NextExchange(t *testing.T) {
	ts := echoServer()
	defer ts.Close()

	i := Inspect(ts)
	c := Client(ts)

	_, err := c.Get("/first")
	require.NoError(t, err)
	_, err = c.Get("/second")
	require.NoError(t, err)

	assert.Equal(t, "/first", i.NextExchange().Request.URL.Path)
	assert.Equal(t, "/second", i.NextExchange().Request.URL.Path)
	assert.Nil(t, i.NextExchange())
}

func TestInspector_Clear(t *testing.T) {
	ts := echoServer()
	defer ts.Close()

	i := Inspect(ts)
	c := Client(ts)

	_, err := c.Get("/ping")
	require.NoError(t, err)

	i.Clear()
	assert.Nil(t, i.NextExchange())
}
