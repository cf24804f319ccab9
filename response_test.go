package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Ok(t *testing.T) {
	cases := []struct {
		status int
		ok     bool
	}{
		{199, false},
		{200, true},
		{204, true},
		{302, true},
		{399, true},
		{400, false},
		{404, false},
		{500, false},
	}

	for _, c := range cases {
		resp := newResponse(MockResponse(c.status, ""), nil)
		assert.Equal(t, c.ok, resp.Ok(), "status %d", c.status)
	}
}

func TestResponse_Body(t *testing.T) {
	resp := newResponse(MockResponse(200, "hello"), nil)

	body, err := resp.Body()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), body)

	// the body is buffered: repeated reads return the same bytes
	body2, err := resp.Body()
	require.NoError(t, err)
	assert.Equal(t, body, body2)

	s, err := resp.Text()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestResponse_JSON(t *testing.T) {
	resp := newResponse(MockResponse(200, `{"a": 1, "tags": ["x"]}`), nil)

	v, err := resp.JSON()
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"a":    float64(1),
		"tags": []interface{}{"x"},
	}, v)

	t.Run("malformed", func(t *testing.T) {
		resp := newResponse(MockResponse(200, "{oops"), nil)

		_, err := resp.JSON()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding response body")
	})
}

func TestResponse_Decode(t *testing.T) {
	type pong struct {
		Pong bool `json:"pong"`
	}

	raw := MockResponse(200, `{"pong": true}`)
	raw.Header.Set(HeaderContentType, MediaTypeJSON)
	resp := newResponse(raw, nil)

	var p pong
	require.NoError(t, resp.Decode(&p))
	assert.True(t, p.Pong)

	t.Run("customunmarshaler", func(t *testing.T) {
		var gotContentType string
		u := UnmarshalFunc(func(data []byte, contentType string, v interface{}) error {
			gotContentType = contentType
			return nil
		})

		raw := MockResponse(200, "payload")
		raw.Header.Set(HeaderContentType, "application/vnd.custom")
		resp := newResponse(raw, u)

		require.NoError(t, resp.Decode(&struct{}{}))
		assert.Equal(t, "application/vnd.custom", gotContentType)
	})
}
