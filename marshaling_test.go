package fetch

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMarshaler(t *testing.T) {
	m := &JSONMarshaler{}

	data, contentType, err := m.Marshal(map[string]interface{}{"color": "red"})
	require.NoError(t, err)
	assert.Equal(t, contentTypeJSON, contentType)
	assert.JSONEq(t, `{"color":"red"}`, string(data))

	t.Run("indent", func(t *testing.T) {
		m := &JSONMarshaler{Indent: true}

		data, _, err := m.Marshal(map[string]interface{}{"color": "red"})
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"color\": \"red\"\n}", string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var v struct {
			Color string `json:"color"`
		}
		require.NoError(t, m.Unmarshal([]byte(`{"color":"red"}`), MediaTypeJSON, &v))
		assert.Equal(t, "red", v.Color)
	})
}

func TestFormMarshaler(t *testing.T) {
	m := &FormMarshaler{}

	cases := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"mapstring", map[string]string{"color": "red"}, "color=red"},
		{"urlvalues", url.Values{"color": []string{"red", "blue"}}, "color=red&color=blue"},
		{"valuemap", map[string]interface{}{"a": 1, "b": "x"}, "a=1&b=x"},
		{"struct", struct {
			Color string `url:"color"`
		}{Color: "red"}, "color=red"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, contentType, err := m.Marshal(c.value)
			require.NoError(t, err)
			assert.Equal(t, contentTypeForm, contentType)
			assert.Equal(t, c.expected, string(data))
		})
	}
}

func TestQueryValues(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		values, err := QueryValues(nil)
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("struct", func(t *testing.T) {
		arg := struct {
			Color string `url:"color"`
			Count int    `url:"count"`
		}{Color: "red", Count: 2}

		values, err := QueryValues(arg)
		require.NoError(t, err)
		assert.Equal(t, "red", values.Get("color"))
		assert.Equal(t, "2", values.Get("count"))
	})

	t.Run("invalidstruct", func(t *testing.T) {
		_, err := QueryValues(5)
		require.Error(t, err)
	})
}
