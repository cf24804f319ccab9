package fetch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ansel1/merry"
	"github.com/gemalto/fetch/pathtemplate"
)

// resolveURL turns the path argument of a call into the final request
// URL: resolve against BaseURL, expand path placeholders, append the
// query string.
func resolveURL(cfg Config, path string) (string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", merry.Prepend(err, "invalid path")
	}

	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return "", merry.Prepend(err, "invalid base url")
		}
		u = base.ResolveReference(u)
	}

	// a ":" anywhere in the path marks it as a template.  This is a
	// deliberately blunt check: a colon outside a placeholder token
	// also triggers compilation.
	if strings.Contains(u.Path, ":") {
		expanded, err := pathtemplate.Compile(u.Path).Expand(templateParams(cfg))
		if err != nil {
			return "", err
		}
		u.Path = expanded
	}

	s := u.String()

	// the query string is always appended with a fresh "?"; an
	// existing query in the path is not merged with
	if len(cfg.Query) > 0 {
		s += "?" + valueMapValues(cfg.Query).Encode()
	}

	return s, nil
}

// templateParams collects the placeholder substitution namespace from
// the effective options: Params wins over Query on matching names.
func templateParams(cfg Config) map[string]interface{} {
	params := make(map[string]interface{}, len(cfg.Params)+len(cfg.Query))
	for name, value := range cfg.Query {
		params[name] = value
	}
	for name, value := range cfg.Params {
		params[name] = value
	}
	return params
}

// valueMapValues serializes a query map into url.Values.  Slices
// expand into repeated keys, nested maps into bracketed keys
// (k[sub]=v), everything else prints with fmt conventions.
func valueMapValues(m map[string]interface{}) url.Values {
	values := url.Values{}
	for key, value := range m {
		addQueryValue(values, key, value)
	}
	return values
}

func addQueryValue(values url.Values, key string, v interface{}) {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, vv := range t {
			addQueryValue(values, key+"["+k+"]", vv)
		}
	case []interface{}:
		for _, vv := range t {
			addQueryValue(values, key, vv)
		}
	case []string:
		for _, vv := range t {
			values.Add(key, vv)
		}
	default:
		values.Add(key, fmt.Sprint(v))
	}
}
