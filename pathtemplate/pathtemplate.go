// Package pathtemplate compiles URL path patterns containing named
// placeholders (":name") into templates which substitute supplied
// parameter values:
//
//     t := pathtemplate.Compile("/users/:id/posts")
//     p, err := t.Expand(map[string]interface{}{"id": 42})
//     // p == "/users/42/posts"
//
// Placeholder names consist of letters, digits, and underscores.  A
// ":" not followed by a name character is kept literally.
package pathtemplate

import (
	"fmt"
	"strings"

	"github.com/ansel1/merry"
)

// Template is a compiled path pattern.
type Template struct {
	pattern  string
	segments []segment
}

// segment is either a literal chunk of the pattern, or a named
// placeholder (literal is empty then).
type segment struct {
	literal string
	name    string
}

func nameChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// Compile parses a path pattern.  Compilation cannot fail: a pattern
// without placeholders expands to itself.
func Compile(pattern string) *Template {
	t := &Template{pattern: pattern}

	lit := strings.Builder{}
	for i := 0; i < len(pattern); {
		if pattern[i] == ':' && i+1 < len(pattern) && nameChar(pattern[i+1]) {
			if lit.Len() > 0 {
				t.segments = append(t.segments, segment{literal: lit.String()})
				lit.Reset()
			}
			j := i + 1
			for j < len(pattern) && nameChar(pattern[j]) {
				j++
			}
			t.segments = append(t.segments, segment{name: pattern[i+1 : j]})
			i = j
			continue
		}
		lit.WriteByte(pattern[i])
		i++
	}
	if lit.Len() > 0 {
		t.segments = append(t.segments, segment{literal: lit.String()})
	}

	return t
}

// Names returns the placeholder names in the pattern, in order of
// appearance.
func (t *Template) Names() []string {
	var names []string
	for _, s := range t.segments {
		if s.name != "" {
			names = append(names, s.name)
		}
	}
	return names
}

// Expand substitutes params into the pattern.  Values are rendered
// with fmt.Sprint.  A placeholder with no matching key in params is an
// error.
func (t *Template) Expand(params map[string]interface{}) (string, error) {
	b := strings.Builder{}
	for _, s := range t.segments {
		if s.name == "" {
			b.WriteString(s.literal)
			continue
		}
		v, ok := params[s.name]
		if !ok {
			return "", merry.Errorf("no value for path parameter :%s in %q", s.name, t.pattern)
		}
		b.WriteString(fmt.Sprint(v))
	}
	return b.String(), nil
}

// String returns the original pattern.
func (t *Template) String() string {
	return t.pattern
}
