// Package clients creates and configures instances of http.Client,
// for use as the transport of a fetch.Client.
//
// Clients are created with NewClient(), which takes a set of Options
// implementing common configuration recipes, like disabling server TLS
// verification, or setting a timeout:
//
//     c, err := clients.NewClient(clients.SkipVerify(true), clients.Timeout(10*time.Second))
//
package clients

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/ansel1/merry"
)

// NewClient builds a new *http.Client.  With no arguments, the client
// is configured identically to http.DefaultClient and
// http.DefaultTransport, but as distinct instances, so further
// modification has no global effect.
func NewClient(opts ...Option) (*http.Client, error) {
	// http.DefaultTransport can't be shallow copied (go vet flags the
	// mutex copy), so the init code is replicated here
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
			DualStack: true,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	c := &http.Client{}

	for _, opt := range opts {
		if err := opt.Apply(c, t); err != nil {
			return nil, err
		}
	}

	// an option which explicitly set the client's RoundTripper wins
	// over our transport
	if c.Transport == nil {
		c.Transport = t
	}
	return c, nil
}

// Option is a configuration option for building an http.Client.
type Option interface {

	// Apply makes some configuration change to the arguments.  Neither
	// argument will be nil.  Unless Apply installs a different
	// RoundTripper in the client, the transport argument becomes the
	// client's RoundTripper after all options have run.
	Apply(*http.Client, *http.Transport) error
}

// OptionFunc adapts a function to the Option interface.
type OptionFunc func(*http.Client, *http.Transport) error

// Apply implements Option.
func (f OptionFunc) Apply(c *http.Client, t *http.Transport) error {
	return f(c, t)
}

// TransportOption adapts a function operating on the transport only.
func TransportOption(f func(*http.Transport) error) Option {
	return OptionFunc(func(_ *http.Client, t *http.Transport) error {
		return f(t)
	})
}

// TLSOption adapts a function operating on the transport's TLS config,
// initializing it if necessary.
func TLSOption(f func(*tls.Config) error) Option {
	return TransportOption(func(t *http.Transport) error {
		if t.TLSClientConfig == nil {
			t.TLSClientConfig = &tls.Config{}
		}
		return f(t.TLSClientConfig)
	})
}

// Timeout configures the client's Timeout property.
func Timeout(d time.Duration) Option {
	return OptionFunc(func(c *http.Client, _ *http.Transport) error {
		c.Timeout = d
		return nil
	})
}

// NoRedirects configures the client to not follow any redirects.
func NoRedirects() Option {
	return OptionFunc(func(c *http.Client, _ *http.Transport) error {
		c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
		return nil
	})
}

// MaxRedirects configures the max number of redirects the client
// performs before giving up.
func MaxRedirects(max int) Option {
	return OptionFunc(func(c *http.Client, _ *http.Transport) error {
		c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= max {
				return merry.Errorf("stopped after max %d requests", len(via))
			}
			return nil
		}
		return nil
	})
}

// CookieJar installs a cookie jar into the client, configured with the
// options argument.  The argument may be nil.
func CookieJar(opts *cookiejar.Options) Option {
	return OptionFunc(func(c *http.Client, _ *http.Transport) error {
		jar, err := cookiejar.New(opts)
		if err != nil {
			return merry.Wrap(err)
		}
		c.Jar = jar
		return nil
	})
}

// ProxyURL proxies all calls through a single proxy URL.
func ProxyURL(proxyURL string) Option {
	return TransportOption(func(t *http.Transport) error {
		u, err := url.Parse(proxyURL)
		if err != nil {
			return merry.Prepend(err, "invalid proxy url")
		}
		t.Proxy = func(*http.Request) (*url.URL, error) {
			return u, nil
		}
		return nil
	})
}

// ProxyFunc configures the transport's proxy function.
func ProxyFunc(f func(*http.Request) (*url.URL, error)) Option {
	return TransportOption(func(t *http.Transport) error {
		t.Proxy = f
		return nil
	})
}

// SkipVerify sets the TLS config's InsecureSkipVerify flag.
func SkipVerify(skip bool) Option {
	return TLSOption(func(c *tls.Config) error {
		c.InsecureSkipVerify = skip
		return nil
	})
}
