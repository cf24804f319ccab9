package fetch

// Client is an HTTP request client holding a set of default request
// options.  Verb methods (Get, Post, etc.) merge the client's stored
// Config with per-call overrides, resolve the final URL, perform the
// exchange, and extract the result.
//
// A Client is either mutable or immutable, fixed at construction.
// Mutate merges options into a mutable client in place; on an immutable
// client it fails with ErrImmutable.  Clone and CloneImmutable derive
// independent children without touching the parent.
//
// A mutable Client is not safe for concurrent use while it is being
// mutated: there is no lock around the stored config.  Share immutable
// or cloned clients across goroutines instead.
type Client struct {
	config    Config
	immutable bool
}

// New returns a new mutable Client with the given starting
// configuration.
func New(config Config) *Client {
	return &Client{config: config.Clone()}
}

// NewImmutable returns a new immutable Client: Mutate will fail with
// ErrImmutable.
func NewImmutable(config Config) *Client {
	return &Client{config: config.Clone(), immutable: true}
}

// Immutable reports whether the client rejects Mutate.
func (c *Client) Immutable() bool {
	return c.immutable
}

// Config returns a copy of the client's stored configuration.
func (c *Client) Config() Config {
	return c.config.Clone()
}

// Mutate deep merges config into the client's stored configuration in
// place.  It returns ErrImmutable, leaving the configuration
// unchanged, if the client was constructed with NewImmutable.
func (c *Client) Mutate(config Config) error {
	if c.immutable {
		return ErrImmutable.Here()
	}
	c.config = c.config.Merge(config)
	return nil
}

// MustMutate does the same as Mutate, but panics on error.  It returns
// the client, so calls can be chained.
func (c *Client) MustMutate(config Config) *Client {
	if err := c.Mutate(config); err != nil {
		panic(err)
	}
	return c
}

// Clone returns a new mutable Client whose configuration is config
// deep merged onto a copy of the receiver's.  The receiver is never
// modified.
func (c *Client) Clone(config Config) *Client {
	return &Client{config: c.config.Merge(config)}
}

// CloneImmutable does the same as Clone, but the new client is
// immutable.
func (c *Client) CloneImmutable(config Config) *Client {
	return &Client{config: c.config.Merge(config), immutable: true}
}
