package fetch

import "context"

// Default is the client used by the package-level verb functions.  It
// is immutable and starts with an empty configuration; derive your own
// client with Default.Clone() if you need different defaults.
// nolint:gochecknoglobals
var Default = NewImmutable(Config{})

// Get does the same as Client.Get, using Default.
func Get(path string, opts ...Config) (interface{}, error) {
	return Default.Get(path, opts...)
}

// GetContext does the same as Client.GetContext, using Default.
func GetContext(ctx context.Context, path string, opts ...Config) (interface{}, error) {
	return Default.GetContext(ctx, path, opts...)
}

// Head does the same as Client.Head, using Default.
func Head(path string, opts ...Config) (interface{}, error) {
	return Default.Head(path, opts...)
}

// HeadContext does the same as Client.HeadContext, using Default.
func HeadContext(ctx context.Context, path string, opts ...Config) (interface{}, error) {
	return Default.HeadContext(ctx, path, opts...)
}

// Post does the same as Client.Post, using Default.
func Post(path string, body interface{}, opts ...Config) (interface{}, error) {
	return Default.Post(path, body, opts...)
}

// PostContext does the same as Client.PostContext, using Default.
func PostContext(ctx context.Context, path string, body interface{}, opts ...Config) (interface{}, error) {
	return Default.PostContext(ctx, path, body, opts...)
}

// Patch does the same as Client.Patch, using Default.
func Patch(path string, body interface{}, opts ...Config) (interface{}, error) {
	return Default.Patch(path, body, opts...)
}

// PatchContext does the same as Client.PatchContext, using Default.
func PatchContext(ctx context.Context, path string, body interface{}, opts ...Config) (interface{}, error) {
	return Default.PatchContext(ctx, path, body, opts...)
}

// Put does the same as Client.Put, using Default.
func Put(path string, body interface{}, opts ...Config) (interface{}, error) {
	return Default.Put(path, body, opts...)
}

// PutContext does the same as Client.PutContext, using Default.
func PutContext(ctx context.Context, path string, body interface{}, opts ...Config) (interface{}, error) {
	return Default.PutContext(ctx, path, body, opts...)
}

// Delete does the same as Client.Delete, using Default.
func Delete(path string, body interface{}, opts ...Config) (interface{}, error) {
	return Default.Delete(path, body, opts...)
}

// DeleteContext does the same as Client.DeleteContext, using Default.
func DeleteContext(ctx context.Context, path string, body interface{}, opts ...Config) (interface{}, error) {
	return Default.DeleteContext(ctx, path, body, opts...)
}
