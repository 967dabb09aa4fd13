package cache

import (
	"context"
	"time"
)

// Scoped prefixes every key before passing it to the wrapped Cache, so
// several registries can share one backend without colliding:
//
//	pypi := cache.NewScoped(fc, "pypi:")
//	npm := cache.NewScoped(fc, "npm:")
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped wraps inner with prefix. A nil inner behaves like [NullCache].
func NewScoped(inner Cache, prefix string) *Scoped {
	if inner == nil {
		inner = NullCache{}
	}
	return &Scoped{inner: inner, prefix: prefix}
}

// Prefix returns the key prefix.
func (s *Scoped) Prefix() string { return s.prefix }

func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close closes the wrapped cache.
func (s *Scoped) Close() error {
	return s.inner.Close()
}

var _ Cache = (*Scoped)(nil)
