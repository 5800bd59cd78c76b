package link

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Resolver serves Realpath lookups through an LRU cache, for callers that
// resolve the same paths over and over (path-based access checks, watch
// lists). Entries go stale when a link is rewritten underneath them;
// Forget or Purge evicts them.
type Resolver struct {
	cache *lru.Cache[string, string]
}

// NewResolver returns a Resolver caching up to size resolved paths.
func NewResolver(size int) (*Resolver, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Resolver{cache: cache}, nil
}

// Resolve behaves like Realpath, hitting the cache first. Failed
// resolutions are not cached.
func (r *Resolver) Resolve(path string) (string, error) {
	if resolved, ok := r.cache.Get(path); ok {
		return resolved, nil
	}
	resolved, err := Realpath(path)
	if err != nil {
		return "", err
	}
	r.cache.Add(path, resolved)
	return resolved, nil
}

// Forget drops the cached resolution for path, if any.
func (r *Resolver) Forget(path string) {
	r.cache.Remove(path)
}

// Purge drops every cached resolution.
func (r *Resolver) Purge() {
	r.cache.Purge()
}
