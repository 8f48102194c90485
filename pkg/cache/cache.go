// Package cache stores rendered diagrams so repeated renders of the same
// position with the same options and assets are served from disk.
//
// # Backends
//
//   - [FileCache]: JSON entries under a directory, sharded by key hash
//   - [NullCache]: stores nothing, used with --no-cache and in tests
//
// # Keys
//
// A [Keyer] derives keys from everything that affects the output image: the
// normalized position, the render options, and a fingerprint of every asset
// file. Changing any sprite or font on disk therefore misses the cache.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
//	key := keyer.RenderKey(b.String(), cache.RenderKeyOpts{Options: opts, Assets: fp})
//	if data, hit, _ := c.Get(ctx, key); hit {
//	    return data
//	}
//
// Cache failures are never fatal to a render; callers log and continue.
package cache

import (
	"context"
	"time"
)

// TTLs for cached entries.
const (
	// TTLRender is how long a rendered PNG stays cached.
	TTLRender = 30 * 24 * time.Hour
	// TTLLayout is how long a computed geometry stays cached.
	TTLLayout = 30 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// RenderKey returns the key for a rendered PNG.
	RenderKey(position string, opts RenderKeyOpts) string
	// LayoutKey returns the key for a computed geometry.
	LayoutKey(position string, opts LayoutKeyOpts) string
}

// RenderKeyOpts is everything besides the position that shapes a render.
type RenderKeyOpts struct {
	// Options are the normalized render options. They are hashed as JSON.
	Options any `json:"options"`
	// Assets fingerprints the sprite and font files used.
	Assets []string `json:"assets"`
}

// LayoutKeyOpts is everything besides the position that shapes a geometry.
type LayoutKeyOpts struct {
	Tile         int    `json:"tile"`
	OuterOutline bool   `json:"outer_outline"`
	Border       bool   `json:"border"`
	InnerOutline bool   `json:"inner_outline"`
	Font         string `json:"font"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey implements [Keyer].
func (DefaultKeyer) RenderKey(position string, opts RenderKeyOpts) string {
	return hashKey("render", position, opts)
}

// LayoutKey implements [Keyer].
func (DefaultKeyer) LayoutKey(position string, opts LayoutKeyOpts) string {
	return hashKey("layout", position, opts)
}
